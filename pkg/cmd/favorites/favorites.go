package favorites

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/state"
	cmdpkg "github.com/ctwhome/notidian-file-explorer-sub000/pkg/cmd"
)

func NewCmdFavorites(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav", "pins"},
		Short:   "Manage the favorites pinboard.",
		Long: heredoc.Doc(`
			Favorites are vault items pinned to the top of the explorer's
			root column, in the order they appear here.
		`),
	}

	cmd.AddCommand(
		newCmdFavoritesList(s),
		newCmdFavoritesAdd(s),
		newCmdFavoritesRemove(s),
	)
	return cmd
}

func newCmdFavoritesList(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pinned items in pinboard order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			favorites := s.Settings.Snapshot().Favorites
			if len(favorites) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No favorites pinned")
				return nil
			}
			for i, fav := range favorites {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", i+1, fav)
			}
			return nil
		},
	}
}

func newCmdFavoritesAdd(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "add [path]",
		Short: "Pin a vault item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cmdpkg.ResolveVaultPath(s, args[0])
			if err != nil {
				return err
			}
			if !s.Store.Exists(path) {
				return fmt.Errorf("no such vault item: %s", path)
			}
			if s.Settings.IsFavorite(path) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is already pinned\n", path)
				return nil
			}
			if _, err := s.Settings.ToggleFavorite(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pinned %s\n", path)
			return nil
		},
	}
}

func newCmdFavoritesRemove(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "remove [path]",
		Short: "Unpin a vault item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cmdpkg.ResolveVaultPath(s, args[0])
			if err != nil {
				return err
			}
			if !s.Settings.IsFavorite(path) {
				return fmt.Errorf("%s is not pinned", path)
			}
			if _, err := s.Settings.ToggleFavorite(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unpinned %s\n", path)
			return nil
		},
	}
}
