package decorate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/icons"
	"github.com/ctwhome/notidian-file-explorer-sub000/internal/state"
	cmdpkg "github.com/ctwhome/notidian-file-explorer-sub000/pkg/cmd"
)

func NewCmdDecorate(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decorate",
		Short: "Set emoji or custom icon decorations.",
		Long: heredoc.Doc(`
			Every vault item shows exactly one decoration in the explorer:
			a custom icon if one is associated, else an emoji, else a
			default icon for its type.
		`),
	}

	cmd.AddCommand(
		newCmdDecorateEmoji(s),
		newCmdDecorateIcon(s),
	)
	return cmd
}

func newCmdDecorateEmoji(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:     "emoji [path] [emoji]",
		Short:   "Set an item's emoji (omit the emoji to clear it)",
		Example: `notidian decorate emoji docs 📚`,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cmdpkg.ResolveVaultPath(s, args[0])
			if err != nil {
				return err
			}
			if !s.Store.Exists(path) {
				return fmt.Errorf("no such vault item: %s", path)
			}

			emoji := ""
			if len(args) == 2 {
				emoji = args[1]
			}
			if err := s.Settings.SetEmoji(path, emoji); err != nil {
				return err
			}

			if emoji == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared emoji for %s\n", path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", emoji, path)
			}
			return nil
		},
	}
}

func newCmdDecorateIcon(s *state.State) *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:     "icon [path] [image-file]",
		Short:   "Associate a custom icon image with an item",
		Example: `notidian decorate icon docs ~/pictures/books.png`,
		Long: heredoc.Doc(`
			Copies the image into the vault's icon store under a unique
			generated name and associates it with the item. The explorer
			falls back to the emoji or default icon if the image goes
			missing later.
		`),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cmdpkg.ResolveVaultPath(s, args[0])
			if err != nil {
				return err
			}
			if !s.Store.Exists(path) {
				return fmt.Errorf("no such vault item: %s", path)
			}

			if clear {
				if err := s.Settings.SetIcon(path, ""); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared icon for %s\n", path)
				return nil
			}
			if len(args) < 2 {
				return fmt.Errorf("an image file argument is required (or --clear)")
			}

			data, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("failed to read image: %w", err)
			}

			filename, err := icons.StoreImage(s.Vault, filepath.Base(args[1]), data)
			if err != nil {
				return fmt.Errorf("failed to store image: %w", err)
			}
			if err := s.Settings.SetIcon(path, filename); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Icon %s set for %s\n", filename, path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "remove the item's custom icon")
	return cmd
}
