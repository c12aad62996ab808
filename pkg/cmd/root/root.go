package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/state"
	"github.com/ctwhome/notidian-file-explorer-sub000/pkg/cmd/browse"
	"github.com/ctwhome/notidian-file-explorer-sub000/pkg/cmd/decorate"
	"github.com/ctwhome/notidian-file-explorer-sub000/pkg/cmd/favorites"
	"github.com/ctwhome/notidian-file-explorer-sub000/pkg/cmd/find"
	"github.com/ctwhome/notidian-file-explorer-sub000/pkg/cmd/importcmd"
	"github.com/ctwhome/notidian-file-explorer-sub000/pkg/cmd/pathcmd"
	"github.com/ctwhome/notidian-file-explorer-sub000/pkg/cmd/settings"
	"github.com/ctwhome/notidian-file-explorer-sub000/pkg/cmd/trash"
	"github.com/ctwhome/notidian-file-explorer-sub000/pkg/cmd/workspace"
)

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:     "notidian",
		Aliases: []string{"nfe"},
		Short:   "Browse an Obsidian-style vault in Finder-like columns.",
		Long: heredoc.Doc(`
			A column-view explorer for note vaults: navigate folders as a
			horizontal strip of columns, drag to move or reorder, pin
			favorites, and decorate items with emojis and icons.

			Running without a subcommand opens the explorer.
		`),
		RunE: browse.NewCmdBrowse(s).RunE,
	}

	var workspaceName string
	cmd.PersistentFlags().StringVarP(
		&workspaceName,
		"workspace",
		"w",
		"",
		"Workspace to use for this command.",
	)
	viper.BindPFlag("workspace", cmd.PersistentFlags().Lookup("workspace"))

	cmd.AddCommand(
		browse.NewCmdBrowse(s),
		decorate.NewCmdDecorate(s),
		find.NewCmdFind(s),
		favorites.NewCmdFavorites(s),
		importcmd.NewCmdImport(s),
		pathcmd.NewCmdPath(s),
		settings.NewCmdSettings(s),
		trash.NewCmdTrash(s),
		workspace.NewCmdWorkspace(s),
	)

	return cmd, nil
}
