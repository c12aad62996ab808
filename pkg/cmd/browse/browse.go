package browse

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/state"
	"github.com/ctwhome/notidian-file-explorer-sub000/internal/tui/browser"
)

func NewCmdBrowse(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:     "browse",
		Aliases: []string{"b", "explorer"},
		Short:   "Open the column-view explorer.",
		Long: heredoc.Doc(`
			Opens the vault as a Finder-style strip of columns. Click or use
			the arrow keys to drill down, drag items to move or reorder them,
			and pin folders or files to the favorites block.
		`),
		Example: "notidian browse",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("the explorer needs an interactive terminal")
			}
			return browser.Run(s)
		},
	}
}
