package find

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/fzf"
	"github.com/ctwhome/notidian-file-explorer-sub000/internal/state"
)

func NewCmdFind(s *state.State) *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:     "find [query]",
		Aliases: []string{"f", "open"},
		Short:   "Fuzzy-find a vault file.",
		Long: heredoc.Doc(`
			Opens a fuzzy finder over every file in the vault, with a
			markdown preview. The selected file opens in the workspace
			editor, or prints its vault path with --print.

			Exclusion patterns from the explorer settings and the
			workspace's ignored globs are filtered out of the candidates.
		`),
		Example: "notidian find  or  notidian find meeting-notes",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}

			finder := fzf.NewFuzzyFinder(
				s.Store,
				s.Settings,
				s.Workspace.IgnoredGlobs,
				"Select a file",
			)
			selected, err := finder.Run(query)
			if err != nil {
				return err
			}

			if printOnly {
				fmt.Fprintln(cmd.OutOrStdout(), selected)
				return nil
			}
			return openInEditor(s, selected)
		},
	}

	cmd.Flags().BoolVarP(&printOnly, "print", "p", false, "print the selected path instead of opening it")
	return cmd
}

func openInEditor(s *state.State, vaultPath string) error {
	editor := s.Workspace.Editor
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		return fmt.Errorf("no editor configured; set one with 'notidian workspace' or $EDITOR")
	}

	c := exec.Command(editor, s.Store.Abs(vaultPath))
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
