package pathcmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/state"
	cmdpkg "github.com/ctwhome/notidian-file-explorer-sub000/pkg/cmd"
)

func NewCmdPath(s *state.State) *cobra.Command {
	var copyToClipboard bool
	var osPath bool

	cmd := &cobra.Command{
		Use:   "path [item]",
		Short: "Print or copy the path of a vault item.",
		Long: heredoc.Doc(`
			Resolves a vault item and prints its vault-relative path, or the
			absolute filesystem path with --os. With --copy the path goes to
			the system clipboard instead.
		`),
		Example: "notidian path docs/plan.md --copy",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cmdpkg.ResolveVaultPath(s, args[0])
			if err != nil {
				return err
			}
			if !s.Store.Exists(path) {
				return fmt.Errorf("no such vault item: %s", path)
			}

			out := path
			if osPath {
				out = s.Store.Abs(path)
			}

			if copyToClipboard {
				if err := clipboard.WriteAll(out); err != nil {
					return fmt.Errorf("failed to copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Copied to clipboard")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false, "copy the path to the clipboard")
	cmd.Flags().BoolVar(&osPath, "os", false, "print the absolute filesystem path")
	return cmd
}
