package importcmd

import (
	"fmt"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/state"
	cmdpkg "github.com/ctwhome/notidian-file-explorer-sub000/pkg/cmd"
)

func NewCmdImport(s *state.State) *cobra.Command {
	var into string

	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Copy external files into the vault.",
		Long: heredoc.Doc(`
			Copies one or more files from outside the vault into a vault
			folder. Colliding names get a numeric suffix instead of
			overwriting what is already there.
		`),
		Example: heredoc.Doc(`
			notidian import ~/Downloads/paper.pdf
			notidian import a.png b.png --into assets/images
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := cmdpkg.ResolveVaultPath(s, into)
			if err != nil {
				return err
			}
			node, err := s.Store.Stat(target)
			if err != nil || !node.IsFolder() {
				return fmt.Errorf("not a vault folder: %s", target)
			}

			paths := make([]string, 0, len(args))
			for _, arg := range args {
				abs, err := filepath.Abs(arg)
				if err != nil {
					return fmt.Errorf("bad path %q: %w", arg, err)
				}
				paths = append(paths, abs)
			}

			res, err := s.Ops.ImportFiles(target, paths)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d file(s) into %s\n", len(paths), target)
			if res.SelectPath != "" {
				fmt.Fprintln(cmd.OutOrStdout(), res.SelectPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&into, "into", "/", "vault folder to import into")
	return cmd
}
