package trash

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/spf13/cobra"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/state"
	"github.com/ctwhome/notidian-file-explorer-sub000/internal/vault"
	cmdpkg "github.com/ctwhome/notidian-file-explorer-sub000/pkg/cmd"
)

func NewCmdTrash(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trash [path]",
		Short: "Move a vault item to the trash.",
		Long: heredoc.Doc(`
			Deleting never destroys data: items move into the vault's .trash
			folder, keeping their subfolder structure. Use 'trash empty' to
			reclaim the space.

			Example:
			  notidian trash docs/old-plan.md
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cmdpkg.ResolveVaultPath(s, args[0])
			if err != nil {
				return err
			}
			if _, err := s.Ops.Delete(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to trash\n", path)
			return nil
		},
	}

	cmd.AddCommand(newCmdTrashEmpty(s))
	return cmd
}

func newCmdTrashEmpty(s *state.State) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "empty",
		Short: "Permanently delete everything in the trash",
		RunE: func(cmd *cobra.Command, _ []string) error {
			trashDir := filepath.Join(s.Vault, vault.TrashDir)

			entries, err := os.ReadDir(trashDir)
			if os.IsNotExist(err) || (err == nil && len(entries) == 0) {
				fmt.Fprintln(cmd.OutOrStdout(), "Trash is already empty")
				return nil
			}
			if err != nil {
				return err
			}

			if !yes {
				input := confirmation.New(
					fmt.Sprintf("Permanently delete %d item(s) from the trash?", len(entries)),
					confirmation.No,
				)
				confirmed, err := input.RunPrompt()
				if err != nil {
					return err
				}
				if !confirmed {
					return nil
				}
			}

			for _, entry := range entries {
				if err := os.RemoveAll(filepath.Join(trashDir, entry.Name())); err != nil {
					return fmt.Errorf("failed to delete %s: %w", entry.Name(), err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d item(s)\n", len(entries))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
