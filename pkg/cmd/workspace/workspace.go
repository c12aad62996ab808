package workspace

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/config"
	"github.com/ctwhome/notidian-file-explorer-sub000/internal/state"
)

func NewCmdWorkspace(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workspace",
		Short: "Manage vault workspaces",
	}

	cmd.AddCommand(
		newCmdWorkspaceList(s),
		newCmdWorkspaceSwitch(s),
		newCmdWorkspaceAdd(s),
	)

	return cmd
}

func newCmdWorkspaceList(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured workspaces",
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := s.Config.WorkspaceNames()
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No workspaces configured")
				return nil
			}

			for _, name := range names {
				marker := " "
				if name == s.Config.CurrentWorkspace {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
			}

			return nil
		},
	}
}

func newCmdWorkspaceSwitch(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "switch [name]",
		Short: "Switch the active workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(args[0])
			if target == "" {
				return fmt.Errorf("workspace name cannot be empty")
			}

			if err := s.Config.SwitchWorkspace(target); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Switched to workspace %q\n", target)
			return nil
		},
	}
}

func newCmdWorkspaceAdd(s *state.State) *cobra.Command {
	var vaultDir string
	var editor string
	var makeCurrent bool

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return fmt.Errorf("workspace name cannot be empty")
			}
			if strings.TrimSpace(vaultDir) == "" {
				return fmt.Errorf("--vault is required")
			}

			ws := &config.Workspace{VaultDir: vaultDir, Editor: editor}
			if err := s.Config.AddWorkspace(name, ws, makeCurrent); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added workspace %q\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&vaultDir, "vault", "", "vault directory for the workspace")
	cmd.Flags().StringVar(&editor, "editor", "", "editor to open files with")
	cmd.Flags().BoolVar(&makeCurrent, "current", false, "switch to the new workspace")
	return cmd
}
