package settings

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/spf13/cobra"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/state"
)

func NewCmdSettings(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"s"},
		Short:   "Inspect and edit the explorer settings.",
		Long: heredoc.Doc(`
			The explorer settings live inside the vault at
			.notidian/file-explorer.json and hold exclusion patterns, emoji
			and icon decorations, favorites, custom folder ordering, and the
			drag timing knobs.
		`),
	}

	cmd.AddCommand(
		newCmdSettingsShow(s),
		newCmdSettingsExclude(s),
		newCmdSettingsTemplate(s),
		newCmdSettingsMigrate(s),
	)
	return cmd
}

func newCmdSettingsShow(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current settings as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := json.MarshalIndent(s.Settings.Snapshot(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newCmdSettingsExclude(s *state.State) *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "exclude [pattern]",
		Short: "Add an exclusion pattern, or clear them all",
		Long: heredoc.Doc(`
			Items whose vault path contains an exclusion pattern
			(case-insensitive) are hidden from the explorer columns. One
			pattern per line.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if clear {
				s.Settings.Current.ExclusionPatterns = ""
				return s.Settings.Save()
			}
			if len(args) == 0 {
				return fmt.Errorf("a pattern argument is required (or --clear)")
			}

			pattern := strings.TrimSpace(args[0])
			if pattern == "" {
				return fmt.Errorf("pattern cannot be empty")
			}
			existing := s.Settings.Current.ExclusionPatterns
			if existing != "" && !strings.HasSuffix(existing, "\n") {
				existing += "\n"
			}
			s.Settings.Current.ExclusionPatterns = existing + pattern
			if err := s.Settings.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Excluding %q\n", pattern)
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "remove every exclusion pattern")
	return cmd
}

func newCmdSettingsTemplate(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "template [vault-path]",
		Short: "Set the template for newly created markdown files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				current := s.Settings.Snapshot().TemplatePath
				if current == "" {
					fmt.Fprintln(cmd.OutOrStdout(), "No template configured")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), current)
				}
				return nil
			}

			s.Settings.Current.TemplatePath = args[0]
			if err := s.Settings.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Template set to %s\n", args[0])
			return nil
		},
	}
}

func newCmdSettingsMigrate(s *state.State) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Write the settings to their canonical location",
		Long: heredoc.Doc(`
			Settings read from a legacy location (.notidian-file-explorer or
			the Obsidian plugin folder) are adopted in memory on load. This
			command persists them to .notidian/file-explorer.json, which
			takes priority from then on.
		`),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				input := confirmation.New(
					fmt.Sprintf("Write settings to %s?", s.Settings.Path()),
					confirmation.Yes,
				)
				confirmed, err := input.RunPrompt()
				if err != nil {
					return err
				}
				if !confirmed {
					return nil
				}
			}

			if err := s.Settings.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Settings written to %s\n", s.Settings.Path())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
