package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spf13/viper"
)

// Workspace is one vault the explorer can open, plus its editor preferences.
type Workspace struct {
	VaultDir     string   `yaml:"vaultdir"      json:"vault_dir"`
	Editor       string   `yaml:"editor"        json:"editor"`
	IgnoredGlobs []string `yaml:"ignored_globs" json:"ignored_globs"`
}

type Config struct {
	Workspaces       map[string]*Workspace `yaml:"workspaces"        json:"workspaces"`
	CurrentWorkspace string                `yaml:"current_workspace" json:"current_workspace"`

	active *Workspace `yaml:"-"`
}

const defaultWorkspaceName = "default"

var validEditorNames = []string{"nvim", "obsidian", "vscode", "code", "vim", "nano", "custom"}

var ValidEditors = func() map[string]bool {
	editors := make(map[string]bool, len(validEditorNames))
	for _, editor := range validEditorNames {
		editors[editor] = true
	}

	return editors
}()

func ValidateEditor(editor string) error {
	if _, valid := ValidEditors[editor]; valid {
		return nil
	}

	quoted := make([]string, len(validEditorNames))
	for i, name := range validEditorNames {
		quoted[i] = fmt.Sprintf("'%s'", name)
	}

	return fmt.Errorf(
		"invalid editor: %q. Please choose from %s.",
		editor,
		strings.Join(quoted, ", "),
	)
}

// legacyConfig is the flat pre-workspace layout still found in older
// installs; a successful parse migrates it into a single default workspace.
type legacyConfig struct {
	VaultDir     string   `yaml:"vaultdir"`
	Editor       string   `yaml:"editor"`
	IgnoredGlobs []string `yaml:"ignored_globs"`
}

func newWorkspace() *Workspace {
	return &Workspace{}
}

func Load(home string) (*Config, error) {
	path := GetConfigPath(home)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if len(strings.TrimSpace(string(data))) == 0 {
		cfg.Workspaces = map[string]*Workspace{
			defaultWorkspaceName: newWorkspace(),
		}
		cfg.CurrentWorkspace = defaultWorkspaceName
	} else {
		raw := make(map[string]interface{})
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}

		if _, ok := raw["workspaces"]; ok {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		} else {
			var legacy legacyConfig
			if err := yaml.Unmarshal(data, &legacy); err != nil {
				return nil, err
			}
			cfg = migrateLegacyConfig(&legacy)
		}
	}

	if err := cfg.ensureInitialized(); err != nil {
		return nil, err
	}

	ws, err := cfg.ActiveWorkspace()
	if err != nil {
		return nil, err
	}

	if ws.Editor != "" {
		if err := ValidateEditor(ws.Editor); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func migrateLegacyConfig(legacy *legacyConfig) *Config {
	ws := &Workspace{
		VaultDir:     legacy.VaultDir,
		Editor:       legacy.Editor,
		IgnoredGlobs: legacy.IgnoredGlobs,
	}

	return &Config{
		Workspaces: map[string]*Workspace{
			defaultWorkspaceName: ws,
		},
		CurrentWorkspace: defaultWorkspaceName,
		active:           ws,
	}
}

func (cfg *Config) ensureInitialized() error {
	if cfg.Workspaces == nil {
		cfg.Workspaces = make(map[string]*Workspace)
	}

	if cfg.CurrentWorkspace == "" {
		if len(cfg.Workspaces) == 0 {
			cfg.Workspaces[defaultWorkspaceName] = newWorkspace()
			cfg.CurrentWorkspace = defaultWorkspaceName
		} else {
			for name := range cfg.Workspaces {
				cfg.CurrentWorkspace = name
				break
			}
		}
	}

	return cfg.setActiveWorkspace(cfg.CurrentWorkspace)
}

func (cfg *Config) setActiveWorkspace(name string) error {
	if name == "" {
		return fmt.Errorf("workspace name cannot be empty")
	}
	ws, ok := cfg.Workspaces[name]
	if !ok {
		return fmt.Errorf("workspace %q does not exist", name)
	}
	if ws == nil {
		ws = newWorkspace()
		cfg.Workspaces[name] = ws
	}

	cfg.CurrentWorkspace = name
	cfg.active = ws

	cfg.syncViperWithActiveWorkspace()

	return nil
}

func (cfg *Config) syncViperWithActiveWorkspace() {
	if cfg.active == nil {
		return
	}

	viper.Set("vaultdir", cfg.active.VaultDir)
	viper.Set("editor", cfg.active.Editor)
	if cfg.active.IgnoredGlobs == nil {
		viper.Set("ignored_globs", []string{})
	} else {
		viper.Set("ignored_globs", append([]string(nil), cfg.active.IgnoredGlobs...))
	}
}

func (cfg *Config) ActiveWorkspace() (*Workspace, error) {
	if cfg.active != nil {
		return cfg.active, nil
	}

	if cfg.CurrentWorkspace == "" {
		return nil, fmt.Errorf("no workspace is currently selected")
	}

	if err := cfg.setActiveWorkspace(cfg.CurrentWorkspace); err != nil {
		return nil, err
	}

	return cfg.active, nil
}

func (cfg *Config) WorkspaceNames() []string {
	names := make([]string, 0, len(cfg.Workspaces))
	for name := range cfg.Workspaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (cfg *Config) SwitchWorkspace(name string) error {
	if err := cfg.setActiveWorkspace(name); err != nil {
		return err
	}
	return cfg.Save()
}

func (cfg *Config) AddWorkspace(name string, ws *Workspace, makeCurrent bool) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("workspace name cannot be empty")
	}

	if cfg.Workspaces == nil {
		cfg.Workspaces = make(map[string]*Workspace)
	}

	if _, exists := cfg.Workspaces[trimmed]; exists {
		return fmt.Errorf("workspace %q already exists", trimmed)
	}

	if ws == nil {
		ws = newWorkspace()
	}
	cfg.Workspaces[trimmed] = ws

	if cfg.CurrentWorkspace == "" || makeCurrent {
		if err := cfg.setActiveWorkspace(trimmed); err != nil {
			return err
		}
	}

	return cfg.Save()
}

func (cfg *Config) ChangeEditor(editor string) error {
	if err := ValidateEditor(editor); err != nil {
		return err
	}

	ws, err := cfg.ActiveWorkspace()
	if err != nil {
		return err
	}

	ws.Editor = editor
	return cfg.Save()
}

func (cfg *Config) GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return GetConfigPath(homeDir)
}

func (cfg *Config) Save() error {
	ws, err := cfg.ActiveWorkspace()
	if err != nil {
		return err
	}

	if ws.Editor != "" {
		if err := ValidateEditor(ws.Editor); err != nil {
			return err
		}
	}

	cfg.syncViperWithActiveWorkspace()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	configPath := cfg.GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}
