package state

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/config"
	"github.com/ctwhome/notidian-file-explorer-sub000/internal/constants"
	"github.com/ctwhome/notidian-file-explorer-sub000/internal/explorer"
	"github.com/ctwhome/notidian-file-explorer-sub000/internal/icons"
	"github.com/ctwhome/notidian-file-explorer-sub000/internal/settings"
	"github.com/ctwhome/notidian-file-explorer-sub000/internal/vault"
)

// State wires the configuration, vault store, explorer settings, and
// watchers for one running command.
type State struct {
	Config          *config.Config
	Workspace       *config.Workspace
	WorkspaceName   string
	Settings        *settings.Manager
	SettingsWatcher *settings.Watcher
	Store           *vault.DirStore
	Resolver        *icons.Resolver
	Ops             *explorer.Ops
	Home            string
	Vault           string
	Watcher         *VaultWatcher
}

func NewState(workspaceOverride string) (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}

	if workspaceOverride != "" {
		if err := cfg.SwitchWorkspace(workspaceOverride); err != nil {
			return nil, err
		}
	}

	ws, err := cfg.ActiveWorkspace()
	if err != nil {
		return nil, err
	}

	store := vault.NewDirStore(ws.VaultDir)

	manager, err := settings.Load(ws.VaultDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load explorer settings: %w", err)
	}

	watcher, err := NewVaultWatcher(store)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault watcher: %w", err)
	}

	settingsWatcher, err := settings.NewWatcher(manager)
	if err != nil {
		// The settings directory may not exist yet; the explorer still works
		// without hot reload.
		settingsWatcher = nil
	}

	resolver := icons.NewResolver(ws.VaultDir, manager)

	return &State{
		Config:          cfg,
		Workspace:       ws,
		WorkspaceName:   cfg.CurrentWorkspace,
		Settings:        manager,
		SettingsWatcher: settingsWatcher,
		Store:           store,
		Resolver:        resolver,
		Ops:             explorer.NewOps(store, manager),
		Home:            home,
		Vault:           ws.VaultDir,
		Watcher:         watcher,
	}, nil
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

func LoadConfig(home string) (*config.Config, error) {
	viper.AddConfigPath(home + constants.ConfigDir)
	viper.SetConfigName(constants.ConfigFile)
	viper.SetConfigType(constants.ConfigFileType)
	viper.ReadInConfig()

	err := config.EnsureConfigExists(home)
	if err != nil {
		return nil, err
	}

	return config.Load(home)
}

// Close releases the vault and settings watchers.
func (s *State) Close() error {
	if s == nil {
		return nil
	}

	var errs []error
	if s.Watcher != nil {
		if err := s.Watcher.Close(); err != nil {
			errs = append(errs, err)
		}
		s.Watcher = nil
	}
	if s.SettingsWatcher != nil {
		if err := s.SettingsWatcher.Close(); err != nil {
			errs = append(errs, err)
		}
		s.SettingsWatcher = nil
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
