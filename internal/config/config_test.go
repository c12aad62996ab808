package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	path := GetConfigPath(home)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadEmptyConfigCreatesDefaultWorkspace(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "")

	cfg, err := Load(home)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.CurrentWorkspace != "default" {
		t.Errorf("current workspace = %q", cfg.CurrentWorkspace)
	}
	if _, err := cfg.ActiveWorkspace(); err != nil {
		t.Errorf("active workspace: %v", err)
	}
}

func TestLoadMigratesLegacyFlatConfig(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "vaultdir: /vaults/notes\neditor: nvim\n")

	cfg, err := Load(home)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	ws, err := cfg.ActiveWorkspace()
	if err != nil {
		t.Fatal(err)
	}
	if ws.VaultDir != "/vaults/notes" || ws.Editor != "nvim" {
		t.Errorf("migrated workspace = %+v", ws)
	}
}

func TestLoadWorkspaceLayout(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `
workspaces:
  work:
    vaultdir: /vaults/work
  personal:
    vaultdir: /vaults/personal
current_workspace: personal
`)

	cfg, err := Load(home)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	ws, err := cfg.ActiveWorkspace()
	if err != nil {
		t.Fatal(err)
	}
	if ws.VaultDir != "/vaults/personal" {
		t.Errorf("active vault = %q", ws.VaultDir)
	}

	names := cfg.WorkspaceNames()
	if len(names) != 2 || names[0] != "personal" || names[1] != "work" {
		t.Errorf("workspace names = %v", names)
	}
}

func TestLoadRejectsInvalidEditor(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "vaultdir: /vaults/notes\neditor: butterfly\n")

	if _, err := Load(home); err == nil {
		t.Error("invalid editor accepted")
	}
}
