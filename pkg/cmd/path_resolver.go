package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/pathutil"
	"github.com/ctwhome/notidian-file-explorer-sub000/internal/state"
)

// ResolveVaultPath turns a command-line argument into a normalized
// vault-relative path. OS-absolute paths must point inside the active vault;
// everything else is taken as vault-relative.
func ResolveVaultPath(s *state.State, arg string) (string, error) {
	if s == nil || s.Store == nil {
		return "", fmt.Errorf("state is not initialized")
	}
	if strings.TrimSpace(arg) == "" {
		return "", fmt.Errorf("a path argument is required")
	}

	// An absolute argument may be an OS path inside the vault, or an
	// already vault-relative path like /docs/note.md. Try the vault mapping
	// first and fall back to the relative reading.
	if filepath.IsAbs(arg) {
		if rel, ok := s.Store.Rel(filepath.Clean(arg)); ok {
			return rel, nil
		}
	}

	normalized := pathutil.Normalize(arg)
	for _, segment := range pathutil.SplitSegments(normalized) {
		if segment == ".." {
			return "", fmt.Errorf("path %q is outside the vault %q", arg, s.Vault)
		}
	}
	return normalized, nil
}
