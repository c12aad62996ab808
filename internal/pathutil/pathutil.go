package pathutil

import (
	"path"
	"strings"
)

// Normalize converts a vault path to canonical form: forward slashes only,
// cleaned, with a single leading slash. The vault root is "/".
func Normalize(p string) string {
	replaced := strings.ReplaceAll(p, "\\", "/")
	return path.Clean("/" + replaced)
}

// Parent returns the parent folder of a vault path. The parent of the root is
// the root itself.
func Parent(p string) string {
	normalized := Normalize(p)
	if normalized == "/" {
		return "/"
	}
	return path.Dir(normalized)
}

// Base returns the final segment of a vault path, or "/" for the root.
func Base(p string) string {
	normalized := Normalize(p)
	if normalized == "/" {
		return "/"
	}
	return path.Base(normalized)
}

// Join appends a child name to a folder path.
func Join(folder, name string) string {
	return Normalize(path.Join(Normalize(folder), name))
}

// IsAncestor reports whether ancestor is p itself or a folder containing p at
// any depth. Used for cyclic-move prevention.
func IsAncestor(ancestor, p string) bool {
	a := Normalize(ancestor)
	target := Normalize(p)
	if a == target {
		return true
	}
	if a == "/" {
		return true
	}
	return strings.HasPrefix(target, a+"/")
}

// Ext returns the extension of a vault path without the leading dot, lowered.
// Dotfiles have no extension.
func Ext(p string) string {
	base := Base(p)
	idx := strings.LastIndex(base, ".")
	if idx <= 0 {
		return ""
	}
	return strings.ToLower(base[idx+1:])
}

// SplitSegments returns the path segments of a vault path, excluding the root.
func SplitSegments(p string) []string {
	normalized := Normalize(p)
	if normalized == "/" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(normalized, "/"), "/")
}
