// Package fzf is the fuzzy quick-open over vault files.
package fzf

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/glamour"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/muesli/termenv"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/filter"
	"github.com/ctwhome/notidian-file-explorer-sub000/internal/pathutil"
	"github.com/ctwhome/notidian-file-explorer-sub000/internal/settings"
	"github.com/ctwhome/notidian-file-explorer-sub000/internal/vault"
)

// FuzzyFinder selects one vault file interactively. Exclusion patterns from
// the explorer settings and the workspace's ignored globs both prune the
// candidate list.
type FuzzyFinder struct {
	store        *vault.DirStore
	manager      *settings.Manager
	ignoredGlobs []string
	Header       string
	files        []string // vault-relative
}

func NewFuzzyFinder(store *vault.DirStore, manager *settings.Manager, ignoredGlobs []string, header string) *FuzzyFinder {
	return &FuzzyFinder{
		store:        store,
		manager:      manager,
		ignoredGlobs: ignoredGlobs,
		Header:       header,
	}
}

// Run opens the finder and returns the selected vault path.
func (f *FuzzyFinder) Run(query string) (string, error) {
	files, err := f.walk()
	if err != nil {
		return "", fmt.Errorf("error listing files: %w", err)
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no files in vault")
	}
	f.files = files

	idx, err := f.selectFile(query)
	if err != nil {
		return "", err
	}
	if idx < 0 {
		return "", fmt.Errorf("no file selected")
	}
	return f.files[idx], nil
}

func (f *FuzzyFinder) walk() ([]string, error) {
	patterns := f.manager.Snapshot().Patterns()
	root := f.store.Root()

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		rel, ok := f.store.Rel(path)
		if !ok {
			return nil
		}
		if filter.IsExcluded(rel, patterns) {
			return nil
		}
		if f.ignored(rel) {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (f *FuzzyFinder) ignored(rel string) bool {
	trimmed := strings.TrimPrefix(rel, "/")
	for _, glob := range f.ignoredGlobs {
		if ok, err := doublestar.Match(glob, trimmed); err == nil && ok {
			return true
		}
	}
	return false
}

func (f *FuzzyFinder) selectFile(query string) (int, error) {
	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderPreview),
	}
	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}
	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	labels := make([]string, len(f.files))
	for i, file := range f.files {
		labels[i] = fmt.Sprintf("%s  (%s)", pathutil.Base(file), pathutil.Parent(file))
	}

	idx, err := fuzzyfinder.Find(f.files, func(i int) string {
		return labels[i]
	}, options...)
	if err == fuzzyfinder.ErrAbort {
		return -1, nil
	}
	return idx, err
}

func (f *FuzzyFinder) renderPreview(i, w, h int) string {
	if i == -1 {
		return ""
	}

	content, err := f.store.Read(f.files[i])
	if err != nil {
		return "Error reading file"
	}
	if !strings.HasSuffix(f.files[i], ".md") {
		return fmt.Sprintf("%d bytes", len(content))
	}

	r, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(100),
		glamour.WithColorProfile(termenv.ANSI256),
	)

	markdown, err := r.Render(string(content))
	if err != nil {
		return "Error rendering markdown"
	}
	return markdown
}
