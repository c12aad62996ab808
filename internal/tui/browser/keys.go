package browser

import "github.com/charmbracelet/bubbles/key"

type explorerKeyMap struct {
	up             key.Binding
	down           key.Binding
	left           key.Binding
	right          key.Binding
	open           key.Binding
	createFile     key.Binding
	createFolder   key.Binding
	rename         key.Binding
	remove         key.Binding
	moveUp         key.Binding
	moveDown       key.Binding
	toggleFavorite key.Binding
	foldFavorites  key.Binding
	setEmoji       key.Binding
	copyPath       key.Binding
	togglePreview  key.Binding
	submit         key.Binding
	cancel         key.Binding
	quit           key.Binding
}

func newExplorerKeyMap() *explorerKeyMap {
	return &explorerKeyMap{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "parent column"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "child column"),
		),
		open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "open"),
		),
		createFile: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new file"),
		),
		createFolder: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "new folder"),
		),
		rename: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rename"),
		),
		remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "trash"),
		),
		moveUp: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "reorder up"),
		),
		moveDown: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "reorder down"),
		),
		toggleFavorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favorite"),
		),
		foldFavorites: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "fold favorites"),
		),
		setEmoji: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "emoji"),
		),
		copyPath: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy path"),
		),
		togglePreview: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "preview"),
		),
		submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "submit"),
		),
		cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k *explorerKeyMap) shortHelp() []key.Binding {
	return []key.Binding{
		k.open, k.createFile, k.rename, k.remove,
		k.toggleFavorite, k.togglePreview, k.quit,
	}
}
