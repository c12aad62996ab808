package browser

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF")).
			Bold(true).
			Padding(0, 1)

	ruleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#334455"))

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Background(lipgloss.Color("#0AF")).
				Foreground(lipgloss.Color("#FFF"))

	ancestorRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#0AF")).
				Background(lipgloss.Color("#224"))

	cursorRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Underline(true)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCC"))

	dragRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888")).
			Italic(true)

	favoritesHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#cba6f7")).
				Bold(true).
				Padding(0, 1)

	favoriteRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#cba6f7"))

	statsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#667788")).
			Padding(0, 1)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#884444")).
				Padding(1, 1)

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#334455")).
			PaddingLeft(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#0AF", Dark: "#0AF"})

	errorStatusStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F55"))

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#0AF")).
				Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cba6f7"))
)
