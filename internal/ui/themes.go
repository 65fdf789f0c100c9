package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme maps the roles used by the REPL and the startup banner to ANSI
// escape codes, plus the lipgloss palette for tables.
type Theme struct {
	Name string
	// Accent marks frames and numeric details.
	Accent string
	// Success marks results and the prompt.
	Success string
	// Warning marks command names and unbounded limits.
	Warning string
	// Error marks failures.
	Error string
	Bold  string
	Reset string
	Table TableTheme
}

// TableTheme holds the lipgloss colors for tabular output such as the
// metrics table.
type TableTheme struct {
	Header  lipgloss.TerminalColor
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
}

var (
	// DarkTheme is the default, tuned for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:    "dark",
		Accent:  "\033[38;5;39m",
		Success: "\033[38;5;82m",
		Warning: "\033[38;5;220m",
		Error:   "\033[38;5;196m",
		Bold:    "\033[1m",
		Reset:   "\033[0m",
		Table: TableTheme{
			Header:  lipgloss.Color("#FF8C00"),
			Text:    lipgloss.Color("#E0E0E0"),
			Border:  lipgloss.Color("#666666"),
			Success: lipgloss.Color("#9ece6a"),
			Error:   lipgloss.Color("#FF4444"),
			Dim:     lipgloss.Color("#888888"),
		},
	}

	// NoColorTheme emits no escape codes at all.
	NoColorTheme = Theme{
		Name: "none",
		Table: TableTheme{
			Header:  lipgloss.NoColor{},
			Text:    lipgloss.NoColor{},
			Border:  lipgloss.NoColor{},
			Success: lipgloss.NoColor{},
			Error:   lipgloss.NoColor{},
			Dim:     lipgloss.NoColor{},
		},
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Tests use it to force and
// restore a palette.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// GetCurrentTableTheme returns the table palette of the active theme.
func GetCurrentTableTheme() TableTheme {
	return GetCurrentTheme().Table
}

// InitTheme selects NoColorTheme when noColor is set or the NO_COLOR
// environment variable is present (https://no-color.org/), DarkTheme
// otherwise.
func InitTheme(noColor bool) {
	_, envNoColor := os.LookupEnv("NO_COLOR")
	if noColor || envNoColor {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetCurrentTheme(DarkTheme)
}
