package ui

import "testing"

// withTheme runs fn with th active and restores the previous theme.
func withTheme(t *testing.T, th Theme, fn func()) {
	t.Helper()
	prev := GetCurrentTheme()
	SetCurrentTheme(th)
	defer SetCurrentTheme(prev)
	fn()
}

func TestInitTheme(t *testing.T) {
	prev := GetCurrentTheme()
	defer SetCurrentTheme(prev)

	t.Run("flag disables colors", func(t *testing.T) {
		InitTheme(true)
		if GetCurrentTheme().Name != "none" {
			t.Errorf("theme = %q, want none", GetCurrentTheme().Name)
		}
	})

	t.Run("NO_COLOR disables colors", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		InitTheme(false)
		if GetCurrentTheme().Name != "none" {
			t.Errorf("theme = %q, want none", GetCurrentTheme().Name)
		}
	})

	t.Run("empty NO_COLOR still disables colors", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		InitTheme(false)
		if GetCurrentTheme().Name != "none" {
			t.Errorf("theme = %q, want none", GetCurrentTheme().Name)
		}
	})
}

func TestColorHelpers(t *testing.T) {
	withTheme(t, NoColorTheme, func() {
		for name, fn := range map[string]func() string{
			"reset": ColorReset, "red": ColorRed, "green": ColorGreen,
			"yellow": ColorYellow, "cyan": ColorCyan, "bold": ColorBold,
		} {
			if got := fn(); got != "" {
				t.Errorf("%s with colors off = %q, want empty", name, got)
			}
		}
	})

	withTheme(t, DarkTheme, func() {
		if ColorRed() != DarkTheme.Error {
			t.Errorf("ColorRed = %q, want theme error color", ColorRed())
		}
		if ColorCyan() != DarkTheme.Accent {
			t.Errorf("ColorCyan = %q, want theme accent color", ColorCyan())
		}
		if ColorReset() != "\033[0m" {
			t.Errorf("ColorReset = %q", ColorReset())
		}
	})
}

func TestGetCurrentTableTheme(t *testing.T) {
	withTheme(t, NoColorTheme, func() {
		if GetCurrentTableTheme() != NoColorTheme.Table {
			t.Error("no-color theme should select the no-color table palette")
		}
	})
	withTheme(t, DarkTheme, func() {
		if GetCurrentTableTheme() != DarkTheme.Table {
			t.Error("dark theme should select its own table palette")
		}
	})
}
