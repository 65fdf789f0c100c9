package ui

// The Color* helpers return the escape code for a role in the current
// theme, or "" when colors are disabled.

// ColorReset clears formatting.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorRed is used for errors.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen is used for results and the prompt.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow is used for commands and warnings.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorCyan is used for frames and numeric details.
func ColorCyan() string { return GetCurrentTheme().Accent }

// ColorBold starts bold text.
func ColorBold() string { return GetCurrentTheme().Bold }
