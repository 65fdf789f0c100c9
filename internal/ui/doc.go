// Package ui holds the color themes shared by the REPL and the startup
// banner. Colors are plain ANSI escape codes for line-oriented output and
// lipgloss colors for tables; both collapse to nothing when colors are off.
package ui
