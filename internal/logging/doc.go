// Package logging provides a unified logging interface for mathsvc.
// Callers log through the Logger interface with typed fields; the zerolog
// adapter writes one JSON object per entry.
package logging
