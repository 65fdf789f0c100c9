// Package format renders durations and large decimal strings for the REPL.
package format

import (
	"fmt"
	"strings"
	"time"
)

// FormatExecutionDuration formats a duration for display: microseconds
// below a millisecond, milliseconds below a second, time.Duration's own
// form otherwise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatNumberString groups the digits of a decimal string in threes,
// keeping a leading sign: "-1234567" becomes "-1,234,567".
func FormatNumberString(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}

	var b strings.Builder
	b.Grow(len(sign) + len(s) + (len(s)-1)/3)
	b.WriteString(sign)
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// Truncate shortens a long decimal string to its first and last edge digits
// when it has more than limit digits. The second result reports whether it
// was shortened.
func Truncate(s string, limit, edge int) (string, bool) {
	if len(s) <= limit || 2*edge >= len(s) {
		return s, false
	}
	return s[:edge] + "..." + s[len(s)-edge:], true
}
