// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Render* and Format* functions return strings without performing I/O.

package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/agbru/mathsvc/internal/engine"
	apperrors "github.com/agbru/mathsvc/internal/errors"
	"github.com/agbru/mathsvc/internal/format"
	"github.com/agbru/mathsvc/internal/metrics"
	"github.com/agbru/mathsvc/internal/ui"
)

// DisplayResult prints a computed value with its timing and size.
func DisplayResult(out io.Writer, label, value string, elapsed time.Duration) {
	shown, truncated := format.Truncate(value, TruncationLimit, DisplayEdges)
	suffix := ""
	if truncated {
		suffix = " (truncated)"
	}
	fmt.Fprintf(out, "  %s = %s%s%s%s\n", label, ui.ColorGreen(), shown, ui.ColorReset(), suffix)
	fmt.Fprintf(out, "  Time: %s%s%s  Digits: %s%s%s\n",
		ui.ColorCyan(), format.FormatExecutionDuration(elapsed), ui.ColorReset(),
		ui.ColorCyan(), format.FormatNumberString(strconv.Itoa(len(value))), ui.ColorReset())
}

// DisplayError prints an engine error with its kind.
func DisplayError(out io.Writer, err error) {
	fmt.Fprintf(out, "  %sError (%s): %s%s\n", ui.ColorRed(), apperrors.KindOf(err), err, ui.ColorReset())
}

// DisplayCacheStats prints cache occupancy and heap usage.
func DisplayCacheStats(out io.Writer, stats engine.CacheStats) {
	fmt.Fprintf(out, "\n%sCache statistics:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  Fibonacci terms cached: %s%s%s\n",
		ui.ColorCyan(), format.FormatNumberString(strconv.Itoa(stats.FibonacciFrontier)), ui.ColorReset())
	fmt.Fprintf(out, "  Ackermann memo:         %s%d%s entries, %d hits, %d misses\n",
		ui.ColorCyan(), stats.Ackermann.Entries, ui.ColorReset(), stats.Ackermann.Hits, stats.Ackermann.Misses)
	fmt.Fprintf(out, "  Heap in use:            %s%s%s bytes\n",
		ui.ColorCyan(), format.FormatNumberString(strconv.FormatUint(stats.Memory.HeapAlloc, 10)), ui.ColorReset())
	fmt.Fprintf(out, "  Goroutines:             %s%d%s\n", ui.ColorCyan(), stats.Memory.Goroutines, ui.ColorReset())
	fmt.Fprintf(out, "  Host load:              CPU %s%.1f%%%s, memory %s%.1f%%%s, process RSS %s bytes\n\n",
		ui.ColorCyan(), stats.System.CPUPercent, ui.ColorReset(),
		ui.ColorCyan(), stats.System.MemPercent, ui.ColorReset(),
		format.FormatNumberString(strconv.FormatUint(stats.System.ProcessRSS, 10)))
}

// FormatLatency renders an average latency in seconds, or "-" before the
// first call.
func FormatLatency(seconds float64) string {
	if seconds == metrics.NoLatency {
		return "-"
	}
	return strconv.FormatFloat(seconds, 'f', metrics.LatencyPrecision, 64)
}

// RenderMetricsTable renders the metrics report as a table, one row per
// operation in name order.
func RenderMetricsTable(report metrics.Report) string {
	theme := ui.GetCurrentTableTheme()

	ops := make([]string, 0, len(report))
	for op := range report {
		ops = append(ops, op)
	}
	sort.Strings(ops)

	rows := make([][]string, 0, len(ops))
	for _, op := range ops {
		rep := report[op]
		rows = append(rows, []string{
			op,
			strconv.FormatUint(rep.InvocationsSuccess, 10),
			strconv.FormatUint(rep.InvocationsError, 10),
			strconv.FormatUint(rep.InvocationsTotal, 10),
			FormatLatency(rep.Averages.Latency),
		})
	}

	header := lipgloss.NewStyle().Foreground(theme.Header).Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1)
	number := cell.Align(lipgloss.Right)
	errCell := number.Foreground(theme.Error)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("OPERATION", "SUCCESS", "ERROR", "TOTAL", "AVG LATENCY (s)").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 0:
				return cell
			case col == 2 && rows[row][2] != "0":
				return errCell
			default:
				return number
			}
		})
	return t.Render()
}
