package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/agbru/mathsvc/internal/config"
	"github.com/agbru/mathsvc/internal/ui"
)

// PrintServiceConfig displays the effective configuration at startup.
func PrintServiceConfig(cfg config.AppConfig, out io.Writer) {
	mode := "HTTP server on " + ui.ColorGreen() + cfg.Addr + ui.ColorReset()
	if cfg.REPL {
		mode = ui.ColorGreen() + "interactive prompt" + ui.ColorReset()
	}
	fmt.Fprintf(out, "--- mathsvc configuration ---\n")
	fmt.Fprintf(out, "Mode: %s.\n", mode)
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Limits: fibonacci n<=%s, factorial n<=%s, ackermann depth=%s%d%s steps=%s%d%s bits=%s%d%s.\n",
		formatCap(cfg.MaxFibonacciN), formatCap(cfg.MaxFactorialN),
		ui.ColorCyan(), cfg.AckermannMaxDepth, ui.ColorReset(),
		ui.ColorCyan(), cfg.AckermannMaxSteps, ui.ColorReset(),
		ui.ColorCyan(), cfg.AckermannMaxBits, ui.ColorReset())
	if !cfg.REPL {
		fmt.Fprintf(out, "CORS origins: %s.\n", strings.Join(cfg.CORSOrigins, ", "))
	}
	if cfg.ConfigFile != "" {
		fmt.Fprintf(out, "Config file: %s.\n", cfg.ConfigFile)
	}
	fmt.Fprintln(out)
}

func formatCap(limit int) string {
	if limit < 0 {
		return ui.ColorYellow() + "unbounded" + ui.ColorReset()
	}
	return fmt.Sprintf("%s%d%s", ui.ColorCyan(), limit, ui.ColorReset())
}
