// Package cli provides the interactive prompt for the computation engine
// and the terminal output helpers it uses.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/mathsvc/internal/engine"
	"github.com/agbru/mathsvc/internal/metrics"
	"github.com/agbru/mathsvc/internal/ui"
)

// Computer is the engine surface the REPL drives.
type Computer interface {
	ComputeFibonacci(n int) (string, error)
	ComputeAckermann(m, n int) (string, error)
	ComputeFactorial(n int) (string, error)
	MetricsSnapshot() metrics.Report
	CacheStats() engine.CacheStats
}

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// ShowSpinner animates a spinner while a computation runs. The spinner
	// stays silent when stdout is not a terminal.
	ShowSpinner bool
	// Prompt overrides the default "mathsvc> " prompt.
	Prompt string
}

// REPL is an interactive session over one engine.
type REPL struct {
	engine Computer
	config REPLConfig
	in     io.Reader
	out    io.Writer
}

// NewREPL creates a REPL reading from stdin and writing to stdout.
func NewREPL(c Computer, config REPLConfig) *REPL {
	if config.Prompt == "" {
		config.Prompt = "mathsvc> "
	}
	return &REPL{
		engine: c,
		config: config,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start reads and executes commands until exit or EOF.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+r.config.Prompt+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && strings.TrimSpace(input) != "") {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}

		input = strings.TrimSpace(input)
		if input != "" && !r.processCommand(input) {
			return
		}
		if err != nil {
			// Last line had no trailing newline.
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %smathsvc - Interactive Mode%s                           %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sfib <n>%s        - Fibonacci term n (1-indexed: fib 1 = 0)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sack <m> <n>%s    - Ackermann function A(m, n)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sfact <n>%s       - Factorial n!\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s<n>%s            - Shortcut for fib <n>\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %smetrics [json]%s - Invocation counts and average latencies\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstats%s          - Cache and memory statistics\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s           - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s    - Leave interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "fib", "f":
		r.cmdFibonacci(args)
	case "ack", "a":
		r.cmdAckermann(args)
	case "fact", "!":
		r.cmdFactorial(args)
	case "metrics", "m":
		r.cmdMetrics(args)
	case "stats", "st":
		DisplayCacheStats(r.out, r.engine.CacheStats())
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		// A bare number is a Fibonacci request.
		if n, err := strconv.Atoi(cmd); err == nil {
			r.compute(fmt.Sprintf("fib(%d)", n), func() (string, error) { return r.engine.ComputeFibonacci(n) })
		} else {
			fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
			fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
		}
	}

	return true
}

func (r *REPL) cmdFibonacci(args []string) {
	ints, ok := r.parseArgs("fib <n>", args, 1)
	if !ok {
		return
	}
	n := ints[0]
	r.compute(fmt.Sprintf("fib(%d)", n), func() (string, error) { return r.engine.ComputeFibonacci(n) })
}

func (r *REPL) cmdAckermann(args []string) {
	ints, ok := r.parseArgs("ack <m> <n>", args, 2)
	if !ok {
		return
	}
	m, n := ints[0], ints[1]
	r.compute(fmt.Sprintf("ack(%d, %d)", m, n), func() (string, error) { return r.engine.ComputeAckermann(m, n) })
}

func (r *REPL) cmdFactorial(args []string) {
	ints, ok := r.parseArgs("fact <n>", args, 1)
	if !ok {
		return
	}
	n := ints[0]
	r.compute(fmt.Sprintf("fact(%d)", n), func() (string, error) { return r.engine.ComputeFactorial(n) })
}

func (r *REPL) cmdMetrics(args []string) {
	report := r.engine.MetricsSnapshot()
	if len(args) > 0 && strings.EqualFold(args[0], "json") {
		data, err := report.JSON()
		if err != nil {
			fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}
		fmt.Fprintln(r.out, string(data))
		return
	}
	fmt.Fprintln(r.out, RenderMetricsTable(report))
}

// parseArgs converts exactly want integer arguments. Negative values are
// passed through so the engine can reject them.
func (r *REPL) parseArgs(usage string, args []string, want int) ([]int, bool) {
	if len(args) != want {
		fmt.Fprintf(r.out, "%sUsage: %s%s\n", ui.ColorRed(), usage, ui.ColorReset())
		return nil, false
	}
	out := make([]int, want)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.ColorRed(), a, ui.ColorReset())
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// compute runs fn under the spinner and prints its outcome.
func (r *REPL) compute(label string, fn func() (string, error)) {
	var sp Spinner = nopSpinner{}
	if r.config.ShowSpinner {
		sp = newSpinner(r.out)
	}
	sp.UpdateSuffix(" computing " + label)
	sp.Start()

	start := time.Now()
	value, err := fn()
	elapsed := time.Since(start)
	sp.Stop()

	if err != nil {
		DisplayError(r.out, err)
		return
	}
	DisplayResult(r.out, label, value, elapsed)
}
