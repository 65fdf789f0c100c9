// Package config resolves the mathsvc configuration from command-line flags,
// MATHSVC_* environment variables, an optional YAML file and built-in
// defaults, in that order of priority. A .env file is loaded into the
// environment before variables are read.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/mathsvc/internal/errors"
	"github.com/agbru/mathsvc/internal/logging"
)

// EnvPrefix is the prefix of every environment variable read by ParseConfig.
const EnvPrefix = "MATHSVC_"

// AppConfig is the resolved application configuration.
type AppConfig struct {
	Addr     string `yaml:"addr"`
	LogLevel string `yaml:"log_level"`
	// REPL starts the interactive prompt instead of the HTTP server.
	REPL    bool `yaml:"repl"`
	NoColor bool `yaml:"no_color"`

	ConfigFile string `yaml:"-"`
	EnvFile    string `yaml:"-"`

	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	AckermannMaxDepth int `yaml:"ackermann_max_depth"`
	AckermannMaxSteps int `yaml:"ackermann_max_steps"`
	AckermannMaxBits  int `yaml:"ackermann_max_bits"`
	// MaxFibonacciN and MaxFactorialN cap accepted arguments; a negative
	// value removes the cap.
	MaxFibonacciN int `yaml:"max_fibonacci_n"`
	MaxFactorialN int `yaml:"max_factorial_n"`

	CORSOrigins []string `yaml:"cors_origins"`
}

// Default returns the built-in configuration.
func Default() AppConfig {
	return AppConfig{
		Addr:              ":8080",
		LogLevel:          "info",
		EnvFile:           ".env",
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      2 * time.Minute,
		ShutdownTimeout:   10 * time.Second,
		AckermannMaxDepth: 50_000,
		AckermannMaxSteps: 20_000_000,
		AckermannMaxBits:  64,
		MaxFibonacciN:     10_000,
		MaxFactorialN:     20_000,
		CORSOrigins:       []string{"*"},
	}
}

// ParseConfig parses args, loads the env and YAML files and applies
// environment overrides. Usage and parse errors are written to errWriter;
// -h returns flag.ErrHelp.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	flagged := Default()
	var cors string
	fs.StringVar(&flagged.Addr, "addr", flagged.Addr, "HTTP listen address")
	fs.StringVar(&flagged.LogLevel, "log-level", flagged.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&flagged.REPL, "repl", flagged.REPL, "start the interactive prompt instead of the HTTP server")
	fs.BoolVar(&flagged.NoColor, "no-color", flagged.NoColor, "disable colored output")
	fs.StringVar(&flagged.ConfigFile, "config", flagged.ConfigFile, "path to a YAML configuration file")
	fs.StringVar(&flagged.EnvFile, "env-file", flagged.EnvFile, "path to a .env file (ignored when missing)")
	fs.DurationVar(&flagged.ReadTimeout, "read-timeout", flagged.ReadTimeout, "HTTP read timeout")
	fs.DurationVar(&flagged.WriteTimeout, "write-timeout", flagged.WriteTimeout, "HTTP write timeout")
	fs.DurationVar(&flagged.ShutdownTimeout, "shutdown-timeout", flagged.ShutdownTimeout, "graceful shutdown timeout")
	fs.IntVar(&flagged.AckermannMaxDepth, "ackermann-max-depth", flagged.AckermannMaxDepth, "maximum Ackermann recursion depth")
	fs.IntVar(&flagged.AckermannMaxSteps, "ackermann-max-steps", flagged.AckermannMaxSteps, "maximum Ackermann evaluation steps")
	fs.IntVar(&flagged.AckermannMaxBits, "ackermann-max-bits", flagged.AckermannMaxBits, "maximum Ackermann result width in bits")
	fs.IntVar(&flagged.MaxFibonacciN, "max-fibonacci-n", flagged.MaxFibonacciN, "largest accepted Fibonacci index (negative for no limit)")
	fs.IntVar(&flagged.MaxFactorialN, "max-factorial-n", flagged.MaxFactorialN, "largest accepted factorial argument (negative for no limit)")
	fs.StringVar(&cors, "cors-origins", strings.Join(flagged.CORSOrigins, ","), "comma-separated allowed CORS origins")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(errWriter, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %v", fs.Args())
	}

	envFile := flagged.EnvFile
	if !isFlagSet(fs, "env-file") {
		envFile = lookupEnv("ENV_FILE", envFile)
	}
	if err := LoadEnvFile(envFile); err != nil {
		return AppConfig{}, err
	}

	cfg := Default()
	cfg.EnvFile = envFile
	cfg.ConfigFile = flagged.ConfigFile
	if !isFlagSet(fs, "config") {
		cfg.ConfigFile = lookupEnv("CONFIG", cfg.ConfigFile)
	}
	if cfg.ConfigFile != "" {
		if err := LoadFile(cfg.ConfigFile, &cfg); err != nil {
			return AppConfig{}, err
		}
	}

	applyEnvOverrides(&cfg, fs)
	applyFlags(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values no component can use.
func (c AppConfig) Validate() error {
	if strings.TrimSpace(c.Addr) == "" && !c.REPL {
		return apperrors.NewConfigError("addr must not be empty")
	}
	if !validLogLevel(c.LogLevel) {
		return apperrors.NewConfigError("unknown log level %q", c.LogLevel)
	}
	for name, d := range map[string]time.Duration{
		"read-timeout":     c.ReadTimeout,
		"write-timeout":    c.WriteTimeout,
		"shutdown-timeout": c.ShutdownTimeout,
	} {
		if d <= 0 {
			return apperrors.NewConfigError("%s must be positive, got %s", name, d)
		}
	}
	for name, v := range map[string]int{
		"ackermann-max-depth": c.AckermannMaxDepth,
		"ackermann-max-steps": c.AckermannMaxSteps,
		"ackermann-max-bits":  c.AckermannMaxBits,
	} {
		if v < 0 {
			return apperrors.NewConfigError("%s must not be negative, got %d", name, v)
		}
	}
	if c.AckermannMaxBits > 64 {
		return apperrors.NewConfigError("ackermann-max-bits must be at most 64, got %d", c.AckermannMaxBits)
	}
	if c.MaxFibonacciN == 0 || c.MaxFactorialN == 0 {
		return apperrors.NewConfigError("max-fibonacci-n and max-factorial-n must not be zero")
	}
	return nil
}

func validLogLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error", "disabled":
		return true
	}
	return false
}

// Logger builds the zerolog-backed logger for this configuration.
func (c AppConfig) Logger(w io.Writer) logging.Logger {
	return logging.NewLeveledLogger(w, "mathsvc", logging.ParseLevel(c.LogLevel))
}
