// This file contains the environment variable overrides and the flag
// re-application that enforce CLI > env > file > defaults.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// lookupEnv returns the value of EnvPrefix+key, or defaultVal if unset or
// empty.
func lookupEnv(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// isFlagSet checks if a flag was explicitly set on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// setting binds one configuration field to its environment key and flag
// name. apply parses a textual value and ignores values it cannot parse.
type setting struct {
	envKey string
	flag   string
	apply  func(*AppConfig, string)
}

func intSetting(envKey, flagName string, field func(*AppConfig) *int) setting {
	return setting{envKey, flagName, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*field(c) = parsed
		}
	}}
}

func durationSetting(envKey, flagName string, field func(*AppConfig) *time.Duration) setting {
	return setting{envKey, flagName, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			*field(c) = parsed
		}
	}}
}

func boolSetting(envKey, flagName string, field func(*AppConfig) *bool) setting {
	return setting{envKey, flagName, func(c *AppConfig, v string) {
		*field(c) = parseBoolEnv(v, *field(c))
	}}
}

// settings is the declarative table of overridable fields. ConfigFile and
// EnvFile are resolved before the file is read and are not listed.
var settings = []setting{
	{"ADDR", "addr", func(c *AppConfig, v string) { c.Addr = v }},
	{"LOG_LEVEL", "log-level", func(c *AppConfig, v string) { c.LogLevel = v }},
	{"CORS_ORIGINS", "cors-origins", func(c *AppConfig, v string) { c.CORSOrigins = splitList(v) }},

	boolSetting("REPL", "repl", func(c *AppConfig) *bool { return &c.REPL }),
	boolSetting("NO_COLOR", "no-color", func(c *AppConfig) *bool { return &c.NoColor }),

	durationSetting("READ_TIMEOUT", "read-timeout", func(c *AppConfig) *time.Duration { return &c.ReadTimeout }),
	durationSetting("WRITE_TIMEOUT", "write-timeout", func(c *AppConfig) *time.Duration { return &c.WriteTimeout }),
	durationSetting("SHUTDOWN_TIMEOUT", "shutdown-timeout", func(c *AppConfig) *time.Duration { return &c.ShutdownTimeout }),

	intSetting("ACKERMANN_MAX_DEPTH", "ackermann-max-depth", func(c *AppConfig) *int { return &c.AckermannMaxDepth }),
	intSetting("ACKERMANN_MAX_STEPS", "ackermann-max-steps", func(c *AppConfig) *int { return &c.AckermannMaxSteps }),
	intSetting("ACKERMANN_MAX_BITS", "ackermann-max-bits", func(c *AppConfig) *int { return &c.AckermannMaxBits }),
	intSetting("MAX_FIBONACCI_N", "max-fibonacci-n", func(c *AppConfig) *int { return &c.MaxFibonacciN }),
	intSetting("MAX_FACTORIAL_N", "max-factorial-n", func(c *AppConfig) *int { return &c.MaxFactorialN }),
}

// parseBoolEnv parses a boolean value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// applyEnvOverrides applies MATHSVC_* variables for every setting whose flag
// was not given on the command line.
//
// Supported environment variables (all prefixed with MATHSVC_):
//   - ADDR, LOG_LEVEL, CORS_ORIGINS, REPL, NO_COLOR, READ_TIMEOUT,
//     WRITE_TIMEOUT, SHUTDOWN_TIMEOUT, ACKERMANN_MAX_DEPTH,
//     ACKERMANN_MAX_STEPS, ACKERMANN_MAX_BITS, MAX_FIBONACCI_N,
//     MAX_FACTORIAL_N
//   - CONFIG and ENV_FILE are read by ParseConfig itself.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, s := range settings {
		if isFlagSet(fs, s.flag) {
			continue
		}
		if val := os.Getenv(EnvPrefix + s.envKey); val != "" {
			s.apply(config, val)
		}
	}
}

// applyFlags copies every explicitly set flag onto config, so flags win
// over the file and the environment.
func applyFlags(config *AppConfig, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		for _, s := range settings {
			if s.flag == f.Name {
				s.apply(config, f.Value.String())
				return
			}
		}
	})
}
