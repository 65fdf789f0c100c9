package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// decodeEntries parses the JSON lines written by a ZerologAdapter.
func decodeEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON log line %q: %v", line, err)
		}
		entries = append(entries, m)
	}
	return entries
}

func TestZerologAdapter_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "engine")

	logger.Debug("computation served", String("operation", "fibonacci"))
	logger.Info("http server listening", String("addr", ":8080"))
	logger.Error("computation failed", errors.New("depth exceeded"), String("kind", "computation_fault"))

	entries := decodeEntries(t, &buf)
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	tests := []struct {
		level, message, key, value string
	}{
		{"debug", "computation served", "operation", "fibonacci"},
		{"info", "http server listening", "addr", ":8080"},
		{"error", "computation failed", "kind", "computation_fault"},
	}
	for i, tt := range tests {
		e := entries[i]
		if e["level"] != tt.level || e["message"] != tt.message {
			t.Errorf("entry %d = %v/%v, want %s/%s", i, e["level"], e["message"], tt.level, tt.message)
		}
		if e[tt.key] != tt.value {
			t.Errorf("entry %d field %s = %v, want %s", i, tt.key, e[tt.key], tt.value)
		}
		if e["component"] != "engine" {
			t.Errorf("entry %d component = %v, want engine", i, e["component"])
		}
		if _, ok := e["time"]; !ok {
			t.Errorf("entry %d has no timestamp", i)
		}
	}
	if entries[2]["error"] != "depth exceeded" {
		t.Errorf("error entry carries %v, want the error text", entries[2]["error"])
	}
}

func TestFieldEncoding(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  any
	}{
		{"string", String("path", "/fibonacci/10"), "/fibonacci/10"},
		{"int", Int("status", 422), float64(422)},
		{"duration", Duration("latency", 1500*time.Millisecond), float64(1500)},
		{"error", Err(errors.New("boom")), "boom"},
		{"uint64", Field{Key: "hits", Value: uint64(7)}, float64(7)},
		{"bool", Field{Key: "ok", Value: true}, true},
		{"struct", Field{Key: "pair", Value: struct{ M int }{M: 3}}, map[string]any{"M": float64(3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewLogger(&buf, "test").Info("entry", tt.field)

			entries := decodeEntries(t, &buf)
			got := entries[0][tt.field.Key]
			gotJSON, _ := json.Marshal(got)
			wantJSON, _ := json.Marshal(tt.want)
			if !bytes.Equal(gotJSON, wantJSON) {
				t.Errorf("%s = %s, want %s", tt.field.Key, gotJSON, wantJSON)
			}
		})
	}
}

func TestNewLeveledLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLeveledLogger(&buf, "mathsvc", zerolog.WarnLevel)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Error("shown", errors.New("x"))

	entries := decodeEntries(t, &buf)
	if len(entries) != 1 || entries[0]["message"] != "shown" {
		t.Errorf("entries = %v, want only the error entry", entries)
	}
}

func TestNewLeveledLogger_Disabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLeveledLogger(&buf, "mathsvc", ParseLevel("disabled"))

	logger.Error("dropped", errors.New("x"))

	if buf.Len() != 0 {
		t.Errorf("disabled logger wrote %q", buf.String())
	}
}

func TestNewNopLogger(t *testing.T) {
	var logger Logger = NewNopLogger()
	logger.Info("ignored", Int("n", 1))
	logger.Error("ignored", errors.New("x"))
	logger.Debug("ignored")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{" warn ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"chatty", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
