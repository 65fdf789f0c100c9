package format

import (
	"strings"
	"testing"
	"time"
)

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0µs"},
		{750 * time.Microsecond, "750µs"},
		{time.Millisecond, "1ms"},
		{999 * time.Millisecond, "999ms"},
		{1500 * time.Millisecond, "1.5s"},
		{2 * time.Minute, "2m0s"},
	}
	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.in); got != tt.want {
			t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumberString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"0", "0"},
		{"120", "120"},
		{"1000", "1,000"},
		{"12345", "12,345"},
		{"123456", "123,456"},
		{"2432902008176640000", "2,432,902,008,176,640,000"},
		{"-1234567", "-1,234,567"},
		{"+999", "+999"},
	}
	for _, tt := range tests {
		if got := FormatNumberString(tt.in); got != tt.want {
			t.Errorf("FormatNumberString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("1", 40) + strings.Repeat("2", 40) + strings.Repeat("3", 40)

	got, cut := Truncate(long, 100, 25)
	if !cut {
		t.Fatal("120 digits over a limit of 100 should be truncated")
	}
	if want := strings.Repeat("1", 25) + "..." + strings.Repeat("3", 25); got != want {
		t.Errorf("Truncate = %q, want %q", got, want)
	}

	if got, cut := Truncate("218922995834555169026", 100, 25); cut || got != "218922995834555169026" {
		t.Errorf("short value changed: %q, %v", got, cut)
	}
}
