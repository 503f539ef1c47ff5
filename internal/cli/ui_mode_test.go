package cli

import (
	"io"
	"testing"
)

// TestResolveUIMode covers each mode with and without a terminal.
func TestResolveUIMode(t *testing.T) {
	cases := []struct {
		mode    string
		tty     bool
		live    bool
		warns   bool
		invalid bool
	}{
		{mode: "auto", tty: true, live: true},
		{mode: "auto"},
		{mode: "", tty: true, live: true},
		{mode: " LIVE ", tty: true, live: true},
		{mode: "live", warns: true},
		{mode: "plain", tty: true},
		{mode: "Plain"},
		{mode: "fullscreen", tty: true, invalid: true},
	}

	original := isTerminal
	t.Cleanup(func() { isTerminal = original })

	for _, tc := range cases {
		tc := tc
		isTerminal = func(io.Writer) bool { return tc.tty }
		decision, err := resolveUIMode(tc.mode, nil)
		if tc.invalid {
			if err == nil {
				t.Fatalf("mode %q tty=%v: expected error", tc.mode, tc.tty)
			}
			continue
		}
		if err != nil {
			t.Fatalf("mode %q tty=%v: %v", tc.mode, tc.tty, err)
		}
		if decision.useLive != tc.live {
			t.Fatalf("mode %q tty=%v: live=%v, want %v", tc.mode, tc.tty, decision.useLive, tc.live)
		}
		if (decision.warning != "") != tc.warns {
			t.Fatalf("mode %q tty=%v: warning %q", tc.mode, tc.tty, decision.warning)
		}
	}
}

// TestStdoutIsTerminalRejectsBuffers treats plain writers as non-interactive.
func TestStdoutIsTerminalRejectsBuffers(t *testing.T) {
	if stdoutIsTerminal(io.Discard) {
		t.Fatalf("io.Discard is not a terminal")
	}
	if stdoutIsTerminal(nil) {
		t.Fatalf("nil writer is not a terminal")
	}
}
