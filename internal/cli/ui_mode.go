package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"quizdeck/internal/config"
)

const (
	uiModeLive  = "live"
	uiModePlain = "plain"
)

// uiModeDecision says which view takes the quiz.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal reports whether a writer is a TTY. Tests swap it out.
var isTerminal = stdoutIsTerminal

// resolveUIMode picks the full-screen quiz or the line prompt. The live view
// needs a terminal; asking for it without one degrades to the prompt with a
// warning instead of failing.
func resolveUIMode(mode string, stdout io.Writer) (uiModeDecision, error) {
	name := strings.ToLower(strings.TrimSpace(mode))
	if name == "" {
		name = config.DefaultUIMode
	}
	tty := isTerminal(stdout)
	switch name {
	case config.DefaultUIMode:
		return uiModeDecision{useLive: tty}, nil
	case uiModeLive:
		if !tty {
			return uiModeDecision{warning: "Live UI requested but stdout is not a TTY; falling back to the plain prompt."}, nil
		}
		return uiModeDecision{useLive: true}, nil
	case uiModePlain:
		return uiModeDecision{}, nil
	}
	return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", mode)
}

func stdoutIsTerminal(w io.Writer) bool {
	switch out := w.(type) {
	case *os.File:
		return out != nil && term.IsTerminal(int(out.Fd()))
	case interface{ Fd() uintptr }:
		return term.IsTerminal(int(out.Fd()))
	}
	return false
}
