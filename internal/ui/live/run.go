package live

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"quizdeck/internal/quiz"
)

// Run drives session interactively until the user quits or ctx is done.
func Run(ctx context.Context, session *quiz.Session, in io.Reader, out io.Writer, opts Options) error {
	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	program := tea.NewProgram(NewModel(session, opts), programOpts...)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run live ui: %w", err)
	}
	return nil
}
