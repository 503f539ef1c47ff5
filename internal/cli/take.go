package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"quizdeck/internal/content"
	"quizdeck/internal/logging"
	"quizdeck/internal/quiz"
	"quizdeck/internal/ui/live"
	"quizdeck/internal/ui/plain"
)

// Seams for tests.
var (
	runLive             = live.Run
	runPlain            = plain.Run
	takeInput io.Reader = os.Stdin
)

func runTake(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .quizdeck/config.yml)")
		uiMode := flags.String("ui", "", "UI mode: auto|live|plain (default from config)")
		noColor := flags.Bool("no-color", false, "Disable colors in the live UI")
		if code, ok := parseFlags(cmd, flags, args, 1, stdout, stderr); !ok {
			return code
		}
		moduleID := flags.Arg(0)

		ws, err := openWorkspace(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		mode := ws.cfg.UI.Mode
		if *uiMode != "" {
			mode = *uiMode
		}
		decision, err := resolveUIMode(mode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		var fallback io.Writer = stderr
		if decision.useLive {
			fallback = nil
		}
		logger, closer, err := logging.Setup(logging.Options{
			Level:  ws.cfg.Log.Level,
			Format: ws.cfg.Log.Format,
			Path:   ws.cfg.LogPath(),
		}, fallback)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to set up logging: %v\n", err)
			return ExitError
		}
		defer closer.Close()

		set, err := ws.catalog.Questions(moduleID)
		if err != nil {
			if errors.Is(err, content.ErrModuleNotFound) {
				fmt.Fprintf(stderr, "Module %q not found in %s\n", moduleID, ws.catalog.Dir)
				return ExitError
			}
			fmt.Fprintf(stderr, "Failed to load questions: %v\n", err)
			return ExitError
		}
		if len(set.Questions) == 0 {
			fmt.Fprintf(stderr, "Module %q has no quiz questions\n", moduleID)
			return ExitError
		}
		if set.Source == content.SourceSample {
			fmt.Fprintf(stderr, "Module %q has no quiz of its own; using the sample questions.\n", moduleID)
		}
		logger.Info().
			Str("module", moduleID).
			Str("source", string(set.Source)).
			Int("questions", len(set.Questions)).
			Msg("quiz loaded")

		session, err := quiz.New(set.Questions, quiz.WithObserver(logging.NewSessionObserver(logger)))
		if err != nil {
			fmt.Fprintf(stderr, "Failed to start quiz: %v\n", err)
			return ExitError
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if decision.useLive {
			err = runLive(ctx, session, takeInput, stdout, live.Options{
				Title:     set.Module.Title,
				NoColor:   *noColor || ws.cfg.UI.NoColor,
				AltScreen: true,
			})
		} else {
			err = runPlain(ctx, session, takeInput, stdout, plain.Options{Title: set.Module.Title})
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
			return ExitError
		}

		if score, ok := session.Score(); ok {
			fmt.Fprintf(stdout, "Final score: %d / %d (%d%%)\n", score, session.Len(), quiz.Percentage(score, session.Len()))
		} else {
			fmt.Fprintf(stdout, "Quiz ended without submitting (%d of %d answered)\n", session.AnsweredCount(), session.Len())
		}
		return ExitOK
	}
}
