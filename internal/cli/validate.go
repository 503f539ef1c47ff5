package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"

	"quizdeck/internal/question"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .quizdeck/config.yml)")
		if code, ok := parseFlags(cmd, flags, args, 0, stdout, stderr); !ok {
			return code
		}

		ws, err := openWorkspace(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		if ws.configPath == "" {
			fmt.Fprintln(stdout, "Config OK (defaults, no config file)")
		} else {
			fmt.Fprintf(stdout, "Config OK: %s\n", ws.configPath)
		}

		failed := false
		bankPaths, err := ws.catalog.BankPaths()
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		for _, path := range bankPaths {
			bank, err := question.LoadBank(path)
			if err != nil {
				failed = true
				fmt.Fprintf(stderr, "%s:\n%v\n", filepath.Base(path), err)
				continue
			}
			fmt.Fprintf(stdout, "Bank OK: %s (%d questions)\n", filepath.Base(path), len(bank.Questions))
		}

		modules, err := ws.catalog.List()
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		for _, module := range modules {
			parsed := question.Parse(module.Content)
			if _, hasSection := question.ExtractSection(module.Content); !hasSection {
				fmt.Fprintf(stdout, "Module %s: no quiz section\n", module.ID)
				continue
			}
			if len(parsed) == 0 {
				fmt.Fprintf(stdout, "Module %s: quiz section has no valid questions\n", module.ID)
				continue
			}
			fmt.Fprintf(stdout, "Module %s: %d questions\n", module.ID, len(parsed))
		}

		if failed {
			return ExitError
		}
		return ExitOK
	}
}
