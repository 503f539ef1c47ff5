package cli

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"quizdeck/internal/content"
	"quizdeck/internal/question"
)

// moduleQuestions is the document printed by the show command.
type moduleQuestions struct {
	Module    string              `json:"module" yaml:"module"`
	Title     string              `json:"title" yaml:"title"`
	Source    content.Source      `json:"source" yaml:"source"`
	Questions []question.Question `json:"questions" yaml:"questions"`
}

func runShow(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .quizdeck/config.yml)")
		format := flags.String("format", "yaml", "Output format: yaml|json")
		if code, ok := parseFlags(cmd, flags, args, 1, stdout, stderr); !ok {
			return code
		}
		outputFormat := strings.ToLower(strings.TrimSpace(*format))
		if outputFormat != "yaml" && outputFormat != "json" {
			fmt.Fprintf(stderr, "invalid format %q (expected yaml|json)\n", *format)
			return ExitUsage
		}

		ws, err := openWorkspace(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		set, err := ws.catalog.Questions(flags.Arg(0))
		if err != nil {
			if errors.Is(err, content.ErrModuleNotFound) {
				fmt.Fprintf(stderr, "Module %q not found in %s\n", flags.Arg(0), ws.catalog.Dir)
				return ExitError
			}
			fmt.Fprintf(stderr, "Show failed: %v\n", err)
			return ExitError
		}
		doc := moduleQuestions{
			Module:    set.Module.ID,
			Title:     set.Module.Title,
			Source:    set.Source,
			Questions: set.Questions,
		}
		if doc.Questions == nil {
			doc.Questions = []question.Question{}
		}

		if err := writeDocument(stdout, outputFormat, doc); err != nil {
			fmt.Fprintf(stderr, "Show failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

func writeDocument(w io.Writer, format string, doc any) error {
	if format == "json" {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return encoder.Close()
}
