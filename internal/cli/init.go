package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"quizdeck/internal/config"
)

// initInput allows tests to override stdin for init prompts.
var initInput io.Reader = os.Stdin

// defaultLogEntry is the log file written by the scaffolded config.
const defaultLogEntry = ".quizdeck/quizdeck.log"

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		dir := flags.String("dir", "", "Directory to initialize (default: working directory)")
		assumeYes := flags.Bool("yes", false, "Skip confirmation prompts")
		if code, ok := parseFlags(cmd, flags, args, 0, stdout, stderr); !ok {
			return code
		}

		root := strings.TrimSpace(*dir)
		if root == "" {
			wd, err := os.Getwd()
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			root = wd
		}
		root, err := filepath.Abs(root)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}

		configPath := config.ConfigPath(root)
		if info, err := os.Stat(configPath); err == nil {
			if info.IsDir() {
				fmt.Fprintf(stderr, "Init failed: config path %q is a directory\n", configPath)
				return ExitError
			}
			fmt.Fprintf(stderr, "Init failed: config file already exists at %q\n", configPath)
			return ExitError
		} else if !os.IsNotExist(err) {
			fmt.Fprintf(stderr, "Init failed: stat config file: %v\n", err)
			return ExitError
		}

		in := initInput
		if in == nil {
			in = os.Stdin
		}
		reader := bufio.NewReader(in)

		if !*assumeYes {
			confirm, err := promptYesNo(reader, stdout, fmt.Sprintf("Initialize quizdeck in %s?", root), true)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			if !confirm {
				fmt.Fprintln(stderr, "Init cancelled.")
				return ExitError
			}
		}

		addGitignore := false
		if isGitRepo(root) {
			addGitignore = *assumeYes
			if !*assumeYes {
				answer, err := promptYesNo(reader, stdout, "Add the log file to .gitignore?", true)
				if err != nil {
					fmt.Fprintf(stderr, "Init failed: %v\n", err)
					return ExitError
				}
				addGitignore = answer
			}
		}

		_, dataErr := os.Stat(filepath.Join(root, config.DefaultDataDir))
		written, err := config.Scaffold(root)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", written)
		if os.IsNotExist(dataErr) {
			fmt.Fprintf(stdout, "Wrote %s\n", filepath.Join(root, config.DefaultDataDir, "1.md"))
		}
		if addGitignore {
			updated, err := addGitignoreEntry(root, defaultLogEntry)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: update .gitignore: %v\n", err)
				return ExitError
			}
			if updated {
				fmt.Fprintf(stdout, "Updated %s\n", filepath.Join(root, ".gitignore"))
			}
		}
		return ExitOK
	}
}

// isGitRepo reports whether root holds a .git directory or file.
func isGitRepo(root string) bool {
	_, err := os.Stat(filepath.Join(root, ".git"))
	return err == nil
}
