package cli

import (
	"flag"
	"fmt"
	"io"
	"text/tabwriter"
)

func runList(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		modules, err := ws.catalog.List()
		if err != nil {
			fmt.Fprintf(stderr, "List failed: %v\n", err)
			return ExitError
		}
		if len(modules) == 0 {
			fmt.Fprintf(stdout, "No modules found in %s\n", ws.catalog.Dir)
			return ExitOK
		}

		tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTITLE\tQUESTIONS\tSOURCE")
		for _, module := range modules {
			set, err := ws.catalog.Questions(module.ID)
			if err != nil {
				fmt.Fprintf(tw, "%s\t%s\t-\terror: %v\n", module.ID, module.Title, err)
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", module.ID, module.Title, len(set.Questions), set.Source)
		}
		if err := tw.Flush(); err != nil {
			fmt.Fprintf(stderr, "List failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
