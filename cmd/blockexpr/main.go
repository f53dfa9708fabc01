// Command blockexpr is a thin CLI over pkgs/parser: parse a file and
// print its round-tripped source plus diagnostics, print the types of its
// top-level line bodies, or watch a file and re-run the parser on every
// change. Grounded on opal-lang-opal/cli/main.go's
// cobra root command shape, generalized from one command's flags down to
// three subcommands.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/aledsdavies/blockexpr/internal/diagnostics"
	"github.com/aledsdavies/blockexpr/pkgs/parser"
	"github.com/aledsdavies/blockexpr/pkgs/pretty"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	root := &cobra.Command{
		Use:           "blockexpr",
		Short:         "Lex and parse blockexpr source files",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(newParseCmd(log))
	root.AddCommand(newTokensCmd(log))
	root.AddCommand(newWatchCmd(log))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newParseCmd(log *slog.Logger) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a file and print its round-tripped source plus any diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(log, args[0], quiet)
		},
	}
	cmd.Flags().BoolVar(&quiet, "quiet", false, "suppress the pretty-printed round-trip")
	return cmd
}

func runParse(log *slog.Logger, path string, quiet bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	log.Debug("parsing", "file", path, "bytes", len(raw))
	module := parser.Parse(string(raw))

	if !quiet {
		fmt.Print(pretty.Print(*module))
	}

	findings := diagnostics.Collect(*module)
	for _, f := range findings {
		fmt.Fprintln(os.Stderr, diagnostics.Render(string(raw), f))
	}
	if len(findings) > 0 {
		return fmt.Errorf("%d diagnostic(s) in %s", len(findings), path)
	}
	return nil
}

func newTokensCmd(log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Parse a file and print its top-level node shapes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			log.Debug("parsing", "file", args[0], "bytes", len(raw))
			module := parser.Parse(string(raw))
			fmt.Printf("%T\n", module.FirstLine.Body)
			for _, l := range module.OtherLines {
				fmt.Printf("%T\n", l.Body)
			}
			return nil
		},
	}
}

func newWatchCmd(log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-run parse on every write to file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(log, args[0])
		},
	}
}

func runWatch(log *slog.Logger, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	log.Info("watching", "file", path)
	if err := runParse(log, path, false); err != nil {
		log.Error("parse failed", "error", err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			log.Info("change detected", "file", event.Name)
			if err := runParse(log, path, false); err != nil {
				log.Error("parse failed", "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watcher error", "error", err)
		}
	}
}
