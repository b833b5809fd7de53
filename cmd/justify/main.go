package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"github.com/younsl/justify/internal/logging"
	"github.com/younsl/justify/internal/version"
	"github.com/younsl/justify/pkg/formatter"
	"golang.org/x/term"
)

// exitHelp is the status used after printing usage, so scripts can tell a
// help request apart from a successful run.
const exitHelp = 255

var (
	opts          options
	helpRequested bool
)

// terminalWidth reports the column count of stdout when it is a terminal
func terminalWidth() (int, bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0, false
	}
	return w, true
}

// startProgressSpinner starts a spinner on stderr if stderr is a terminal
func startProgressSpinner(source string) *spinner.Spinner {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return nil
	}
	s := spinner.New(spinner.CharSets[9], 200*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = fmt.Sprintf(" Justifying %s ...", source)
	s.Start()
	return s
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "justify [width]",
		Short: "Justify plain text for display in a terminal",
		Long: `justify reads text one line at a time and prints every line justified
to the given width (80 by default). Spaces are inserted between words
until each line is exactly as wide as requested.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If version flag is set, print version info and exit
			if opts.showVersion {
				fmt.Fprintln(cmd.OutOrStdout(), version.Get())
				return nil
			}

			settings, err := opts.settings(args, terminalWidth)
			if err != nil {
				return err
			}

			logger := logging.NewLogger(cmd.ErrOrStderr(), opts.verbose)

			// Input source: file or standard input
			var in io.Reader = cmd.InOrStdin()
			source := "stdin"
			if opts.file != "" {
				f, err := os.Open(opts.file)
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in, source = f, opts.file
			}

			logger.Debug("starting",
				"source", source,
				"width", settings.Width,
				"mode", settings.Mode.String(),
				"hyphenate", settings.HyphenateOverflow,
				"ignore_spaces", settings.IgnoreSpaces)

			var s *spinner.Spinner
			if opts.progress {
				s = startProgressSpinner(source)
			}

			stats, err := process(in, cmd.OutOrStdout(), settings, logger)
			stats.Source = source

			if s != nil {
				s.FinalMSG = fmt.Sprintf("✓ [%d lines] %s justified - Completed in %.2f seconds\n",
					stats.Lines, source, stats.Duration.Seconds())
				s.Stop()
			}
			if err != nil {
				return err
			}

			if opts.stats {
				formatter.PrintRunStats(cmd.ErrOrStderr(), stats)
			}
			return nil
		},
	}

	// Usage goes to stderr and the process exits with exitHelp
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s\n\n%s", cmd.Long, cmd.UsageString())
		fmt.Fprintln(cmd.ErrOrStderr(), "\nDisplay-cell width measurement (-w) is available.")
		helpRequested = true
	})

	flags := rootCmd.Flags()

	// Original single-letter flags
	flags.BoolVarP(&opts.cells, "cells", "w", false, "Measure width in terminal cells (wide CJK = 2, combining marks = 0)")
	flags.BoolVarP(&opts.justifyLast, "justify-last", "j", false, "Justify the last line of each paragraph")
	flags.BoolVarP(&opts.hyphenate, "hyphenate", "H", false, "Hyphenate words that are longer than the width")
	flags.BoolVarP(&opts.ignoreSpaces, "ignore-spaces", "i", false, "Ignore spaces when justifying (use with -H for CJK or Thai text)")
	flags.BoolVarP(&opts.left, "left", "l", false, "Insert spaces starting at the left")
	flags.BoolVarP(&opts.right, "right", "r", false, "Insert spaces starting at the right")
	rootCmd.MarkFlagsMutuallyExclusive("left", "right")

	// Output strings
	flags.StringVar(&opts.newline, "newline", `\n`, "Line separator (escape sequences allowed)")
	flags.StringVar(&opts.hyphen, "hyphen", "-", "Hyphen used with --hyphenate")
	flags.StringVar(&opts.separator, "separator", `\n\n`, "Separator between paragraphs")

	// Input and reporting
	flags.BoolVar(&opts.autoWidth, "auto-width", false, "Use the terminal width of stdout when no width is given")
	flags.StringVarP(&opts.file, "file", "f", "", "Read input from a file instead of stdin")
	flags.BoolVar(&opts.stats, "stats", false, "Print processing statistics to stderr")
	flags.BoolVar(&opts.progress, "progress", false, "Show a progress spinner on stderr")
	flags.BoolVar(&opts.verbose, "verbose", false, "Enable debug logging")
	flags.BoolVarP(&opts.showVersion, "version", "v", false, "Show version information")

	return rootCmd
}

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if helpRequested {
		os.Exit(exitHelp)
	}
}
