package cmd

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/msto63/strlist/pkg/core/config"
	slerror "github.com/msto63/strlist/pkg/core/error"
	sllog "github.com/msto63/strlist/pkg/core/log"
	"github.com/msto63/strlist/pkg/strlist"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "strlist",
	Short: "strlist - growable string list tools",
	Long: `strlist drives the growable string list from the command line.

Commands:
  run      - Apply a script of list operations
  check    - Run the self-check scenarios
  demo     - Shuffle and sort the digits 0-9
  tui      - Interactive list editor
  version  - Show version information

Settings are read from --config (TOML or YAML) and STRLIST_* environment
variables, e.g. STRLIST_TRACE_ENABLED=true.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace every list operation")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text, json, console, logfmt")
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	if problems := configProblems(err); problems != "" {
		fmt.Fprintf(os.Stderr, "  %s\n", problems)
	}
}

// configProblems returns the rule violations behind an invalid
// configuration, or "" for any other error.
func configProblems(err error) string {
	var slErr *slerror.Error
	if !slerror.HasCode(err, slerror.CodeInvalidConfig) || !errors.As(err, &slErr) {
		return ""
	}
	problems, _ := slErr.Detail("errors")
	s, _ := problems.(string)
	return s
}

// session bundles the settings and diagnostics shared by the commands
type session struct {
	settings *config.Settings
	logger   *sllog.Logger
	observer *strlist.LogObserver
}

// newSession loads settings, applies the global flags and builds a logger
// writing to logOut.
func newSession(cmd *cobra.Command, logOut io.Writer) (*session, error) {
	settings, err := config.LoadSettings(cfgFile)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log-format") {
		settings.Log.Format = strings.ToLower(logFormat)
	}
	if verbose {
		settings.Trace.Enabled = true
		settings.Log.Level = "trace"
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	level, err := sllog.ParseLevel(settings.Log.Level)
	if err != nil {
		return nil, err
	}
	format, err := sllog.ParseFormat(settings.Log.Format)
	if err != nil {
		return nil, err
	}

	logger := sllog.NewWithConfig(sllog.Config{
		Level:  level,
		Format: format,
		Output: logOut,
		Name:   "strlist",
	})

	return &session{
		settings: settings,
		logger:   logger,
		observer: strlist.NewLogObserver(logger, verbosity(settings.Trace)),
	}, nil
}

// verbosity maps the trace settings onto observer categories. Test
// markers are independent of the trace switch.
func verbosity(t config.TraceSettings) strlist.Verbosity {
	return strlist.Verbosity{
		Trace:    t.Enabled,
		Messages: t.Enabled && t.Messages,
		Errors:   t.Enabled && t.Errors,
		Tests:    t.Tests,
	}
}

// options returns the list options for this session
func (s *session) options() []strlist.Option {
	opts := []strlist.Option{strlist.WithObserver(s.observer)}
	if s.settings.List.Seeded {
		seed := uint64(s.settings.List.Seed)
		opts = append(opts, strlist.WithRand(rand.New(rand.NewPCG(seed, seed))))
	}
	return opts
}
