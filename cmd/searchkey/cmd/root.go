// Package cmd implements the searchkey command line tool.
package cmd

import (
	"bufio"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Environment variables read by the tool.
const (
	envLogLevel = "SEARCHKEY_LOG_LEVEL"
	envSecret   = "SEARCHKEY_SECRET"
)

// app carries state shared by the subcommands.
type app struct {
	verbose bool
	log     zerolog.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "searchkey",
		Short: "Normalize text into search keys",
		Long: `searchkey turns text into canonical search keys that ignore accents,
digit scripts, white space and (optionally) Arabic letter variants.

Input is taken from the arguments, or from stdin one line at a time.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.log = newLogger(cmd.ErrOrStderr(), a.level())
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newNormalizeCmd(a),
		newSlugCmd(a),
		newDigestCmd(a),
	)
	return root
}

// Execute runs the tool with os.Args.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		log := newLogger(os.Stderr, zerolog.ErrorLevel)
		log.Error().Err(err).Msg("searchkey failed")
		return err
	}
	return nil
}

func (a *app) level() zerolog.Level {
	if a.verbose {
		return zerolog.DebugLevel
	}
	return parseLevel(os.Getenv(envLogLevel))
}

func newLogger(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger()
}

// parseLevel maps a level name to zerolog. Unknown or empty names select warn.
func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

// eachInput calls fn for every argument, or for every stdin line when there are none.
func eachInput(cmd *cobra.Command, args []string, fn func(string) error) error {
	if len(args) > 0 {
		for _, arg := range args {
			if err := fn(arg); err != nil {
				return err
			}
		}
		return nil
	}
	sc := bufio.NewScanner(cmd.InOrStdin())
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if err := fn(sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}
