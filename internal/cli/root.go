// internal/cli/root.go
//
// Command-line entry point.
// Subcommands: solve, simulate, filter, serve, history, token.
// Every command loads config (defaults < --config YAML < env < flags) and sets
// up the global zerolog logger before running.

package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/history"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Execute runs the root command and exits non-zero on failure.
// SIGINT and SIGTERM cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// app carries the flags shared by every command and the resolved config.
type app struct {
	configPath string
	logLevel   string
	dbPath     string
	dictionary string
	jsonLogs   bool

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "wordle-solver",
		Short:        "Constraint-filtering Wordle solver",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&a.dbPath, "db", "", "SQLite history database path")
	pf.StringVar(&a.dictionary, "dictionary", "", "dictionary file (.txt or .json); embedded list when empty")

	cmd.AddCommand(
		solveCmd(a),
		simulateCmd(a),
		filterCmd(a),
		serveCmd(a),
		historyCmd(a),
		tokenCmd(a),
	)
	return cmd
}

// load resolves config and configures logging. Flags beat env and file.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("db") {
		cfg.DBPath = a.dbPath
	}
	if flags.Changed("dictionary") {
		cfg.DictionaryFile = a.dictionary
	}
	a.cfg = cfg
	a.setupLogging(cmd.ErrOrStderr())
	return nil
}

func (a *app) setupLogging(w io.Writer) {
	if lvl, err := zerolog.ParseLevel(a.cfg.LogLevel); err == nil && a.cfg.LogLevel != "" {
		zerolog.SetGlobalLevel(lvl)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	if a.jsonLogs {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})
}

func (a *app) lexicon() (*words.Lexicon, error) {
	lx, err := words.Load(a.cfg.Words())
	if err != nil {
		return nil, err
	}
	d, ans, g := lx.Stats()
	log.Debug().Int("dictionary", d).Int("answers", ans).Int("allowed", g).Msg("word lists loaded")
	return lx, nil
}

func (a *app) history() (*history.Store, error) {
	return history.Open(a.cfg.DBPath)
}

// sessionFlags registers --opening and --max-attempts on cmd.
func (a *app) sessionFlags(cmd *cobra.Command) {
	var opening string
	var maxAttempts int
	cmd.Flags().StringVar(&opening, "opening", "", "opening guess (default ADIEU)")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 0, "attempt cap (default 6)")

	cmd.PreRunE = func(c *cobra.Command, _ []string) error {
		if c.Flags().Changed("opening") {
			a.cfg.OpeningGuess = opening
		}
		if c.Flags().Changed("max-attempts") {
			a.cfg.MaxAttempts = maxAttempts
		}
		return a.cfg.Validate()
	}
}
