// Command boggle finds all dictionary words on a Boggle board.
//
// Usage:
//
//	boggle [flags] <board-file> <dictionary-file>
//
// The sorted list of words found is written to solution.txt, or to the file
// given by --output. Every flag may also be set by an environment variable
// prefixed with BOGGLE_, e.g. BOGGLE_BACKEND=trie.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/npillmayer/boggle"
	"github.com/npillmayer/boggle/setup"
)

type settings struct {
	Output  string
	Backend string
	Workers int
	Verbose bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "boggle <board-file> <dictionary-file>",
		Short: "Find all dictionary words on a Boggle board",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(2)(cmd, args); err != nil {
				log := newLogger(cmd.ErrOrStderr(), false)
				log.Error().Err(err).Msg("bad-arguments")
				return err
			}
			return nil
		},
		// failures are logged by the command itself
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := settings{
				Output:  v.GetString("output"),
				Backend: v.GetString("backend"),
				Workers: v.GetInt("workers"),
				Verbose: v.GetBool("verbose"),
			}
			return run(cmd.Context(), cfg, args[0], args[1], cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		log := newLogger(cmd.ErrOrStderr(), false)
		log.Error().Err(err).Msg("bad-flags")
		return err
	})
	flags := cmd.Flags()
	flags.StringP("output", "o", "solution.txt", "file to write the sorted solution to")
	flags.String("backend", string(boggle.BackendDAT), "lexicon backend: dat or trie")
	flags.Int("workers", 0, "number of parallel search workers (0 searches sequentially)")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	v.SetEnvPrefix("BOGGLE")
	v.AutomaticEnv()
	return cmd
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()
}

func run(ctx context.Context, cfg settings, boardPath, dictionaryPath string, stdout, stderr io.Writer) error {
	log := newLogger(stderr, cfg.Verbose)
	tracing.SetTraceSelector(newTraceSelector(log, cfg.Verbose))
	backend, err := boggle.ParseBackend(cfg.Backend)
	if err != nil {
		log.Error().Err(err).Msg("bad-backend")
		return err
	}
	start := time.Now()
	board, lex, err := setup.Load(boardPath, dictionaryPath, backend)
	if err != nil {
		log.Error().Err(err).Msg("setup-failed")
		return err
	}
	log.Debug().Str("backend", string(backend)).Int("words", lex.Size()).
		Int("cells", len(board.Grid())).Dur("took", time.Since(start)).Msg("loaded")

	start = time.Now()
	var words boggle.FoundWords
	if cfg.Workers > 0 {
		words, err = board.SolveParallel(ctx, lex, cfg.Workers)
		if err != nil {
			log.Error().Err(err).Msg("search-aborted")
			return err
		}
	} else {
		words = board.Solve(lex)
	}
	log.Debug().Int("found", words.Len()).Int("workers", cfg.Workers).
		Dur("took", time.Since(start)).Msg("solved")

	if err := setup.WriteSolutionFile(cfg.Output, words); err != nil {
		log.Error().Err(err).Msg("write-failed")
		return err
	}
	log.Info().Int("words", words.Len()).Str("output", cfg.Output).Msg("solution-written")
	fmt.Fprintf(stdout, "Found %d words, written to %s\n", words.Len(), cfg.Output)
	return nil
}
