package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	flagRandom      bool
	flagCollections bool
	flagHistory     bool
	flagHistoryN    int
	flagProgress    bool
	flagInteractive bool
	flagVerbose     bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "affirm",
	Short: "A personal affirmations library",
	Long: `affirm shows short text snippets from named collections, one at a time.

Run without flags to print the next line of the active collection in
sequence; progress and a capped history are kept in a single JSON file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !flagVerbose {
			return nil
		}
		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().BoolVarP(&flagRandom, "random", "r", false, "show a random line from the active collection")
	rootCmd.Flags().BoolVarP(&flagCollections, "collections", "c", false, "list collections")
	rootCmd.Flags().BoolVar(&flagHistory, "history", false, "show recently displayed lines")
	rootCmd.Flags().IntVarP(&flagHistoryN, "count", "n", 10, "number of history entries to show")
	rootCmd.Flags().BoolVarP(&flagProgress, "progress", "p", false, "show progress through the active collection")
	rootCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "start the interactive prompt")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	store := NewStore(cfg.DataPath, logger)
	doc, err := store.Load()
	if err != nil {
		return err
	}
	sel := NewSelector(cfg.HistoryCap)

	switch {
	case flagCollections:
		fmt.Println(renderCollections(doc))
		return nil
	case flagHistory:
		fmt.Println(renderHistory(doc, flagHistoryN))
		return nil
	case flagProgress:
		fmt.Println(renderProgress(doc))
		return nil
	case flagInteractive:
		return RunPrompt(store, sel, doc)
	}

	mode := cfg.DefaultMode
	if flagRandom {
		mode = ModeRandom
	}
	line, err := sel.Next(doc, doc.ActiveID, mode)
	if err != nil {
		return err
	}
	if err := store.Save(doc); err != nil {
		return err
	}
	fmt.Println(line)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
