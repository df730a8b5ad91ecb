package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/gravassist/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by every subcommand.
type app struct {
	cfgPath string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "gravassist",
		Short: "Solve the fuel, Intcode, crossed-wire and passcode puzzles",
		Long: `gravassist reads a puzzle input and prints two answers, one per line:
part one, then part two.

Input paths and puzzle parameters come from a YAML config file
(--config); positional arguments and flags override it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			if a.logger != nil {
				return nil
			}
			logger, err := buildLogger(cfg.Logging.Level, a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "gravassist.yaml", "path to the YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newFuelCmd(a),
		newIntcodeCmd(a),
		newWiresCmd(a),
		newPasscodeCmd(a),
	)
	return root
}

// buildLogger returns a production zap logger at level, or at debug when
// verbose is set.
func buildLogger(level string, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}

// inputPath picks the positional argument when present, else the configured path.
func inputPath(args []string, configured string) string {
	if len(args) > 0 {
		return args[0]
	}
	return configured
}

// withInput opens path and hands it to read.
func withInput(path string, read func(f *os.File) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()
	return read(f)
}
