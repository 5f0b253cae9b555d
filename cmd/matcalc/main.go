// SPDX-License-Identifier: MIT

// Command matcalc evaluates matrix expressions on row-major YAML/JSON files.
//
//	matcalc add a.yaml b.yaml
//	matcalc mul --format json a.json b.json
//	matcalc trace --elem float64 m.yaml
//	cat m.yaml | matcalc transpose -
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/dimmat/internal/config"
	"github.com/katalvlaran/dimmat/internal/logging"
	"github.com/katalvlaran/dimmat/matrixio"
)

// app carries resolved settings from the root command to its subcommands.
type app struct {
	configFile string
	flags      config.Config // raw flag values, applied only when set

	cfg    *config.Config
	format matrixio.Format
	log    *zap.Logger
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "matcalc:", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree bound to the given streams.
func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{log: logging.Nop()}

	rootCmd := &cobra.Command{
		Use:               "matcalc",
		Short:             "dense matrix calculator",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&a.flags.Elem, "elem", config.DefaultElem, "element type: int64 or float64")
	pf.StringVar(&a.flags.Format, "format", config.DefaultFormat, "output format: yaml or json")
	pf.StringVar(&a.flags.LogLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	pf.IntVar(&a.flags.MaxDim, "max-dim", config.DefaultMaxDim, "largest accepted row or column count")

	rootCmd.AddCommand(
		newShowCmd(a),
		newBinaryCmd(a, "add", "element-wise sum A + B", opAdd),
		newBinaryCmd(a, "sub", "element-wise difference A - B", opSub),
		newBinaryCmd(a, "mul", "matrix product A × B", opMul),
		newScaleCmd(a),
		newTransposeCmd(a),
		newTraceCmd(a),
		newEqualCmd(a),
		newConfigCmd(a),
	)

	return rootCmd
}

// setup resolves config file + flags, then builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if a.configFile != "" {
		loaded, err := config.Load(a.configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("elem") {
		cfg.Elem = a.flags.Elem
	}
	if flags.Changed("format") {
		cfg.Format = a.flags.Format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.flags.LogLevel
	}
	if flags.Changed("max-dim") {
		cfg.MaxDim = a.flags.MaxDim
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	format, err := matrixio.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.cfg, a.format, a.log = cfg, format, log
	a.log.Debug("config resolved",
		zap.String("command", cmd.Name()),
		zap.String("elem", cfg.Elem),
		zap.String("format", cfg.Format),
		zap.Int("max_dim", cfg.MaxDim),
	)

	return nil
}
