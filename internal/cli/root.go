// Package cli implements the bounded command-line interface, a thin shell
// over pkg/number for normalizing and combining bounded values.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/bounded/internal/logger"
	"github.com/mesh-intelligence/bounded/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

var (
	errUnknownOperation = errors.New("unknown operation")
	errConfig           = errors.New("configuration error")
)

// app holds per-invocation state shared by the subcommands.
type app struct {
	configDirFlag string
	formatFlag    string
	verbose       bool

	configDir string
	cfg       *viper.Viper
	lggr      *zap.SugaredLogger
}

// NewRootCmd creates the top-level "bounded" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "bounded",
		Short: "Normalize and combine bounded control values",
		Long: "bounded clamps unipolar [0, 1] and bipolar [-1, 1] values and wraps\n" +
			"phases onto [0, 1), printing each result in the configured format.\n\n" +
			"Pass negative numbers after --, e.g. bounded phase new -- -0.25",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	a.bindFlags(root.PersistentFlags())

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newUnipolarCmd(a))
	root.AddCommand(newBipolarCmd(a))
	root.AddCommand(newPhaseCmd(a))

	return root
}

func (a *app) bindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&a.configDirFlag, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/bounded)")
	fs.StringVar(&a.formatFlag, "format", "", "output format: text, json or yaml")
	fs.BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, errUnknownFormat):
		return exitUserError
	case errors.Is(err, errConfig):
		return exitSysError
	}
	return exitUserError
}

// setup resolves the config directory, loads config.yaml and builds the
// logger unless one was injected.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	dir, err := paths.ResolveConfigDir(a.configDirFlag)
	if err != nil {
		return fmt.Errorf("%w: resolve config dir: %w", errConfig, err)
	}
	a.configDir = dir

	cfg, err := loadConfig(dir)
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		cfg.Set(cfgKeyFormat, a.formatFlag)
	}
	if _, err := outputFormat(cfg.GetString(cfgKeyFormat)); err != nil {
		return err
	}
	a.cfg = cfg

	if a.lggr == nil {
		level := cfg.GetString(cfgKeyLogLevel)
		if a.verbose {
			level = "debug"
		}
		lggr, err := logger.New(level)
		if err != nil {
			return fmt.Errorf("%w: %w", errConfig, err)
		}
		a.lggr = lggr
	}
	a.lggr.Debugw("configuration loaded", "config_dir", dir, "format", cfg.GetString(cfgKeyFormat))
	return nil
}

func (a *app) teardown(cmd *cobra.Command, args []string) error {
	if a.lggr != nil {
		// Syncing stderr fails on some terminals; nothing useful to report.
		_ = a.lggr.Sync()
	}
	return nil
}

// unknownOperation rejects operations that are not registered as
// subcommands of a value type command.
func unknownOperation(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	return fmt.Errorf("%w %q for %q", errUnknownOperation, args[0], cmd.CommandPath())
}
