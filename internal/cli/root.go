// Package cli provides the Cobra command tree for the jadepunk tool: checking
// character files against the rules and printing character sheets.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harkonenbade/jadepunk/internal/config"
	"github.com/harkonenbade/jadepunk/internal/game/character"
	"github.com/harkonenbade/jadepunk/internal/loader"
	"github.com/harkonenbade/jadepunk/internal/observability"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	cfg    config.Config
	logger *zap.Logger
	// newLogger builds the logger once configuration is loaded.
	newLogger func(config.LoggingConfig) (*zap.Logger, error)

	configPath  string
	logLevel    string
	advancement bool
}

// NewRootCommand builds the command tree. Command output goes to out and
// error messages to errOut; logs go wherever logging.output says.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	root, _ := newRootCommand(out, errOut)
	return root
}

func newRootCommand(out, errOut io.Writer) (*cobra.Command, *app) {
	a := &app{logger: zap.NewNop(), newLogger: observability.NewLogger}

	root := &cobra.Command{
		Use:   "jadepunk",
		Short: "Check Jadepunk characters against the chargen and advancement rules",
		Long: `jadepunk validates Jadepunk characters written as YAML and prints their sheets.

Every rule violation is reported in one pass. Errors make a character invalid;
warnings point out refresh that could be spent better.`,
		Example: `  # Validate one or more characters (files or directories)
  jadepunk check mitsune.yaml examples/

  # Print the report and a MoinMoin sheet
  jadepunk sheet --format moinmoin mitsune.yaml

  # Apply advancement rules instead of chargen rules
  jadepunk check --advancement veteran.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to config file (default ./"+config.DefaultName+" if present)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&a.advancement, "advancement", false, "Apply advancement rules instead of chargen rules")

	root.AddCommand(a.newCheckCommand(), a.newSheetCommand(), newFormatsCommand())
	return root, a
}

// setup loads configuration, binding command-line flags over file and environment values.
func (a *app) setup(cmd *cobra.Command) error {
	v, err := config.NewViper(a.configPath)
	if err != nil {
		return err
	}
	if err := v.BindPFlag("logging.level", cmd.Flags().Lookup("log-level")); err != nil {
		return fmt.Errorf("binding --log-level: %w", err)
	}
	if f := cmd.Flags().Lookup("format"); f != nil {
		if err := v.BindPFlag("output.format", f); err != nil {
			return fmt.Errorf("binding --format: %w", err)
		}
	}
	cfg, err := config.LoadFromViper(v)
	if err != nil {
		return err
	}
	logger, err := a.newLogger(cfg.Logging)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

// load reads every path, expanding directories, and applies --advancement.
func (a *app) load(paths []string) ([]*character.Character, error) {
	l := loader.New(a.logger, a.cfg.Rules.NewCharacter)
	var chars []*character.Character
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		if info.IsDir() {
			cs, err := l.LoadDir(p)
			if err != nil {
				return nil, err
			}
			chars = append(chars, cs...)
			continue
		}
		c, err := l.LoadFile(p)
		if err != nil {
			return nil, err
		}
		chars = append(chars, c)
	}
	if a.advancement {
		for _, c := range chars {
			c.NewCharacter = false
		}
	}
	return chars, nil
}

// Execute runs the jadepunk command tree against os.Args. Errors other than an
// invalid character are printed to stderr.
//
// Postcondition: Returns nil on success; use ExitCode to map the error to an exit status.
func Execute() error {
	root, a := newRootCommand(os.Stdout, os.Stderr)
	err := a.execute(root)
	if err != nil && ExitCode(err) != ExitInvalid {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// execute runs root and flushes the logger whether or not the command failed.
func (a *app) execute(root *cobra.Command) error {
	err := root.Execute()
	_ = a.logger.Sync()
	return err
}
