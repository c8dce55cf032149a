// Package cmd provides the CLI commands for quantityfmt.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/govalues/quantity"
	"github.com/govalues/quantity/internal/config"
	"github.com/govalues/quantity/internal/logging"
)

const version = "0.1.0"

// app holds the state shared by the commands of one invocation
type app struct {
	cfgFile string
	verbose bool

	cfg config.Config
	log *zap.Logger
}

// NewRootCommand returns the quantityfmt command tree.
func NewRootCommand() *cobra.Command {
	a := &app{cfg: config.Default(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "quantityfmt",
		Short: "Render measured quantities as text",
		Long: `quantityfmt renders quantities with an uncertainty interval and a unit,
rounding the amount and the margin to the same precision.

Examples:
  quantityfmt render +24 --upper +24.01 --lower +23.99
  quantityfmt render --unit m --upper=-1105 --lower=-1305 -- -1205
  quantityfmt render +3.125 --upper +3.2 --lower +3.0 --rounding -2
  quantityfmt batch values.jsonl`,
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "rendering profile (YAML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newRenderCommand(a))
	root.AddCommand(newBatchCommand(a))
	root.AddCommand(newUnitsCommand())
	root.AddCommand(newVersionCommand())
	return root
}

// Execute runs the CLI
func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) init(cmd *cobra.Command, _ []string) error {
	if a.cfgFile != "" {
		cfg, err := config.Load(a.cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		a.cfg = cfg
	}

	lc := a.cfg.Logging
	if a.verbose {
		lc.Level = "debug"
	}
	var err error
	switch lc.Output {
	case "", "stderr":
		a.log, err = logging.NewWithWriter(lc, cmd.ErrOrStderr())
	default:
		a.log, err = logging.New(lc)
	}
	if err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}

	if a.cfgFile != "" {
		a.log.Debug("loaded config", zap.String("file", a.cfgFile), zap.Int("units", len(a.cfg.Units)))
	}
	return nil
}

// formatFlags are the rendering flags shared by render and batch.
// Flags that are not set keep the value of the profile.
type formatFlags struct {
	margin    bool
	rounding  string
	applyUnit bool
	forceSign bool
	template  string
	separator string
}

func (f *formatFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.margin, "margin", true, "show the uncertainty margin")
	cmd.Flags().StringVarP(&f.rounding, "rounding", "r", "auto", "rounding: auto, off or an exponent such as -2")
	cmd.Flags().BoolVar(&f.applyUnit, "apply-unit", true, "show the unit label")
	cmd.Flags().BoolVar(&f.forceSign, "force-sign", false, "print a sign in front of non-negative amounts")
	cmd.Flags().StringVarP(&f.template, "template", "t", "", "template with $1 for the number and $2 for the unit")
	cmd.Flags().StringVar(&f.separator, "separator", ".", "decimal separator")
}

// formatter builds the formatter from the profile and the changed flags.
func (a *app) formatter(cmd *cobra.Command, f *formatFlags) (*quantity.Formatter, error) {
	cfg := a.cfg
	if cmd.Flags().Changed("separator") {
		cfg.Format.DecimalSeparator = f.separator
	}

	var opts []quantity.Option
	if cmd.Flags().Changed("margin") {
		opts = append(opts, quantity.WithMargin(f.margin))
	}
	if cmd.Flags().Changed("rounding") {
		r, err := quantity.ParseRounding(f.rounding)
		if err != nil {
			return nil, fmt.Errorf("--rounding: %w", err)
		}
		opts = append(opts, quantity.WithRounding(r))
	}
	if cmd.Flags().Changed("apply-unit") {
		opts = append(opts, quantity.WithUnit(f.applyUnit))
	}
	if cmd.Flags().Changed("force-sign") {
		opts = append(opts, quantity.WithSign(f.forceSign))
	}
	if cmd.Flags().Changed("template") {
		opts = append(opts, quantity.WithTemplate(f.template))
	}

	fmtr, err := cfg.Formatter(opts...)
	if err != nil {
		return nil, err
	}
	o := fmtr.Options()
	a.log.Debug("formatter ready",
		zap.Bool("show_margin", o.ShowMargin),
		zap.Stringer("rounding", o.Rounding),
		zap.Bool("apply_unit", o.ApplyUnit),
		zap.Bool("force_sign", o.ForceSign),
		zap.String("template", o.Template),
	)
	return fmtr, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "quantityfmt version %s\n", version)
		},
	}
}
