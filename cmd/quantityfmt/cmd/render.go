package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/govalues/quantity"
)

type renderFlags struct {
	formatFlags
	unit  string
	upper string
	lower string
}

func newRenderCommand(a *app) *cobra.Command {
	f := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render AMOUNT",
		Short: "Render a single quantity",
		Long: `Render a quantity given by its amount, bounds and unit.

Bounds default to the amount. Negative amounts must follow "--".

Examples:
  quantityfmt render +2 --upper +2.016 --lower +1.984
  quantityfmt render +5 --unit USD --template '<$2>$1'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd, f, args[0])
		},
	}
	f.register(cmd)
	cmd.Flags().StringVarP(&f.unit, "unit", "u", quantity.DimensionlessUnit, "unit identifier, 1 for dimensionless")
	cmd.Flags().StringVar(&f.upper, "upper", "", "upper bound (default amount)")
	cmd.Flags().StringVar(&f.lower, "lower", "", "lower bound (default amount)")
	return cmd
}

func (a *app) runRender(cmd *cobra.Command, f *renderFlags, amount string) error {
	q, err := quantity.ParseQuantity(amount, f.unit, f.upper, f.lower)
	if err != nil {
		return err
	}
	fmtr, err := a.formatter(cmd, &f.formatFlags)
	if err != nil {
		return err
	}
	a.log.Debug("rendering quantity",
		zap.Stringer("quantity", q),
		zap.Stringer("margin", q.Margin()),
		zap.Int("order_of_uncertainty", q.OrderOfUncertainty()),
	)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), fmtr.Format(q))
	return err
}
