package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/govalues/quantity"
)

func newUnitsCommand() *cobra.Command {
	var uris bool
	cmd := &cobra.Command{
		Use:   "units",
		Short: "List the units of the built-in vocabulary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSYMBOL\tNAME")
			for _, u := range quantity.VocabularyItems() {
				id := u.ID
				if uris {
					id = u.URI()
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", id, u.Symbol, u.Name)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&uris, "uri", false, "print entity URIs instead of item ids")
	return cmd
}
