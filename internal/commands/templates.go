package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/SscSPs/ledger_engine/internal/templates"
	"github.com/spf13/cobra"
)

func newTemplatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the charts of accounts a ledger can be created from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := templates.List()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tACCOUNTS\tDESCRIPTION")
			for _, t := range list {
				fmt.Fprintf(w, "%s\t%d\t%s\n", t.Name, t.Accounts, t.Description)
			}
			return w.Flush()
		},
	}
}
