package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/awsdsc/awsdsc/internal/config"
	"github.com/awsdsc/awsdsc/internal/history"
)

func newHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent describe invocations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadGlobalConfig()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}

			store, err := history.Open(cfg.HistoryPath)
			if err != nil {
				return err
			}
			defer store.Close()

			invocations, err := store.List(limit)
			if err != nil {
				return err
			}
			if len(invocations) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no invocations recorded")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "WHEN\tTYPE\tQUERY\tFORMAT\tITEMS\tSTATUS")
			for _, inv := range invocations {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
					inv.CreatedAt.Local().Format(time.DateTime),
					inv.TypeName, inv.Query, inv.Format, inv.ItemCount, inv.Status)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum entries to show")
	return cmd
}
