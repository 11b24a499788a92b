package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oliveiraclick/criadorLP/internal/format"
)

func projectsCMD(load loadFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Inspect saved projects",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved projects, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load(cmd.Context())
			if err != nil {
				return err
			}
			store, err := openStore(cfg, zap.NewNop())
			if err != nil {
				return err
			}
			defer store.Close()

			list, err := store.Load(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNOME\tSEGMENTO\tSTATUS\tMODIFICADO")
			for _, p := range list {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Industry, p.Status, format.FmtDate(p.LastModified))
			}
			return tw.Flush()
		},
	})
	return cmd
}
