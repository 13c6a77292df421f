package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vfg2006/mko-api/infrastructure/repository"
	"github.com/vfg2006/mko-api/internal/domain"
	"github.com/vfg2006/mko-api/internal/usecases/adserving"
)

func newCreativesCmd(a *app) *cobra.Command {
	creatives := &cobra.Command{
		Use:   "creatives",
		Short: "Consulta criativos de anúncio",
	}

	creatives.AddCommand(newCreativesStatsCmd(a))
	return creatives
}

func newCreativesStatsCmd(a *app) *cobra.Command {
	var slotID string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Mostra visualizações, cliques e CTR por criativo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}

			repos, err := repository.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer repos.Close()

			admin := adserving.NewAdminService(repos.AdSlots, repos.AdCreatives, repos.AdEvents)
			creatives, err := admin.ListCreatives(cmd.Context(), domain.AdCreativeFilter{SlotID: slotID})
			if err != nil {
				return err
			}

			if len(creatives) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nenhum criativo encontrado.")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSLOT\tSTATUS\tVIEWS\tCLICKS\tCTR")
			for _, c := range creatives {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%.2f%%\n", c.ID, c.SlotID, c.Status, c.ViewsCount, c.ClicksCount, c.CTR)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&slotID, "slot", "", "filtra por slot")
	return cmd
}
