package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/mko-api/infrastructure/database/postgres"
	"github.com/vfg2006/mko-api/infrastructure/migration"
	"github.com/vfg2006/mko-api/infrastructure/repository"
	"github.com/vfg2006/mko-api/internal/config"
	"github.com/vfg2006/mko-api/internal/usecases/adserving"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Cria as tabelas no Postgres",
		Long:  `Aplica o schema embutido no banco configurado em DATABASE_*. Pode ser executado várias vezes.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}

			if cfg.Storage.Driver != config.StorageDriverPostgres {
				return fmt.Errorf("migrate exige STORAGE_DRIVER=%s, atual: %s", config.StorageDriverPostgres, cfg.Storage.Driver)
			}

			conn, err := postgres.NewConnection(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := migration.Apply(cmd.Context(), conn); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Migração aplicada com sucesso.")
			return nil
		},
	}
}

func newSeedSlotsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-slots",
		Short: "Cria os slots de anúncio padrão que ainda não existem",
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
			inserted, err := admin.EnsureDefaultSlots(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d slots criados.\n", inserted)
			return nil
		},
	}
}
