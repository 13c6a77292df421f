package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/vfg2006/mko-api/internal/config"
	"github.com/vfg2006/mko-api/pkg/log"
)

// app carrega a configuração sob demanda e define onde os comandos escrevem
type app struct {
	loadConfig func() (*config.Config, error)
	out        io.Writer
}

func (a *app) config() (*config.Config, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração: %w", err)
	}
	log.Setup(cfg.App.LogLevel)
	return cfg, nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "mko-cli",
		Short:         "Ferramentas administrativas do mko-api",
		Long:          `Comandos para migração do banco, criação de usuários e consulta de estatísticas dos anúncios.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetOut(a.out)
	root.AddCommand(
		newMigrateCmd(a),
		newSeedSlotsCmd(a),
		newUsersCmd(a),
		newCreativesCmd(a),
	)

	return root
}

func main() {
	a := &app{loadConfig: config.NewConfig, out: os.Stdout}

	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}
