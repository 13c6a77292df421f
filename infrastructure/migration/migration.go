package migration

import (
	"context"
	"database/sql"
	_ "embed"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mko-api/infrastructure/database/postgres"
)

//go:embed schema.sql
var schema string

// Statements divide o schema em comandos individuais
func Statements() []string {
	var statements []string
	for _, stmt := range strings.Split(schema, ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// Apply cria as tabelas em uma única transação. Pode ser executado várias vezes.
func Apply(ctx context.Context, conn *postgres.Connection) error {
	statements := Statements()
	logrus.Infof("Aplicando %d comandos de migração...", len(statements))

	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return errors.Wrapf(err, "erro no comando %d de migração", i+1)
			}
		}
		logrus.Info("Migração concluída com sucesso")
		return nil
	})
}
