package migration

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mko-api/infrastructure/database/postgres"
)

func TestStatements(t *testing.T) {
	statements := Statements()

	require.NotEmpty(t, statements)
	for _, stmt := range statements {
		assert.NotContains(t, stmt, ";")
	}
	assert.Contains(t, statements[0], "CREATE TABLE IF NOT EXISTS users")
}

func TestApply(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherFunc(
		func(expectedSQL, actualSQL string) error { return nil },
	)))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	for range Statements() {
		mock.ExpectExec("").WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectCommit()

	err = Apply(context.Background(), postgres.NewFromDB(db))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
