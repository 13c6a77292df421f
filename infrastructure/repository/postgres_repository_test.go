package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mko-api/infrastructure/database/postgres"
	"github.com/vfg2006/mko-api/internal/domain"
)

func newSQLMock(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return postgres.NewFromDB(db), mock
}

func TestPostgresGetAdSlot(t *testing.T) {
	conn, mock := newSQLMock(t)
	repo := NewAdSlotRepository(conn)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, name, description, is_enabled, created_at, updated_at FROM ad_slots WHERE id = \$1`).
		WithArgs("home_top").
		WillReturnRows(sqlmock.NewRows(adSlotColumns).AddRow("home_top", "Home top", "", false, now, nil))

	slot, err := repo.GetAdSlot(context.Background(), "home_top")
	require.NoError(t, err)
	require.NotNil(t, slot)
	assert.False(t, slot.Enabled())
	assert.Nil(t, slot.UpdatedAt)

	mock.ExpectQuery(`SELECT .* FROM ad_slots WHERE id = \$1`).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	slot, err = repo.GetAdSlot(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, slot)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListAdCreatives(t *testing.T) {
	conn, mock := newSQLMock(t)
	repo := NewAdCreativeRepository(conn)
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM ad_creatives WHERE slot_id = \$1 AND status = \$2 ORDER BY created_at DESC`).
		WithArgs("home_top", "active").
		WillReturnRows(sqlmock.NewRows(adCreativeColumns).AddRow(
			"adcr_1", "home_top", "active", "Baner", "https://img", "https://target", nil, nil,
			[]byte(`{"cities":["Warszawa"]}`), 2.0, int64(10), int64(1), now, now,
		))

	creatives, err := repo.ListAdCreatives(context.Background(), domain.AdCreativeFilter{SlotID: "home_top", Status: domain.AdCreativeStatusActive})
	require.NoError(t, err)
	require.Len(t, creatives, 1)
	assert.Equal(t, []string{"Warszawa"}, creatives[0].Targeting.Cities)
	assert.Equal(t, 2.0, creatives[0].Weight)
	assert.Nil(t, creatives[0].DateFrom)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresIncrementCreativeCounter(t *testing.T) {
	conn, mock := newSQLMock(t)
	repo := NewAdCreativeRepository(conn)
	at := time.Now()

	mock.ExpectExec(`UPDATE ad_creatives SET clicks_count = clicks_count \+ 1, updated_at = \$1 WHERE id = \$2`).
		WithArgs(at, "adcr_1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	found, err := repo.IncrementCreativeCounter(context.Background(), "adcr_1", domain.AdEventTypeClick, at)
	require.NoError(t, err)
	assert.True(t, found)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateAdEventDescartaExcedente(t *testing.T) {
	conn, mock := newSQLMock(t)
	repo := NewAdEventRepository(conn, 100)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO ad_events`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM ad_events WHERE id IN \(SELECT id FROM ad_events ORDER BY created_at DESC OFFSET \$1\)`).
		WithArgs(100).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.CreateAdEvent(context.Background(), &domain.AdEvent{ID: "adev_1", CreativeID: "adcr_1", Type: domain.AdEventTypeView, CreatedAt: time.Now()})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresConsumeToken(t *testing.T) {
	conn, mock := newSQLMock(t)
	repo := NewAuthTokenRepository(conn)
	expires := time.Now().Add(time.Hour)

	mock.ExpectQuery(`DELETE FROM auth_tokens WHERE kind = \$1 AND token_hash = \$2 RETURNING token_hash, email, user_id, kind, expires_at, created_at`).
		WithArgs(domain.TokenKindResetPassword, "hash").
		WillReturnRows(sqlmock.NewRows(authTokenColumns).AddRow("hash", "a@b.pl", nil, domain.TokenKindResetPassword, expires, time.Now()))

	token, err := repo.ConsumeTokenByHash(context.Background(), "hash", domain.TokenKindResetPassword)
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Nil(t, token.UserID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresErroViraErrStorage(t *testing.T) {
	conn, mock := newSQLMock(t)
	repo := NewContactRepository(conn)

	mock.ExpectExec(`INSERT INTO contacts`).WillReturnError(errors.New("connection reset"))

	err := repo.CreateContact(context.Background(), &domain.Contact{ID: "contact_1"})
	assert.True(t, errors.Is(err, ErrStorage))

	assert.NoError(t, mock.ExpectationsWereMet())
}
