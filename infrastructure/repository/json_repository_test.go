package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mko-api/infrastructure/database/jsondb"
	"github.com/vfg2006/mko-api/internal/domain"
)

func newJSONRepos(t *testing.T, eventsCap int) *Repositories {
	t.Helper()
	store, err := jsondb.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	return NewJSON(store, eventsCap)
}

func TestEnsureDefaultAdSlotsIdempotente(t *testing.T) {
	ctx := context.Background()
	repos := newJSONRepos(t, 0)
	now := time.Now()

	inserted, err := repos.AdSlots.EnsureDefaultAdSlots(ctx, domain.DefaultAdSlots(now))
	require.NoError(t, err)
	assert.Equal(t, 5, inserted)

	_, err = repos.AdSlots.UpdateAdSlot(ctx, "home_top", func(slot *domain.AdSlot) error {
		slot.Name = "Alterado"
		return nil
	})
	require.NoError(t, err)

	inserted, err = repos.AdSlots.EnsureDefaultAdSlots(ctx, domain.DefaultAdSlots(now))
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	slot, err := repos.AdSlots.GetAdSlot(ctx, "home_top")
	require.NoError(t, err)
	assert.Equal(t, "Alterado", slot.Name)

	slots, err := repos.AdSlots.ListAdSlots(ctx)
	require.NoError(t, err)
	assert.Len(t, slots, 5)
}

func TestUpdateAdSlotInexistente(t *testing.T) {
	repos := newJSONRepos(t, 0)

	slot, err := repos.AdSlots.UpdateAdSlot(context.Background(), "nope", func(slot *domain.AdSlot) error {
		t.Fatal("não deveria ser chamado")
		return nil
	})
	assert.NoError(t, err)
	assert.Nil(t, slot)
}

func TestUpdateAdCreativePropagaErroDaFuncao(t *testing.T) {
	ctx := context.Background()
	repos := newJSONRepos(t, 0)

	require.NoError(t, repos.AdCreatives.CreateAdCreative(ctx, &domain.AdCreative{ID: "adcr_1", Title: "original"}))

	boom := errors.New("validação")
	_, err := repos.AdCreatives.UpdateAdCreative(ctx, "adcr_1", func(c *domain.AdCreative) error {
		c.Title = "mudou"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	creative, err := repos.AdCreatives.GetAdCreative(ctx, "adcr_1")
	require.NoError(t, err)
	assert.Equal(t, "original", creative.Title)
}

func TestAdCreativesFiltroEOrdem(t *testing.T) {
	ctx := context.Background()
	repos := newJSONRepos(t, 0)

	require.NoError(t, repos.AdCreatives.CreateAdCreative(ctx, &domain.AdCreative{ID: "a", SlotID: "home_top", Status: domain.AdCreativeStatusActive}))
	require.NoError(t, repos.AdCreatives.CreateAdCreative(ctx, &domain.AdCreative{ID: "b", SlotID: "home_top", Status: domain.AdCreativeStatusPaused}))
	require.NoError(t, repos.AdCreatives.CreateAdCreative(ctx, &domain.AdCreative{ID: "c", SlotID: "offer_bottom", Status: domain.AdCreativeStatusActive}))

	all, err := repos.AdCreatives.ListAdCreatives(ctx, domain.AdCreativeFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].ID)

	active, err := repos.AdCreatives.ListAdCreatives(ctx, domain.AdCreativeFilter{SlotID: "home_top", Status: domain.AdCreativeStatusActive})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "a", active[0].ID)

	deleted, err := repos.AdCreatives.DeleteAdCreative(ctx, "a")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repos.AdCreatives.DeleteAdCreative(ctx, "a")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestIncrementCreativeCounter(t *testing.T) {
	ctx := context.Background()
	repos := newJSONRepos(t, 0)
	require.NoError(t, repos.AdCreatives.CreateAdCreative(ctx, &domain.AdCreative{ID: "adcr_1"}))

	at := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	found, err := repos.AdCreatives.IncrementCreativeCounter(ctx, "adcr_1", domain.AdEventTypeView, at)
	require.NoError(t, err)
	assert.True(t, found)
	_, err = repos.AdCreatives.IncrementCreativeCounter(ctx, "adcr_1", domain.AdEventTypeClick, at)
	require.NoError(t, err)

	found, err = repos.AdCreatives.IncrementCreativeCounter(ctx, "missing", domain.AdEventTypeView, at)
	require.NoError(t, err)
	assert.False(t, found)

	creative, err := repos.AdCreatives.GetAdCreative(ctx, "adcr_1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), creative.ViewsCount)
	assert.Equal(t, int64(1), creative.ClicksCount)
	assert.True(t, creative.UpdatedAt.Equal(at))
}

func TestAdEventsLimiteDescartaMaisAntigos(t *testing.T) {
	ctx := context.Background()
	repos := newJSONRepos(t, 3)

	for _, id := range []string{"e1", "e2", "e3", "e4"} {
		require.NoError(t, repos.AdEvents.CreateAdEvent(ctx, &domain.AdEvent{ID: id, CreativeID: "adcr_1", Type: domain.AdEventTypeView}))
	}

	events, err := repos.AdEvents.ListAdEvents(ctx, domain.AdEventFilter{})
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "e4", events[0].ID)
	assert.Equal(t, "e2", events[2].ID)

	limited, err := repos.AdEvents.ListAdEvents(ctx, domain.AdEventFilter{Limit: 1, Type: domain.AdEventTypeView})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestAuthTokens(t *testing.T) {
	ctx := context.Background()
	repos := newJSONRepos(t, 0)
	now := time.Now()

	require.NoError(t, repos.AuthTokens.CreateToken(ctx, &domain.AuthToken{TokenHash: "h1", Email: "a@b.pl", Kind: domain.TokenKindResetPassword, ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, repos.AuthTokens.CreateToken(ctx, &domain.AuthToken{TokenHash: "h2", Email: "A@B.pl", Kind: domain.TokenKindResetPassword, ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, repos.AuthTokens.CreateToken(ctx, &domain.AuthToken{TokenHash: "h3", Email: "c@d.pl", Kind: domain.TokenKindResetPassword, ExpiresAt: now.Add(time.Hour)}))

	removed, err := repos.AuthTokens.DeleteExpiredTokens(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	removed, err = repos.AuthTokens.DeleteTokensByEmail(ctx, "a@b.pl", domain.TokenKindResetPassword)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	token, err := repos.AuthTokens.FindTokenByHash(ctx, "h3", domain.TokenKindResetPassword)
	require.NoError(t, err)
	require.NotNil(t, token)

	consumed, err := repos.AuthTokens.ConsumeTokenByHash(ctx, "h3", domain.TokenKindResetPassword)
	require.NoError(t, err)
	require.NotNil(t, consumed)

	consumed, err = repos.AuthTokens.ConsumeTokenByHash(ctx, "h3", domain.TokenKindResetPassword)
	require.NoError(t, err)
	assert.Nil(t, consumed)
}

func TestListingsSoftDelete(t *testing.T) {
	ctx := context.Background()
	repos := newJSONRepos(t, 0)

	require.NoError(t, repos.Listings.CreateListing(ctx, &domain.Listing{ID: "ad_1", Status: domain.ListingStatusActive}))
	require.NoError(t, repos.Listings.CreateListing(ctx, &domain.Listing{ID: "ad_2", Status: domain.ListingStatusActive}))

	found, err := repos.Listings.UpdateListingStatus(ctx, "ad_1", domain.ListingStatusDeleted, time.Now())
	require.NoError(t, err)
	assert.True(t, found)

	listings, err := repos.Listings.ListListings(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "ad_2", listings[0].ID)

	listing, err := repos.Listings.GetListing(ctx, "ad_1")
	require.NoError(t, err)
	assert.Nil(t, listing)
}

func TestUsuarioPorEmailIgnoraCaixa(t *testing.T) {
	ctx := context.Background()
	repos := newJSONRepos(t, 0)

	require.NoError(t, repos.Users.CreateUser(ctx, &domain.User{ID: "usr_1", Email: "Jan@Example.pl"}))

	user, err := repos.Users.GetUserByEmail(ctx, "jan@example.pl")
	require.NoError(t, err)
	require.NotNil(t, user)

	found, err := repos.Users.UpdateUserPassword(ctx, "usr_1", "hash", time.Now())
	require.NoError(t, err)
	assert.True(t, found)

	user, err = repos.Users.GetUserByID(ctx, "usr_1")
	require.NoError(t, err)
	assert.Equal(t, "hash", user.PassHash)
}

func TestErroDeArmazenamento(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	store, err := jsondb.Open(path)
	require.NoError(t, err)
	repos := NewJSON(store, 0)

	require.NoError(t, os.WriteFile(path, []byte("{corrompido"), 0o644))

	_, err = repos.AdSlots.GetAdSlot(context.Background(), "home_top")
	assert.True(t, errors.Is(err, ErrStorage))
}
