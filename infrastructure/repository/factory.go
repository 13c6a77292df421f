package repository

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mko-api/infrastructure/database/jsondb"
	"github.com/vfg2006/mko-api/infrastructure/database/postgres"
	"github.com/vfg2006/mko-api/internal/config"
)

// Repositories agrupa as implementações do driver escolhido em STORAGE_DRIVER
type Repositories struct {
	AdSlots     AdSlotRepository
	AdCreatives AdCreativeRepository
	AdEvents    AdEventRepository
	Users       UserRepository
	AuthTokens  AuthTokenRepository
	Listings    ListingRepository
	Reports     ReportRepository
	Contacts    ContactRepository

	closer func() error
}

func New(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverJSON:
		store, err := jsondb.Open(cfg.Storage.JSONPath)
		if err != nil {
			return nil, err
		}
		logrus.Infof("Usando banco JSON em %s", store.Path())
		return NewJSON(store, cfg.AdSystem.EventsCap), nil

	case config.StorageDriverPostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		logrus.Info("Usando banco Postgres")
		return NewPostgres(conn, cfg.AdSystem.EventsCap), nil
	}

	return nil, errors.Errorf("STORAGE_DRIVER não suportado: %s", cfg.Storage.Driver)
}

func NewJSON(store *jsondb.Store, eventsCap int) *Repositories {
	return &Repositories{
		AdSlots:     NewJSONAdSlotRepository(store),
		AdCreatives: NewJSONAdCreativeRepository(store),
		AdEvents:    NewJSONAdEventRepository(store, eventsCap),
		Users:       NewJSONUserRepository(store),
		AuthTokens:  NewJSONAuthTokenRepository(store),
		Listings:    NewJSONListingRepository(store),
		Reports:     NewJSONReportRepository(store),
		Contacts:    NewJSONContactRepository(store),
		closer:      func() error { return nil },
	}
}

func NewPostgres(conn *postgres.Connection, eventsCap int) *Repositories {
	return &Repositories{
		AdSlots:     NewAdSlotRepository(conn),
		AdCreatives: NewAdCreativeRepository(conn),
		AdEvents:    NewAdEventRepository(conn, eventsCap),
		Users:       NewUserRepository(conn),
		AuthTokens:  NewAuthTokenRepository(conn),
		Listings:    NewListingRepository(conn),
		Reports:     NewReportRepository(conn),
		Contacts:    NewContactRepository(conn),
		closer:      conn.Close,
	}
}

func (r *Repositories) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer()
}
