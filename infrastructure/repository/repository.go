package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/mko-api/internal/domain"
)

//go:generate mockgen -source=repository.go -destination=mocks/repository_mock.go -package=mocks

// ErrStorage envolve qualquer falha de leitura ou escrita no armazenamento
var ErrStorage = errors.New("falha no armazenamento")

func storageErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(ErrStorage, "%s: %v", msg, err)
}

type AdSlotRepository interface {
	ListAdSlots(ctx context.Context) ([]*domain.AdSlot, error)
	GetAdSlot(ctx context.Context, id string) (*domain.AdSlot, error)
	UpdateAdSlot(ctx context.Context, id string, fn func(slot *domain.AdSlot) error) (*domain.AdSlot, error)
	EnsureDefaultAdSlots(ctx context.Context, defaults []*domain.AdSlot) (int, error)
}

type AdCreativeRepository interface {
	ListAdCreatives(ctx context.Context, filter domain.AdCreativeFilter) ([]*domain.AdCreative, error)
	GetAdCreative(ctx context.Context, id string) (*domain.AdCreative, error)
	CreateAdCreative(ctx context.Context, creative *domain.AdCreative) error
	UpdateAdCreative(ctx context.Context, id string, fn func(creative *domain.AdCreative) error) (*domain.AdCreative, error)
	DeleteAdCreative(ctx context.Context, id string) (bool, error)
	IncrementCreativeCounter(ctx context.Context, id string, eventType domain.AdEventType, at time.Time) (bool, error)
}

type AdEventRepository interface {
	CreateAdEvent(ctx context.Context, event *domain.AdEvent) error
	ListAdEvents(ctx context.Context, filter domain.AdEventFilter) ([]*domain.AdEvent, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	UpdateUserPassword(ctx context.Context, id, passHash string, at time.Time) (bool, error)
}

type AuthTokenRepository interface {
	CreateToken(ctx context.Context, token *domain.AuthToken) error
	FindTokenByHash(ctx context.Context, tokenHash, kind string) (*domain.AuthToken, error)
	ConsumeTokenByHash(ctx context.Context, tokenHash, kind string) (*domain.AuthToken, error)
	DeleteTokensByEmail(ctx context.Context, email, kind string) (int, error)
	DeleteExpiredTokens(ctx context.Context, now time.Time) (int, error)
}

type ListingRepository interface {
	CreateListing(ctx context.Context, listing *domain.Listing) error
	ListListings(ctx context.Context) ([]*domain.Listing, error)
	GetListing(ctx context.Context, id string) (*domain.Listing, error)
	UpdateListingStatus(ctx context.Context, id string, status domain.ListingStatus, at time.Time) (bool, error)
}

type ReportRepository interface {
	CreateReport(ctx context.Context, report *domain.Report) error
	ListReports(ctx context.Context) ([]*domain.Report, error)
}

type ContactRepository interface {
	CreateContact(ctx context.Context, contact *domain.Contact) error
	ListContacts(ctx context.Context) ([]*domain.Contact, error)
}
