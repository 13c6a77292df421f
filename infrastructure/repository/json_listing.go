package repository

import (
	"context"
	"time"

	"github.com/vfg2006/mko-api/infrastructure/database/jsondb"
	"github.com/vfg2006/mko-api/internal/domain"
)

type jsonListingRepository struct {
	store *jsondb.Store
}

func NewJSONListingRepository(store *jsondb.Store) ListingRepository {
	return &jsonListingRepository{store: store}
}

func (r *jsonListingRepository) CreateListing(ctx context.Context, listing *domain.Listing) error {
	err := r.store.Update(func(doc *jsondb.Document) error {
		doc.Ads = append([]*domain.Listing{listing}, doc.Ads...)
		return nil
	})
	return storageErr(err, "erro ao criar anúncio")
}

// ListListings devolve os anúncios não removidos, mais recentes primeiro
func (r *jsonListingRepository) ListListings(ctx context.Context) ([]*domain.Listing, error) {
	listings := []*domain.Listing{}
	err := r.store.View(func(doc *jsondb.Document) error {
		for _, l := range doc.Ads {
			if l.Status != domain.ListingStatusDeleted {
				listings = append(listings, l)
			}
		}
		return nil
	})
	if err != nil {
		return nil, storageErr(err, "erro ao listar anúncios")
	}

	return listings, nil
}

func (r *jsonListingRepository) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	var listing *domain.Listing
	err := r.store.View(func(doc *jsondb.Document) error {
		for _, l := range doc.Ads {
			if l.ID == id && l.Status != domain.ListingStatusDeleted {
				listing = l
				break
			}
		}
		return nil
	})
	return listing, storageErr(err, "erro ao buscar anúncio")
}

func (r *jsonListingRepository) UpdateListingStatus(ctx context.Context, id string, status domain.ListingStatus, at time.Time) (bool, error) {
	found := false
	err := r.store.Update(func(doc *jsondb.Document) error {
		for _, l := range doc.Ads {
			if l.ID == id {
				l.Status = status
				l.UpdatedAt = &at
				found = true
				return nil
			}
		}
		return jsondb.ErrNoChange
	})
	if err != nil {
		return false, storageErr(err, "erro ao atualizar anúncio")
	}

	return found, nil
}

type jsonReportRepository struct {
	store *jsondb.Store
}

func NewJSONReportRepository(store *jsondb.Store) ReportRepository {
	return &jsonReportRepository{store: store}
}

func (r *jsonReportRepository) CreateReport(ctx context.Context, report *domain.Report) error {
	err := r.store.Update(func(doc *jsondb.Document) error {
		doc.Reports = append([]*domain.Report{report}, doc.Reports...)
		return nil
	})
	return storageErr(err, "erro ao criar denúncia")
}

func (r *jsonReportRepository) ListReports(ctx context.Context) ([]*domain.Report, error) {
	var reports []*domain.Report
	err := r.store.View(func(doc *jsondb.Document) error {
		reports = doc.Reports
		return nil
	})
	return reports, storageErr(err, "erro ao listar denúncias")
}

type jsonContactRepository struct {
	store *jsondb.Store
}

func NewJSONContactRepository(store *jsondb.Store) ContactRepository {
	return &jsonContactRepository{store: store}
}

func (r *jsonContactRepository) CreateContact(ctx context.Context, contact *domain.Contact) error {
	err := r.store.Update(func(doc *jsondb.Document) error {
		doc.Contacts = append([]*domain.Contact{contact}, doc.Contacts...)
		return nil
	})
	return storageErr(err, "erro ao salvar contato")
}

func (r *jsonContactRepository) ListContacts(ctx context.Context) ([]*domain.Contact, error) {
	var contacts []*domain.Contact
	err := r.store.View(func(doc *jsondb.Document) error {
		contacts = doc.Contacts
		return nil
	})
	return contacts, storageErr(err, "erro ao listar contatos")
}
