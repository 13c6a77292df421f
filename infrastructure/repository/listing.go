package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/mko-api/infrastructure/database/postgres"
	"github.com/vfg2006/mko-api/internal/domain"
)

const (
	listingsTable = "ads"
	reportsTable  = "reports"
	contactsTable = "contacts"
)

var (
	listingColumns = []string{"id", "owner_id", "title", "description", "price", "city", "category", "status", "created_at", "updated_at"}
	reportColumns  = []string{"id", "ad_id", "reporter_id", "reason", "details", "created_at"}
	contactColumns = []string{"id", "name", "email", "message", "created_at"}
)

type listingRepository struct {
	conn *postgres.Connection
}

func NewListingRepository(conn *postgres.Connection) ListingRepository {
	return &listingRepository{conn: conn}
}

func (r *listingRepository) CreateListing(ctx context.Context, listing *domain.Listing) error {
	query, args, err := psql.Insert(listingsTable).
		Columns(listingColumns...).
		Values(
			listing.ID, listing.OwnerID, listing.Title, listing.Description, listing.Price,
			listing.City, listing.Category, string(listing.Status), listing.CreatedAt, listing.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return storageErr(err, "erro ao criar anúncio")
}

func (r *listingRepository) ListListings(ctx context.Context) ([]*domain.Listing, error) {
	query, args, err := psql.Select(listingColumns...).
		From(listingsTable).
		Where(squirrel.NotEq{"status": string(domain.ListingStatusDeleted)}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr(err, "erro ao listar anúncios")
	}
	defer rows.Close()

	listings := []*domain.Listing{}
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, storageErr(err, "erro ao ler anúncio")
		}
		listings = append(listings, listing)
	}

	return listings, storageErr(rows.Err(), "erro durante iteração de anúncios")
}

func (r *listingRepository) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	query, args, err := psql.Select(listingColumns...).
		From(listingsTable).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"status": string(domain.ListingStatusDeleted)}).
		ToSql()
	if err != nil {
		return nil, err
	}

	listing, err := scanListing(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr(err, "erro ao buscar anúncio")
	}

	return listing, nil
}

func (r *listingRepository) UpdateListingStatus(ctx context.Context, id string, status domain.ListingStatus, at time.Time) (bool, error) {
	query, args, err := psql.Update(listingsTable).
		Set("status", string(status)).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, storageErr(err, "erro ao atualizar anúncio")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, storageErr(err, "erro ao contar anúncios atualizados")
	}

	return affected > 0, nil
}

func scanListing(row rowScanner) (*domain.Listing, error) {
	listing := &domain.Listing{}
	var status string
	if err := row.Scan(
		&listing.ID,
		&listing.OwnerID,
		&listing.Title,
		&listing.Description,
		&listing.Price,
		&listing.City,
		&listing.Category,
		&status,
		&listing.CreatedAt,
		&listing.UpdatedAt,
	); err != nil {
		return nil, err
	}
	listing.Status = domain.ListingStatus(status)
	return listing, nil
}

type reportRepository struct {
	conn *postgres.Connection
}

func NewReportRepository(conn *postgres.Connection) ReportRepository {
	return &reportRepository{conn: conn}
}

func (r *reportRepository) CreateReport(ctx context.Context, report *domain.Report) error {
	query, args, err := psql.Insert(reportsTable).
		Columns(reportColumns...).
		Values(report.ID, report.ListingID, report.ReporterID, report.Reason, report.Details, report.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return storageErr(err, "erro ao criar denúncia")
}

func (r *reportRepository) ListReports(ctx context.Context) ([]*domain.Report, error) {
	query, args, err := psql.Select(reportColumns...).From(reportsTable).OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr(err, "erro ao listar denúncias")
	}
	defer rows.Close()

	reports := []*domain.Report{}
	for rows.Next() {
		report := &domain.Report{}
		if err := rows.Scan(
			&report.ID,
			&report.ListingID,
			&report.ReporterID,
			&report.Reason,
			&report.Details,
			&report.CreatedAt,
		); err != nil {
			return nil, storageErr(err, "erro ao ler denúncia")
		}
		reports = append(reports, report)
	}

	return reports, storageErr(rows.Err(), "erro durante iteração de denúncias")
}

type contactRepository struct {
	conn *postgres.Connection
}

func NewContactRepository(conn *postgres.Connection) ContactRepository {
	return &contactRepository{conn: conn}
}

func (r *contactRepository) CreateContact(ctx context.Context, contact *domain.Contact) error {
	query, args, err := psql.Insert(contactsTable).
		Columns(contactColumns...).
		Values(contact.ID, contact.Name, contact.Email, contact.Message, contact.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return storageErr(err, "erro ao salvar contato")
}

func (r *contactRepository) ListContacts(ctx context.Context) ([]*domain.Contact, error) {
	query, args, err := psql.Select(contactColumns...).From(contactsTable).OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr(err, "erro ao listar contatos")
	}
	defer rows.Close()

	contacts := []*domain.Contact{}
	for rows.Next() {
		contact := &domain.Contact{}
		if err := rows.Scan(
			&contact.ID,
			&contact.Name,
			&contact.Email,
			&contact.Message,
			&contact.CreatedAt,
		); err != nil {
			return nil, storageErr(err, "erro ao ler contato")
		}
		contacts = append(contacts, contact)
	}

	return contacts, storageErr(rows.Err(), "erro durante iteração de contatos")
}
