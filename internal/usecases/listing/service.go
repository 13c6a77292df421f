package listing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/mko-api/infrastructure/repository"
	"github.com/vfg2006/mko-api/internal/domain"
	"github.com/vfg2006/mko-api/pkg/apiErrors"
	"github.com/vfg2006/mko-api/pkg/utils"
	"github.com/vfg2006/mko-api/pkg/validation"
)

// Erros específicos para anúncios classificados
var (
	ErrListingNotFound = errors.New("anúncio não encontrado")
	ErrNotOwner        = errors.New("apenas o dono ou um administrador pode remover o anúncio")
	ErrAuthRequired    = errors.New("autenticação obrigatória")
	ErrValidation      = errors.New("dados inválidos")
	ErrStorage         = errors.New("erro de armazenamento")
)

// ListingError é um erro com o código exposto pela API
type ListingError struct {
	Err     error
	Code    string
	Details map[string]string
}

func (e *ListingError) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ListingError) Unwrap() error {
	return e.Err
}

func newListingError(err error, code string) *ListingError {
	return &ListingError{Err: err, Code: code}
}

func storageError(err error) *ListingError {
	return newListingError(fmt.Errorf("%w: %v", ErrStorage, err), apiErrors.ErrStorage)
}

type ListingService interface {
	ListListings(ctx context.Context) ([]*domain.Listing, error)
	GetListing(ctx context.Context, id string) (*domain.Listing, error)
	CreateListing(ctx context.Context, principal *domain.Principal, req *domain.CreateListingRequest) (*domain.Listing, error)
	DeleteListing(ctx context.Context, principal *domain.Principal, id string) error
	ReportListing(ctx context.Context, principal *domain.Principal, id string, req *domain.CreateReportRequest) (*domain.Report, error)
	ListReports(ctx context.Context) ([]*domain.Report, error)
}

type Service struct {
	listingRepo repository.ListingRepository
	reportRepo  repository.ReportRepository
	now         func() time.Time
}

func NewService(listingRepo repository.ListingRepository, reportRepo repository.ReportRepository) ListingService {
	return &Service{
		listingRepo: listingRepo,
		reportRepo:  reportRepo,
		now:         time.Now,
	}
}

func (s *Service) ListListings(ctx context.Context) ([]*domain.Listing, error) {
	listings, err := s.listingRepo.ListListings(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	return listings, nil
}

func (s *Service) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	listing, err := s.listingRepo.GetListing(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	if listing == nil {
		return nil, newListingError(ErrListingNotFound, apiErrors.ErrNotFound)
	}
	return listing, nil
}

func (s *Service) CreateListing(ctx context.Context, principal *domain.Principal, req *domain.CreateListingRequest) (*domain.Listing, error) {
	if principal == nil {
		return nil, newListingError(ErrAuthRequired, apiErrors.ErrAuthRequired)
	}

	req.Title = strings.TrimSpace(req.Title)
	req.City = strings.TrimSpace(req.City)
	req.Category = strings.TrimSpace(req.Category)

	if details := validation.Struct(req); details != nil {
		return nil, &ListingError{Err: ErrValidation, Code: apiErrors.ErrValidation, Details: details}
	}

	listing := &domain.Listing{
		ID:          utils.MakeID("ad"),
		OwnerID:     principal.ID,
		Title:       req.Title,
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
		City:        req.City,
		Category:    req.Category,
		Status:      domain.ListingStatusActive,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.listingRepo.CreateListing(ctx, listing); err != nil {
		return nil, storageError(err)
	}

	return listing, nil
}

// DeleteListing marca o anúncio como removido; só o dono ou um admin pode fazer isso
func (s *Service) DeleteListing(ctx context.Context, principal *domain.Principal, id string) error {
	if principal == nil {
		return newListingError(ErrAuthRequired, apiErrors.ErrAuthRequired)
	}

	listing, err := s.GetListing(ctx, id)
	if err != nil {
		return err
	}

	if listing.OwnerID != principal.ID && !principal.IsAdmin() {
		return newListingError(ErrNotOwner, apiErrors.ErrForbidden)
	}

	found, err := s.listingRepo.UpdateListingStatus(ctx, id, domain.ListingStatusDeleted, s.now().UTC())
	if err != nil {
		return storageError(err)
	}
	if !found {
		return newListingError(ErrListingNotFound, apiErrors.ErrNotFound)
	}

	return nil
}

func (s *Service) ReportListing(ctx context.Context, principal *domain.Principal, id string, req *domain.CreateReportRequest) (*domain.Report, error) {
	req.Reason = strings.TrimSpace(req.Reason)
	req.Details = strings.TrimSpace(req.Details)

	if details := validation.Struct(req); details != nil {
		return nil, &ListingError{Err: ErrValidation, Code: apiErrors.ErrValidation, Details: details}
	}

	if _, err := s.GetListing(ctx, id); err != nil {
		return nil, err
	}

	report := &domain.Report{
		ID:        utils.MakeID("report"),
		ListingID: id,
		Reason:    req.Reason,
		Details:   req.Details,
		CreatedAt: s.now().UTC(),
	}
	if principal != nil {
		report.ReporterID = &principal.ID
	}

	if err := s.reportRepo.CreateReport(ctx, report); err != nil {
		return nil, storageError(err)
	}

	return report, nil
}

func (s *Service) ListReports(ctx context.Context) ([]*domain.Report, error) {
	reports, err := s.reportRepo.ListReports(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	return reports, nil
}
