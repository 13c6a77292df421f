package adserving

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/vfg2006/mko-api/infrastructure/repository"
	"github.com/vfg2006/mko-api/internal/domain"
	"github.com/vfg2006/mko-api/pkg/apiErrors"
	"github.com/vfg2006/mko-api/pkg/utils"
	"github.com/vfg2006/mko-api/pkg/validation"
)

const (
	DefaultEventsLimit = 100
	MaxEventsLimit     = 1000
)

type AdminService interface {
	EnsureDefaultSlots(ctx context.Context) (int, error)
	ListSlots(ctx context.Context) ([]*domain.AdSlot, error)
	GetSlot(ctx context.Context, id string) (*domain.AdSlot, error)
	UpdateSlot(ctx context.Context, id string, req *domain.UpdateAdSlotRequest) (*domain.AdSlot, error)

	ListCreatives(ctx context.Context, filter domain.AdCreativeFilter) ([]*domain.AdCreativeResponse, error)
	GetCreative(ctx context.Context, id string) (*domain.AdCreativeResponse, error)
	CreateCreative(ctx context.Context, req *domain.CreateAdCreativeRequest) (*domain.AdCreativeResponse, error)
	UpdateCreative(ctx context.Context, id string, req *domain.UpdateAdCreativeRequest) (*domain.AdCreativeResponse, error)
	DeleteCreative(ctx context.Context, id string) error

	ListEvents(ctx context.Context, filter domain.AdEventFilter) ([]*domain.AdEvent, error)
}

type Admin struct {
	slotRepository     repository.AdSlotRepository
	creativeRepository repository.AdCreativeRepository
	eventRepository    repository.AdEventRepository
	now                func() time.Time
}

func NewAdminService(
	slotRepository repository.AdSlotRepository,
	creativeRepository repository.AdCreativeRepository,
	eventRepository repository.AdEventRepository,
) AdminService {
	return &Admin{
		slotRepository:     slotRepository,
		creativeRepository: creativeRepository,
		eventRepository:    eventRepository,
		now:                time.Now,
	}
}

// EnsureDefaultSlots cria os slots padrão que ainda não existem
func (a *Admin) EnsureDefaultSlots(ctx context.Context) (int, error) {
	inserted, err := a.slotRepository.EnsureDefaultAdSlots(ctx, domain.DefaultAdSlots(a.now().UTC()))
	if err != nil {
		return 0, storageError(err)
	}
	return inserted, nil
}

func (a *Admin) ListSlots(ctx context.Context) ([]*domain.AdSlot, error) {
	slots, err := a.slotRepository.ListAdSlots(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	return slots, nil
}

func (a *Admin) GetSlot(ctx context.Context, id string) (*domain.AdSlot, error) {
	slot, err := a.slotRepository.GetAdSlot(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	if slot == nil {
		return nil, NewAdError(ErrSlotNotFound, apiErrors.ErrNotFound, nil)
	}
	return slot, nil
}

func (a *Admin) UpdateSlot(ctx context.Context, id string, req *domain.UpdateAdSlotRequest) (*domain.AdSlot, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, NewAdError(ErrValidation, apiErrors.ErrValidation, map[string]string{"name": "required"})
	}

	now := a.now().UTC()
	slot, err := a.slotRepository.UpdateAdSlot(ctx, id, func(slot *domain.AdSlot) error {
		req.Apply(slot, now)
		return nil
	})
	if err != nil {
		return nil, storageError(err)
	}
	if slot == nil {
		return nil, NewAdError(ErrSlotNotFound, apiErrors.ErrNotFound, nil)
	}

	return slot, nil
}

func (a *Admin) ListCreatives(ctx context.Context, filter domain.AdCreativeFilter) ([]*domain.AdCreativeResponse, error) {
	creatives, err := a.creativeRepository.ListAdCreatives(ctx, filter)
	if err != nil {
		return nil, storageError(err)
	}

	response := make([]*domain.AdCreativeResponse, 0, len(creatives))
	for _, c := range creatives {
		response = append(response, toCreativeResponse(c))
	}
	return response, nil
}

func (a *Admin) GetCreative(ctx context.Context, id string) (*domain.AdCreativeResponse, error) {
	creative, err := a.creativeRepository.GetAdCreative(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	if creative == nil {
		return nil, NewAdError(ErrCreativeNotFound, apiErrors.ErrNotFound, nil)
	}
	return toCreativeResponse(creative), nil
}

func (a *Admin) CreateCreative(ctx context.Context, req *domain.CreateAdCreativeRequest) (*domain.AdCreativeResponse, error) {
	if details := validation.Struct(req); details != nil {
		return nil, NewAdError(ErrValidation, apiErrors.ErrValidation, details)
	}

	slotID := strings.TrimSpace(req.SlotID)
	if err := a.ensureSlotExists(ctx, slotID); err != nil {
		return nil, err
	}

	dateFrom, err := parseDate("date_from", req.DateFrom)
	if err != nil {
		return nil, err
	}
	dateTo, err := parseDate("date_to", req.DateTo)
	if err != nil {
		return nil, err
	}
	if err := checkDateRange(dateFrom, dateTo); err != nil {
		return nil, err
	}

	status := domain.AdCreativeStatus(strings.TrimSpace(req.Status))
	if status == "" {
		status = domain.AdCreativeStatusActive
	}

	var targeting domain.TargetingRule
	if req.Targeting != nil {
		targeting = req.Targeting.Normalize()
	}

	weight := 1.0
	if req.Weight != nil {
		weight = sanitizeWeight(*req.Weight)
	}

	now := a.now().UTC()
	creative := &domain.AdCreative{
		ID:        utils.MakeID("adcr"),
		SlotID:    slotID,
		Status:    status,
		Title:     strings.TrimSpace(req.Title),
		ImageURL:  strings.TrimSpace(req.ImageURL),
		TargetURL: strings.TrimSpace(req.TargetURL),
		DateFrom:  dateFrom,
		DateTo:    dateTo,
		Targeting: targeting,
		Weight:    weight,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := a.creativeRepository.CreateAdCreative(ctx, creative); err != nil {
		return nil, storageError(err)
	}

	return toCreativeResponse(creative), nil
}

// UpdateCreative aplica um merge-patch; campos ausentes ficam como estão
func (a *Admin) UpdateCreative(ctx context.Context, id string, req *domain.UpdateAdCreativeRequest) (*domain.AdCreativeResponse, error) {
	if details := validation.Struct(req); details != nil {
		return nil, NewAdError(ErrValidation, apiErrors.ErrValidation, details)
	}

	if req.SlotID != nil {
		if err := a.ensureSlotExists(ctx, strings.TrimSpace(*req.SlotID)); err != nil {
			return nil, err
		}
	}

	dateFrom, err := parseDate("date_from", req.DateFrom)
	if err != nil {
		return nil, err
	}
	dateTo, err := parseDate("date_to", req.DateTo)
	if err != nil {
		return nil, err
	}

	now := a.now().UTC()
	updated, err := a.creativeRepository.UpdateAdCreative(ctx, id, func(c *domain.AdCreative) error {
		if req.SlotID != nil {
			c.SlotID = strings.TrimSpace(*req.SlotID)
		}
		if req.Status != nil {
			c.Status = domain.AdCreativeStatus(strings.TrimSpace(*req.Status))
		}
		if req.Title != nil {
			c.Title = strings.TrimSpace(*req.Title)
		}
		if req.ImageURL != nil {
			c.ImageURL = strings.TrimSpace(*req.ImageURL)
		}
		if req.TargetURL != nil {
			c.TargetURL = strings.TrimSpace(*req.TargetURL)
		}
		if req.DateFrom != nil {
			c.DateFrom = dateFrom
		}
		if req.DateTo != nil {
			c.DateTo = dateTo
		}
		if req.Targeting != nil {
			c.Targeting = req.Targeting.Normalize()
		}
		if req.Weight != nil {
			c.Weight = sanitizeWeight(*req.Weight)
		}

		if err := checkDateRange(c.DateFrom, c.DateTo); err != nil {
			return err
		}

		c.UpdatedAt = now
		return nil
	})
	if err != nil {
		var adErr *AdError
		if errors.As(err, &adErr) {
			return nil, adErr
		}
		return nil, storageError(err)
	}
	if updated == nil {
		return nil, NewAdError(ErrCreativeNotFound, apiErrors.ErrNotFound, nil)
	}

	return toCreativeResponse(updated), nil
}

func (a *Admin) DeleteCreative(ctx context.Context, id string) error {
	deleted, err := a.creativeRepository.DeleteAdCreative(ctx, id)
	if err != nil {
		return storageError(err)
	}
	if !deleted {
		return NewAdError(ErrCreativeNotFound, apiErrors.ErrNotFound, nil)
	}
	return nil
}

func (a *Admin) ListEvents(ctx context.Context, filter domain.AdEventFilter) ([]*domain.AdEvent, error) {
	if filter.Type != "" && !filter.Type.IsValid() {
		return nil, NewAdError(ErrBadType, apiErrors.ErrBadType, nil)
	}

	switch {
	case filter.Limit <= 0:
		filter.Limit = DefaultEventsLimit
	case filter.Limit > MaxEventsLimit:
		filter.Limit = MaxEventsLimit
	}

	events, err := a.eventRepository.ListAdEvents(ctx, filter)
	if err != nil {
		return nil, storageError(err)
	}
	return events, nil
}

func (a *Admin) ensureSlotExists(ctx context.Context, slotID string) error {
	if slotID == "" {
		return NewAdError(ErrBadSlot, apiErrors.ErrBadSlot, nil)
	}

	slot, err := a.slotRepository.GetAdSlot(ctx, slotID)
	if err != nil {
		return storageError(err)
	}
	if slot == nil {
		return NewAdError(ErrSlotNotFound, apiErrors.ErrBadSlot, map[string]string{"slot_id": slotID})
	}
	return nil
}

func parseDate(field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}

	t, err := utils.ParseInstant(*value)
	if err != nil {
		return nil, NewAdError(ErrBadDate, apiErrors.ErrValidation, map[string]string{field: "date"})
	}
	return t, nil
}

func checkDateRange(from, to *time.Time) error {
	if from != nil && to != nil && to.Before(*from) {
		return NewAdError(ErrBadDateRange, apiErrors.ErrBadDateRange, nil)
	}
	return nil
}

// sanitizeWeight troca pesos inválidos pelo padrão 1
func sanitizeWeight(weight float64) float64 {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return 1
	}
	return weight
}

func toCreativeResponse(c *domain.AdCreative) *domain.AdCreativeResponse {
	return &domain.AdCreativeResponse{
		AdCreative: c,
		CTR:        utils.CTR(c.ViewsCount, c.ClicksCount),
	}
}
