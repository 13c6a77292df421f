package adserving

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/vfg2006/mko-api/infrastructure/repository"
	"github.com/vfg2006/mko-api/internal/config"
	"github.com/vfg2006/mko-api/internal/domain"
	"github.com/vfg2006/mko-api/pkg/apiErrors"
	"github.com/vfg2006/mko-api/pkg/log"
	"github.com/vfg2006/mko-api/pkg/metrics"
	"github.com/vfg2006/mko-api/pkg/utils"
)

type AdServingService interface {
	Serve(ctx context.Context, slotID string, reqCtx domain.RequestContext, client domain.ClientInfo) (domain.ServeResult, error)
	RecordEvent(ctx context.Context, req *domain.TrackRequest, client domain.ClientInfo) error
}

type Service struct {
	slotRepository     repository.AdSlotRepository
	creativeRepository repository.AdCreativeRepository
	eventRepository    repository.AdEventRepository
	ipHashSalt         string
	picker             Picker
	now                func() time.Time
}

type Option func(*Service)

// WithPicker troca a fonte de aleatoriedade do sorteio
func WithPicker(p Picker) Option {
	return func(s *Service) { s.picker = p }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(
	slotRepository repository.AdSlotRepository,
	creativeRepository repository.AdCreativeRepository,
	eventRepository repository.AdEventRepository,
	cfg *config.Config,
	opts ...Option,
) AdServingService {
	s := &Service{
		slotRepository:     slotRepository,
		creativeRepository: creativeRepository,
		eventRepository:    eventRepository,
		ipHashSalt:         cfg.AdSystem.IPHashSalt,
		picker:             DefaultPicker,
		now:                time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Serve escolhe um criativo elegível do slot e registra a visualização.
// Slot inexistente, desabilitado ou sem criativos elegíveis resulta em ServeResult vazio.
func (s *Service) Serve(ctx context.Context, slotID string, reqCtx domain.RequestContext, client domain.ClientInfo) (domain.ServeResult, error) {
	slotID = strings.TrimSpace(slotID)
	if slotID == "" {
		return domain.EmptyServeResult(), NewAdError(ErrBadSlot, apiErrors.ErrBadSlot, nil)
	}

	logger := log.ForContext(ctx).WithField("slot", slotID)

	slot, err := s.slotRepository.GetAdSlot(ctx, slotID)
	if err != nil {
		metrics.RecordAdServe(metrics.ServeResultError)
		return domain.EmptyServeResult(), storageError(err)
	}

	if slot == nil || !slot.Enabled() {
		metrics.RecordAdServe(metrics.ServeResultEmpty)
		return domain.EmptyServeResult(), nil
	}

	creatives, err := s.creativeRepository.ListAdCreatives(ctx, domain.AdCreativeFilter{
		SlotID: slotID,
		Status: domain.AdCreativeStatusActive,
	})
	if err != nil {
		metrics.RecordAdServe(metrics.ServeResultError)
		return domain.EmptyServeResult(), storageError(err)
	}

	now := s.now()
	picked := WeightedPick(Eligible(creatives, reqCtx, now), s.picker)
	if picked == nil {
		metrics.RecordAdServe(metrics.ServeResultEmpty)
		return domain.EmptyServeResult(), nil
	}

	// a contagem da visualização não impede a entrega do anúncio
	if err := s.track(ctx, picked.ID, domain.AdEventTypeView, reqCtx, client, now); err != nil {
		logger.WithField("creative_id", picked.ID).WithError(err).Error("Falha ao registrar visualização")
	}

	metrics.RecordAdServe(metrics.ServeResultServed)
	return domain.FoundServeResult(picked), nil
}

// RecordEvent valida e registra uma visualização ou clique vinda do cliente
func (s *Service) RecordEvent(ctx context.Context, req *domain.TrackRequest, client domain.ClientInfo) error {
	creativeID := strings.TrimSpace(req.CreativeID.String())
	if creativeID == "" {
		return NewAdError(ErrBadCreativeID, apiErrors.ErrBadCreativeID, nil)
	}

	eventType := domain.AdEventType(strings.TrimSpace(req.Type.String()))
	if !eventType.IsValid() {
		return NewAdError(ErrBadType, apiErrors.ErrBadType, nil)
	}

	creative, err := s.creativeRepository.GetAdCreative(ctx, creativeID)
	if err != nil {
		return storageError(err)
	}
	if creative == nil {
		return NewAdError(ErrCreativeNotFound, apiErrors.ErrNotFound, nil)
	}

	reqCtx := domain.NewRequestContext(req.City.String(), req.Category.String(), req.Page.String())
	if err := s.track(ctx, creativeID, eventType, reqCtx, client, s.now()); err != nil {
		if errors.Is(err, ErrCreativeNotFound) {
			return NewAdError(ErrCreativeNotFound, apiErrors.ErrNotFound, nil)
		}
		return storageError(err)
	}

	return nil
}

func (s *Service) track(ctx context.Context, creativeID string, eventType domain.AdEventType, reqCtx domain.RequestContext, client domain.ClientInfo, at time.Time) error {
	found, err := s.creativeRepository.IncrementCreativeCounter(ctx, creativeID, eventType, at)
	if err != nil {
		return err
	}
	// removido entre a busca e o incremento
	if !found {
		return ErrCreativeNotFound
	}

	event := &domain.AdEvent{
		ID:         utils.MakeID("adev"),
		CreativeID: creativeID,
		Type:       eventType,
		Page:       utils.StringPtr(reqCtx.Page),
		City:       utils.StringPtr(reqCtx.City),
		Category:   utils.StringPtr(reqCtx.Category),
		UserAgent:  utils.StringPtr(client.UserAgent),
		IPHash:     utils.HashIP(client.IP, s.ipHashSalt),
		CreatedAt:  at,
	}

	if err := s.eventRepository.CreateAdEvent(ctx, event); err != nil {
		return err
	}

	metrics.RecordAdEvent(string(eventType))
	return nil
}

// Eligible filtra os criativos ativos, dentro da janela e que atendem o targeting
func Eligible(creatives []*domain.AdCreative, reqCtx domain.RequestContext, now time.Time) []*domain.AdCreative {
	eligible := make([]*domain.AdCreative, 0, len(creatives))
	for _, c := range creatives {
		if !c.IsActive() {
			continue
		}
		if !InWindow(c.DateFrom, c.DateTo, now) {
			continue
		}
		if !Matches(c.Targeting, reqCtx) {
			continue
		}
		eligible = append(eligible, c)
	}
	return eligible
}
