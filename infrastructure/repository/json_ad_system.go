package repository

import (
	"context"
	"time"

	"github.com/vfg2006/mko-api/infrastructure/database/jsondb"
	"github.com/vfg2006/mko-api/internal/domain"
)

type jsonAdSlotRepository struct {
	store *jsondb.Store
}

func NewJSONAdSlotRepository(store *jsondb.Store) AdSlotRepository {
	return &jsonAdSlotRepository{store: store}
}

func (r *jsonAdSlotRepository) ListAdSlots(ctx context.Context) ([]*domain.AdSlot, error) {
	var slots []*domain.AdSlot
	err := r.store.View(func(doc *jsondb.Document) error {
		slots = doc.AdSlots
		return nil
	})
	return slots, storageErr(err, "erro ao listar slots")
}

func (r *jsonAdSlotRepository) GetAdSlot(ctx context.Context, id string) (*domain.AdSlot, error) {
	var slot *domain.AdSlot
	err := r.store.View(func(doc *jsondb.Document) error {
		slot = findAdSlot(doc, id)
		return nil
	})
	return slot, storageErr(err, "erro ao buscar slot")
}

func (r *jsonAdSlotRepository) UpdateAdSlot(ctx context.Context, id string, fn func(slot *domain.AdSlot) error) (*domain.AdSlot, error) {
	var updated *domain.AdSlot
	var fnErr error

	err := r.store.Update(func(doc *jsondb.Document) error {
		slot := findAdSlot(doc, id)
		if slot == nil {
			return jsondb.ErrNoChange
		}
		if fnErr = fn(slot); fnErr != nil {
			return jsondb.ErrNoChange
		}
		updated = slot
		return nil
	})
	if fnErr != nil {
		return nil, fnErr
	}
	if err != nil {
		return nil, storageErr(err, "erro ao atualizar slot")
	}

	return updated, nil
}

// EnsureDefaultAdSlots adiciona apenas os slots cujo id ainda não existe
func (r *jsonAdSlotRepository) EnsureDefaultAdSlots(ctx context.Context, defaults []*domain.AdSlot) (int, error) {
	inserted := 0
	err := r.store.Update(func(doc *jsondb.Document) error {
		for _, slot := range defaults {
			if findAdSlot(doc, slot.ID) != nil {
				continue
			}
			doc.AdSlots = append(doc.AdSlots, slot)
			inserted++
		}
		if inserted == 0 {
			return jsondb.ErrNoChange
		}
		return nil
	})
	if err != nil {
		return 0, storageErr(err, "erro ao criar slots padrão")
	}

	return inserted, nil
}

func findAdSlot(doc *jsondb.Document, id string) *domain.AdSlot {
	for _, slot := range doc.AdSlots {
		if slot.ID == id {
			return slot
		}
	}
	return nil
}

type jsonAdCreativeRepository struct {
	store *jsondb.Store
}

func NewJSONAdCreativeRepository(store *jsondb.Store) AdCreativeRepository {
	return &jsonAdCreativeRepository{store: store}
}

func (r *jsonAdCreativeRepository) ListAdCreatives(ctx context.Context, filter domain.AdCreativeFilter) ([]*domain.AdCreative, error) {
	creatives := []*domain.AdCreative{}
	err := r.store.View(func(doc *jsondb.Document) error {
		for _, c := range doc.AdCreatives {
			if filter.SlotID != "" && c.SlotID != filter.SlotID {
				continue
			}
			if filter.Status != "" && c.Status != filter.Status {
				continue
			}
			creatives = append(creatives, c)
		}
		return nil
	})
	if err != nil {
		return nil, storageErr(err, "erro ao listar criativos")
	}

	return creatives, nil
}

func (r *jsonAdCreativeRepository) GetAdCreative(ctx context.Context, id string) (*domain.AdCreative, error) {
	var creative *domain.AdCreative
	err := r.store.View(func(doc *jsondb.Document) error {
		_, creative = findAdCreative(doc, id)
		return nil
	})
	return creative, storageErr(err, "erro ao buscar criativo")
}

func (r *jsonAdCreativeRepository) CreateAdCreative(ctx context.Context, creative *domain.AdCreative) error {
	err := r.store.Update(func(doc *jsondb.Document) error {
		doc.AdCreatives = append([]*domain.AdCreative{creative}, doc.AdCreatives...)
		return nil
	})
	return storageErr(err, "erro ao criar criativo")
}

func (r *jsonAdCreativeRepository) UpdateAdCreative(ctx context.Context, id string, fn func(creative *domain.AdCreative) error) (*domain.AdCreative, error) {
	var updated *domain.AdCreative
	var fnErr error

	err := r.store.Update(func(doc *jsondb.Document) error {
		_, creative := findAdCreative(doc, id)
		if creative == nil {
			return jsondb.ErrNoChange
		}
		if fnErr = fn(creative); fnErr != nil {
			return jsondb.ErrNoChange
		}
		updated = creative
		return nil
	})
	if fnErr != nil {
		return nil, fnErr
	}
	if err != nil {
		return nil, storageErr(err, "erro ao atualizar criativo")
	}

	return updated, nil
}

func (r *jsonAdCreativeRepository) DeleteAdCreative(ctx context.Context, id string) (bool, error) {
	deleted := false
	err := r.store.Update(func(doc *jsondb.Document) error {
		idx, _ := findAdCreative(doc, id)
		if idx < 0 {
			return jsondb.ErrNoChange
		}
		doc.AdCreatives = append(doc.AdCreatives[:idx], doc.AdCreatives[idx+1:]...)
		deleted = true
		return nil
	})
	if err != nil {
		return false, storageErr(err, "erro ao remover criativo")
	}

	return deleted, nil
}

func (r *jsonAdCreativeRepository) IncrementCreativeCounter(ctx context.Context, id string, eventType domain.AdEventType, at time.Time) (bool, error) {
	found := false
	err := r.store.Update(func(doc *jsondb.Document) error {
		_, creative := findAdCreative(doc, id)
		if creative == nil {
			return jsondb.ErrNoChange
		}
		if eventType == domain.AdEventTypeClick {
			creative.ClicksCount++
		} else {
			creative.ViewsCount++
		}
		creative.UpdatedAt = at
		found = true
		return nil
	})
	if err != nil {
		return false, storageErr(err, "erro ao incrementar contador")
	}

	return found, nil
}

func findAdCreative(doc *jsondb.Document, id string) (int, *domain.AdCreative) {
	for i, c := range doc.AdCreatives {
		if c.ID == id {
			return i, c
		}
	}
	return -1, nil
}

type jsonAdEventRepository struct {
	store     *jsondb.Store
	eventsCap int
}

func NewJSONAdEventRepository(store *jsondb.Store, eventsCap int) AdEventRepository {
	if eventsCap <= 0 {
		eventsCap = domain.DefaultAdEventsCap
	}
	return &jsonAdEventRepository{store: store, eventsCap: eventsCap}
}

// CreateAdEvent insere o evento no topo e descarta os mais antigos acima do limite
func (r *jsonAdEventRepository) CreateAdEvent(ctx context.Context, event *domain.AdEvent) error {
	err := r.store.Update(func(doc *jsondb.Document) error {
		doc.AdEvents = append([]*domain.AdEvent{event}, doc.AdEvents...)
		if len(doc.AdEvents) > r.eventsCap {
			doc.AdEvents = doc.AdEvents[:r.eventsCap]
		}
		return nil
	})
	return storageErr(err, "erro ao registrar evento")
}

func (r *jsonAdEventRepository) ListAdEvents(ctx context.Context, filter domain.AdEventFilter) ([]*domain.AdEvent, error) {
	events := []*domain.AdEvent{}
	err := r.store.View(func(doc *jsondb.Document) error {
		for _, ev := range doc.AdEvents {
			if filter.CreativeID != "" && ev.CreativeID != filter.CreativeID {
				continue
			}
			if filter.Type != "" && ev.Type != filter.Type {
				continue
			}
			events = append(events, ev)
			if filter.Limit > 0 && len(events) >= filter.Limit {
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, storageErr(err, "erro ao listar eventos")
	}

	return events, nil
}
