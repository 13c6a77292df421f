package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/mko-api/infrastructure/database/postgres"
	"github.com/vfg2006/mko-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const (
	adSlotsTable     = "ad_slots"
	adCreativesTable = "ad_creatives"
	adEventsTable    = "ad_events"
)

var (
	adSlotColumns     = []string{"id", "name", "description", "is_enabled", "created_at", "updated_at"}
	adCreativeColumns = []string{
		"id", "slot_id", "status", "title", "image_url", "target_url", "date_from", "date_to",
		"targeting", "weight", "views_count", "clicks_count", "created_at", "updated_at",
	}
	adEventColumns = []string{"id", "creative_id", "type", "page", "city", "category", "user_agent", "ip_hash", "created_at"}
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

type adSlotRepository struct {
	conn *postgres.Connection
}

func NewAdSlotRepository(conn *postgres.Connection) AdSlotRepository {
	return &adSlotRepository{conn: conn}
}

func (r *adSlotRepository) ListAdSlots(ctx context.Context) ([]*domain.AdSlot, error) {
	query, args, err := psql.Select(adSlotColumns...).From(adSlotsTable).OrderBy("created_at ASC", "id ASC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr(err, "erro ao listar slots")
	}
	defer rows.Close()

	slots := []*domain.AdSlot{}
	for rows.Next() {
		slot, err := scanAdSlot(rows)
		if err != nil {
			return nil, storageErr(err, "erro ao ler slot")
		}
		slots = append(slots, slot)
	}

	return slots, storageErr(rows.Err(), "erro durante iteração de slots")
}

func (r *adSlotRepository) GetAdSlot(ctx context.Context, id string) (*domain.AdSlot, error) {
	return getAdSlot(ctx, r.conn, id, false)
}

func getAdSlot(ctx context.Context, q postgres.Queryer, id string, forUpdate bool) (*domain.AdSlot, error) {
	builder := psql.Select(adSlotColumns...).From(adSlotsTable).Where(squirrel.Eq{"id": id})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	slot, err := scanAdSlot(q.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr(err, "erro ao buscar slot")
	}

	return slot, nil
}

func (r *adSlotRepository) UpdateAdSlot(ctx context.Context, id string, fn func(slot *domain.AdSlot) error) (*domain.AdSlot, error) {
	var updated *domain.AdSlot

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		slot, err := getAdSlot(ctx, tx, id, true)
		if err != nil || slot == nil {
			return err
		}

		if err := fn(slot); err != nil {
			return err
		}

		query, args, err := psql.Update(adSlotsTable).
			Set("name", slot.Name).
			Set("description", slot.Description).
			Set("is_enabled", slot.IsEnabled).
			Set("updated_at", slot.UpdatedAt).
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return storageErr(err, "erro ao atualizar slot")
		}

		updated = slot
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *adSlotRepository) EnsureDefaultAdSlots(ctx context.Context, defaults []*domain.AdSlot) (int, error) {
	if len(defaults) == 0 {
		return 0, nil
	}

	builder := psql.Insert(adSlotsTable).Columns("id", "name", "description", "is_enabled", "created_at")
	for _, slot := range defaults {
		builder = builder.Values(slot.ID, slot.Name, slot.Description, slot.IsEnabled, slot.CreatedAt)
	}

	query, args, err := builder.Suffix("ON CONFLICT (id) DO NOTHING").ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, storageErr(err, "erro ao criar slots padrão")
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return 0, storageErr(err, "erro ao contar slots inseridos")
	}

	return int(inserted), nil
}

func scanAdSlot(row rowScanner) (*domain.AdSlot, error) {
	slot := &domain.AdSlot{}
	if err := row.Scan(
		&slot.ID,
		&slot.Name,
		&slot.Description,
		&slot.IsEnabled,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return slot, nil
}

type adCreativeRepository struct {
	conn *postgres.Connection
}

func NewAdCreativeRepository(conn *postgres.Connection) AdCreativeRepository {
	return &adCreativeRepository{conn: conn}
}

func (r *adCreativeRepository) ListAdCreatives(ctx context.Context, filter domain.AdCreativeFilter) ([]*domain.AdCreative, error) {
	builder := psql.Select(adCreativeColumns...).From(adCreativesTable).OrderBy("created_at DESC")

	if filter.SlotID != "" {
		builder = builder.Where(squirrel.Eq{"slot_id": filter.SlotID})
	}
	if filter.Status != "" {
		builder = builder.Where(squirrel.Eq{"status": string(filter.Status)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr(err, "erro ao listar criativos")
	}
	defer rows.Close()

	creatives := []*domain.AdCreative{}
	for rows.Next() {
		creative, err := scanAdCreative(rows)
		if err != nil {
			return nil, storageErr(err, "erro ao ler criativo")
		}
		creatives = append(creatives, creative)
	}

	return creatives, storageErr(rows.Err(), "erro durante iteração de criativos")
}

func (r *adCreativeRepository) GetAdCreative(ctx context.Context, id string) (*domain.AdCreative, error) {
	return getAdCreative(ctx, r.conn, id, false)
}

func getAdCreative(ctx context.Context, q postgres.Queryer, id string, forUpdate bool) (*domain.AdCreative, error) {
	builder := psql.Select(adCreativeColumns...).From(adCreativesTable).Where(squirrel.Eq{"id": id})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	creative, err := scanAdCreative(q.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr(err, "erro ao buscar criativo")
	}

	return creative, nil
}

func (r *adCreativeRepository) CreateAdCreative(ctx context.Context, creative *domain.AdCreative) error {
	targeting, err := json.Marshal(creative.Targeting)
	if err != nil {
		return err
	}

	query, args, err := psql.Insert(adCreativesTable).
		Columns(adCreativeColumns...).
		Values(
			creative.ID, creative.SlotID, string(creative.Status), creative.Title, creative.ImageURL,
			creative.TargetURL, creative.DateFrom, creative.DateTo, string(targeting), creative.Weight,
			creative.ViewsCount, creative.ClicksCount, creative.CreatedAt, creative.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return storageErr(err, "erro ao criar criativo")
}

func (r *adCreativeRepository) UpdateAdCreative(ctx context.Context, id string, fn func(creative *domain.AdCreative) error) (*domain.AdCreative, error) {
	var updated *domain.AdCreative

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		creative, err := getAdCreative(ctx, tx, id, true)
		if err != nil || creative == nil {
			return err
		}

		if err := fn(creative); err != nil {
			return err
		}

		targeting, err := json.Marshal(creative.Targeting)
		if err != nil {
			return err
		}

		query, args, err := psql.Update(adCreativesTable).
			Set("slot_id", creative.SlotID).
			Set("status", string(creative.Status)).
			Set("title", creative.Title).
			Set("image_url", creative.ImageURL).
			Set("target_url", creative.TargetURL).
			Set("date_from", creative.DateFrom).
			Set("date_to", creative.DateTo).
			Set("targeting", string(targeting)).
			Set("weight", creative.Weight).
			Set("updated_at", creative.UpdatedAt).
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return storageErr(err, "erro ao atualizar criativo")
		}

		updated = creative
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *adCreativeRepository) DeleteAdCreative(ctx context.Context, id string) (bool, error) {
	query, args, err := psql.Delete(adCreativesTable).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, storageErr(err, "erro ao remover criativo")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, storageErr(err, "erro ao contar criativos removidos")
	}

	return affected > 0, nil
}

// IncrementCreativeCounter usa um UPDATE atômico no banco
func (r *adCreativeRepository) IncrementCreativeCounter(ctx context.Context, id string, eventType domain.AdEventType, at time.Time) (bool, error) {
	column := "views_count"
	if eventType == domain.AdEventTypeClick {
		column = "clicks_count"
	}

	query, args, err := psql.Update(adCreativesTable).
		Set(column, squirrel.Expr(column+" + 1")).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, storageErr(err, "erro ao incrementar contador")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, storageErr(err, "erro ao contar criativos atualizados")
	}

	return affected > 0, nil
}

func scanAdCreative(row rowScanner) (*domain.AdCreative, error) {
	creative := &domain.AdCreative{}
	var status string
	var targeting []byte

	if err := row.Scan(
		&creative.ID,
		&creative.SlotID,
		&status,
		&creative.Title,
		&creative.ImageURL,
		&creative.TargetURL,
		&creative.DateFrom,
		&creative.DateTo,
		&targeting,
		&creative.Weight,
		&creative.ViewsCount,
		&creative.ClicksCount,
		&creative.CreatedAt,
		&creative.UpdatedAt,
	); err != nil {
		return nil, err
	}

	creative.Status = domain.AdCreativeStatus(status)
	if len(targeting) > 0 {
		if err := json.Unmarshal(targeting, &creative.Targeting); err != nil {
			return nil, err
		}
	}

	return creative, nil
}

type adEventRepository struct {
	conn      *postgres.Connection
	eventsCap int
}

func NewAdEventRepository(conn *postgres.Connection, eventsCap int) AdEventRepository {
	if eventsCap <= 0 {
		eventsCap = domain.DefaultAdEventsCap
	}
	return &adEventRepository{conn: conn, eventsCap: eventsCap}
}

func (r *adEventRepository) CreateAdEvent(ctx context.Context, event *domain.AdEvent) error {
	insertSQL, insertArgs, err := psql.Insert(adEventsTable).
		Columns(adEventColumns...).
		Values(
			event.ID, event.CreativeID, string(event.Type), event.Page, event.City,
			event.Category, event.UserAgent, event.IPHash, event.CreatedAt,
		).
		ToSql()
	if err != nil {
		return err
	}

	trimSQL, trimArgs, err := psql.Delete(adEventsTable).
		Where(squirrel.Expr("id IN (SELECT id FROM ad_events ORDER BY created_at DESC OFFSET ?)", r.eventsCap)).
		ToSql()
	if err != nil {
		return err
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
			return storageErr(err, "erro ao registrar evento")
		}
		if _, err := tx.ExecContext(ctx, trimSQL, trimArgs...); err != nil {
			return storageErr(err, "erro ao descartar eventos antigos")
		}
		return nil
	})
}

func (r *adEventRepository) ListAdEvents(ctx context.Context, filter domain.AdEventFilter) ([]*domain.AdEvent, error) {
	builder := psql.Select(adEventColumns...).From(adEventsTable).OrderBy("created_at DESC")

	if filter.CreativeID != "" {
		builder = builder.Where(squirrel.Eq{"creative_id": filter.CreativeID})
	}
	if filter.Type != "" {
		builder = builder.Where(squirrel.Eq{"type": string(filter.Type)})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr(err, "erro ao listar eventos")
	}
	defer rows.Close()

	events := []*domain.AdEvent{}
	for rows.Next() {
		event := &domain.AdEvent{}
		var eventType string
		if err := rows.Scan(
			&event.ID,
			&event.CreativeID,
			&eventType,
			&event.Page,
			&event.City,
			&event.Category,
			&event.UserAgent,
			&event.IPHash,
			&event.CreatedAt,
		); err != nil {
			return nil, storageErr(err, "erro ao ler evento")
		}
		event.Type = domain.AdEventType(eventType)
		events = append(events, event)
	}

	return events, storageErr(rows.Err(), "erro durante iteração de eventos")
}
