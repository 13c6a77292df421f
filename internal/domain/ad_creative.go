package domain

import (
	"time"
)

type AdCreativeStatus string

const (
	AdCreativeStatusActive AdCreativeStatus = "active"
	AdCreativeStatusPaused AdCreativeStatus = "paused"
)

// AdCreative é uma peça publicitária (imagem + link) vinculada a um slot
type AdCreative struct {
	ID          string           `json:"id"`
	SlotID      string           `json:"slot_id"`
	Status      AdCreativeStatus `json:"status"`
	Title       string           `json:"title"`
	ImageURL    string           `json:"image_url"`
	TargetURL   string           `json:"target_url"`
	DateFrom    *time.Time       `json:"date_from,omitempty"`
	DateTo      *time.Time       `json:"date_to,omitempty"`
	Targeting   TargetingRule    `json:"targeting"`
	Weight      float64          `json:"weight"`
	ViewsCount  int64            `json:"views_count"`
	ClicksCount int64            `json:"clicks_count"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func (c *AdCreative) IsActive() bool {
	return c != nil && c.Status == AdCreativeStatusActive
}

// Payload retorna apenas os campos públicos do criativo
func (c *AdCreative) Payload() CreativePayload {
	return CreativePayload{
		ID:        c.ID,
		Title:     c.Title,
		ImageURL:  c.ImageURL,
		TargetURL: c.TargetURL,
	}
}

// CreativePayload é a resposta pública do ad-serve
type CreativePayload struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	ImageURL  string `json:"image_url"`
	TargetURL string `json:"target_url"`
}

// ServeResult diferencia "nenhum anúncio" de erro
type ServeResult struct {
	Found    bool
	Creative CreativePayload
}

func EmptyServeResult() ServeResult {
	return ServeResult{}
}

func FoundServeResult(c *AdCreative) ServeResult {
	return ServeResult{Found: true, Creative: c.Payload()}
}

type AdCreativeFilter struct {
	SlotID string
	Status AdCreativeStatus
}

type CreateAdCreativeRequest struct {
	SlotID    string         `json:"slot_id" validate:"required,max=64"`
	Status    string         `json:"status" validate:"omitempty,max=32"`
	Title     string         `json:"title" validate:"max=200"`
	ImageURL  string         `json:"image_url" validate:"required,max=2048"`
	TargetURL string         `json:"target_url" validate:"max=2048"`
	DateFrom  *string        `json:"date_from,omitempty"`
	DateTo    *string        `json:"date_to,omitempty"`
	Targeting *TargetingRule `json:"targeting,omitempty"`
	Weight    *float64       `json:"weight,omitempty"`
}

type UpdateAdCreativeRequest struct {
	SlotID    *string        `json:"slot_id,omitempty" validate:"omitempty,min=1,max=64"`
	Status    *string        `json:"status,omitempty" validate:"omitempty,min=1,max=32"`
	Title     *string        `json:"title,omitempty" validate:"omitempty,max=200"`
	ImageURL  *string        `json:"image_url,omitempty" validate:"omitempty,max=2048"`
	TargetURL *string        `json:"target_url,omitempty" validate:"omitempty,max=2048"`
	DateFrom  *string        `json:"date_from,omitempty"`
	DateTo    *string        `json:"date_to,omitempty"`
	Targeting *TargetingRule `json:"targeting,omitempty"`
	Weight    *float64       `json:"weight,omitempty"`
}

// AdCreativeResponse é a visão administrativa, com CTR calculado
type AdCreativeResponse struct {
	*AdCreative
	CTR float64 `json:"ctr"`
}
