package domain

import "time"

type AdEventType string

const (
	AdEventTypeView  AdEventType = "view"
	AdEventTypeClick AdEventType = "click"
)

// DefaultAdEventsCap é o número máximo de eventos mantidos
const DefaultAdEventsCap = 50000

func (t AdEventType) IsValid() bool {
	return t == AdEventTypeView || t == AdEventTypeClick
}

// AdEvent registra uma visualização ou clique. O IP nunca é salvo, apenas o hash.
type AdEvent struct {
	ID         string      `json:"id"`
	CreativeID string      `json:"creative_id"`
	Type       AdEventType `json:"type"`
	Page       *string     `json:"page"`
	City       *string     `json:"city"`
	Category   *string     `json:"category"`
	UserAgent  *string     `json:"user_agent"`
	IPHash     string      `json:"ip_hash"`
	CreatedAt  time.Time   `json:"created_at"`
}

type AdEventFilter struct {
	CreativeID string
	Type       AdEventType
	Limit      int
}

// TrackRequest é o corpo do POST /ad-event. Os campos aceitam qualquer valor
// JSON para que a validação aconteça por campo.
type TrackRequest struct {
	CreativeID LooseString `json:"creative_id"`
	Type       LooseString `json:"type"`
	Page       LooseString `json:"page"`
	City       LooseString `json:"city"`
	Category   LooseString `json:"category"`
}

// ClientInfo reúne os dados do chamador usados no evento
type ClientInfo struct {
	IP        string
	UserAgent string
}
