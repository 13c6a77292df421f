package domain

import (
	"time"
)

// AdSlot é um local nomeado da interface onde um criativo pode ser exibido
type AdSlot struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	IsEnabled   *bool      `json:"is_enabled,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// Enabled considera ausente como habilitado
func (s *AdSlot) Enabled() bool {
	if s == nil {
		return false
	}
	return s.IsEnabled == nil || *s.IsEnabled
}

type UpdateAdSlotRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsEnabled   *bool   `json:"is_enabled,omitempty"`
}

// Apply aplica o patch sobre o slot (semântica de merge-patch)
func (r *UpdateAdSlotRequest) Apply(slot *AdSlot, now time.Time) {
	if r.Name != nil {
		slot.Name = *r.Name
	}
	if r.Description != nil {
		slot.Description = *r.Description
	}
	if r.IsEnabled != nil {
		enabled := *r.IsEnabled
		slot.IsEnabled = &enabled
	}
	slot.UpdatedAt = &now
}

// DefaultAdSlots retorna o conjunto padrão de slots criado na inicialização
func DefaultAdSlots(now time.Time) []*AdSlot {
	defaults := []struct {
		id, name, description string
	}{
		{"home_top", "Home top", "Strona główna – pod wyszukiwarką"},
		{"listing_inline", "Listing inline", "Lista ogłoszeń – co X"},
		{"offer_bottom", "Offer bottom", "Strona ogłoszenia – pod opisem"},
		{"sidebar_desktop", "Sidebar desktop", "Sidebar (desktop)"},
		{"mobile_sticky", "Mobile sticky", "Pasek dół (mobile)"},
	}

	slots := make([]*AdSlot, 0, len(defaults))
	for _, d := range defaults {
		enabled := true
		slots = append(slots, &AdSlot{
			ID:          d.id,
			Name:        d.name,
			Description: d.description,
			IsEnabled:   &enabled,
			CreatedAt:   now,
		})
	}

	return slots
}
