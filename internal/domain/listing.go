package domain

import "time"

type ListingStatus string

const (
	ListingStatusActive  ListingStatus = "active"
	ListingStatusDeleted ListingStatus = "deleted"
)

// Listing é um anúncio classificado (coleção "ads")
type Listing struct {
	ID          string        `json:"id"`
	OwnerID     string        `json:"owner_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Price       *float64      `json:"price,omitempty"`
	City        string        `json:"city,omitempty"`
	Category    string        `json:"category,omitempty"`
	Status      ListingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   *time.Time    `json:"updated_at,omitempty"`
}

type CreateListingRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"max=10000"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	City        string   `json:"city" validate:"max=100"`
	Category    string   `json:"category" validate:"max=100"`
}

// Report é uma denúncia feita sobre um anúncio
type Report struct {
	ID         string    `json:"id"`
	ListingID  string    `json:"ad_id"`
	ReporterID *string   `json:"reporter_id,omitempty"`
	Reason     string    `json:"reason"`
	Details    string    `json:"details,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateReportRequest struct {
	Reason  string `json:"reason" validate:"required,max=100"`
	Details string `json:"details" validate:"max=2000"`
}

// Contact é uma mensagem enviada pelo formulário de contato
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"max=200"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,max=5000"`
}
