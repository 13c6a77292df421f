package adserving

import (
	"errors"
	"fmt"

	"github.com/vfg2006/mko-api/pkg/apiErrors"
)

// Erros do sistema de anúncios
var (
	// Erros de validação
	ErrBadSlot       = errors.New("slot inválido")
	ErrBadCreativeID = errors.New("creative_id inválido")
	ErrBadType       = errors.New("tipo de evento inválido")
	ErrBadDateRange  = errors.New("date_to anterior a date_from")
	ErrBadDate       = errors.New("data inválida")
	ErrValidation    = errors.New("dados inválidos")

	// Recursos inexistentes
	ErrSlotNotFound     = errors.New("slot não encontrado")
	ErrCreativeNotFound = errors.New("criativo não encontrado")

	// Erros de armazenamento
	ErrStorage = errors.New("erro de armazenamento")
)

// AdError carrega o código exposto ao cliente
type AdError struct {
	Err     error
	Code    string
	Details any
}

func (e *AdError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AdError) Unwrap() error {
	return e.Err
}

func NewAdError(err error, code string, details any) *AdError {
	return &AdError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func storageError(err error) *AdError {
	return NewAdError(fmt.Errorf("%w: %v", ErrStorage, err), apiErrors.ErrStorage, nil)
}
