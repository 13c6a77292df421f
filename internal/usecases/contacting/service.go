package contacting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/mko-api/infrastructure/mailer"
	"github.com/vfg2006/mko-api/infrastructure/repository"
	"github.com/vfg2006/mko-api/internal/config"
	"github.com/vfg2006/mko-api/internal/domain"
	"github.com/vfg2006/mko-api/pkg/apiErrors"
	"github.com/vfg2006/mko-api/pkg/log"
	"github.com/vfg2006/mko-api/pkg/utils"
	"github.com/vfg2006/mko-api/pkg/validation"
)

var (
	ErrValidation = errors.New("formulário de contato inválido")
	ErrStorage    = errors.New("erro ao salvar contato")
)

// ContactError carrega o código e os campos inválidos do formulário
type ContactError struct {
	Err     error
	Code    string
	Details map[string]string
}

func (e *ContactError) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ContactError) Unwrap() error {
	return e.Err
}

type ContactService interface {
	Submit(ctx context.Context, req *domain.ContactRequest) (*domain.Contact, error)
	ListContacts(ctx context.Context) ([]*domain.Contact, error)
}

type Service struct {
	contactRepo repository.ContactRepository
	mailer      mailer.Mailer
	contactTo   string
	now         func() time.Time
}

func NewService(contactRepo repository.ContactRepository, mailSender mailer.Mailer, cfg *config.Config) ContactService {
	return &Service{
		contactRepo: contactRepo,
		mailer:      mailSender,
		contactTo:   strings.TrimSpace(cfg.Mail.ContactTo),
		now:         time.Now,
	}
}

// Submit grava a mensagem e, se houver destino configurado, encaminha por e-mail.
// Falha no envio não invalida o contato já salvo.
func (s *Service) Submit(ctx context.Context, req *domain.ContactRequest) (*domain.Contact, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Message = strings.TrimSpace(req.Message)

	if details := validation.Struct(req); details != nil {
		return nil, &ContactError{Err: ErrValidation, Code: apiErrors.ErrValidation, Details: details}
	}

	contact := &domain.Contact{
		ID:        utils.MakeID("contact"),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: s.now().UTC(),
	}

	if err := s.contactRepo.CreateContact(ctx, contact); err != nil {
		return nil, &ContactError{Err: fmt.Errorf("%w: %v", ErrStorage, err), Code: apiErrors.ErrStorage}
	}

	if s.contactTo == "" || !s.mailer.Configured() {
		return contact, nil
	}

	if err := s.mailer.Send(ctx, mailer.ContactMessage(s.contactTo, contact)); err != nil {
		log.ForContext(ctx).WithError(err).Warnf("Falha ao encaminhar contato %s", contact.ID)
	}

	return contact, nil
}

func (s *Service) ListContacts(ctx context.Context) ([]*domain.Contact, error) {
	contacts, err := s.contactRepo.ListContacts(ctx)
	if err != nil {
		return nil, &ContactError{Err: fmt.Errorf("%w: %v", ErrStorage, err), Code: apiErrors.ErrStorage}
	}
	return contacts, nil
}
