package authenticating

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/vfg2006/mko-api/infrastructure/mailer"
	"github.com/vfg2006/mko-api/infrastructure/repository"
	"github.com/vfg2006/mko-api/internal/config"
	"github.com/vfg2006/mko-api/internal/domain"
	"github.com/vfg2006/mko-api/pkg/apiErrors"
	"github.com/vfg2006/mko-api/pkg/log"
	"github.com/vfg2006/mko-api/pkg/metrics"
	"github.com/vfg2006/mko-api/pkg/utils"
)

const resetTokenBytes = 32

type PasswordResetter interface {
	RequestReset(ctx context.Context, req *domain.ResetRequest) (*domain.ResetRequestResult, error)
	ConfirmReset(ctx context.Context, req *domain.ResetConfirmRequest) error
}

type Service struct {
	userRepo  repository.UserRepository
	tokenRepo repository.AuthTokenRepository
	mailer    mailer.Mailer
	cfg       *config.Config
	now       func() time.Time
}

func NewService(
	userRepo repository.UserRepository,
	tokenRepo repository.AuthTokenRepository,
	mailSender mailer.Mailer,
	cfg *config.Config,
) PasswordResetter {
	return &Service{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		mailer:    mailSender,
		cfg:       cfg,
		now:       time.Now,
	}
}

// RequestReset gera um token de uso único e envia o link por e-mail.
// O resultado não revela se o e-mail pertence a alguma conta.
func (s *Service) RequestReset(ctx context.Context, req *domain.ResetRequest) (*domain.ResetRequestResult, error) {
	email := NormalizeEmail(req.Email)
	if email == "" {
		metrics.RecordPasswordReset(metrics.ResetOutcomeInvalid)
		return nil, NewAuthError(ErrEmailRequired, apiErrors.ErrEmailRequired, MsgEmailRequired)
	}
	if !IsValidEmail(email) {
		metrics.RecordPasswordReset(metrics.ResetOutcomeInvalid)
		return nil, NewAuthError(ErrEmailInvalid, apiErrors.ErrEmailInvalid, MsgEmailInvalid)
	}

	logger := log.ForContext(ctx)
	now := s.now().UTC()

	if _, err := s.tokenRepo.DeleteExpiredTokens(ctx, now); err != nil {
		logger.WithError(err).Warn("Falha ao remover tokens expirados")
	}

	if _, err := s.tokenRepo.DeleteTokensByEmail(ctx, email, domain.TokenKindResetPassword); err != nil {
		return nil, NewAuthError(err, apiErrors.ErrStorage, "")
	}

	rawToken, err := utils.RandomToken(resetTokenBytes)
	if err != nil {
		return nil, NewAuthError(ErrTokenGeneration, apiErrors.ErrInternalServer, err.Error())
	}

	token := &domain.AuthToken{
		TokenHash: utils.SHA256Hex(rawToken),
		Email:     email,
		Kind:      domain.TokenKindResetPassword,
		ExpiresAt: now.Add(s.cfg.Reset.TTL()),
		CreatedAt: now,
	}

	// vincula ao usuário quando a conta já existe
	if user, err := s.userRepo.GetUserByEmail(ctx, email); err != nil {
		logger.WithError(err).Warn("Falha ao buscar usuário para o token de reset")
	} else if user != nil {
		token.UserID = &user.ID
	}

	if err := s.tokenRepo.CreateToken(ctx, token); err != nil {
		return nil, NewAuthError(err, apiErrors.ErrStorage, "")
	}

	link := ResetLink(s.cfg.Reset.BaseURL(), rawToken)
	result := &domain.ResetRequestResult{
		MailConfigured: s.mailer.Configured(),
		RawToken:       rawToken,
		ResetLink:      link,
	}

	if !result.MailConfigured {
		logger.Warn("SMTP não configurado, link de reset não enviado")
		metrics.RecordPasswordReset(metrics.ResetOutcomeNoMailer)
		return result, nil
	}

	msg := mailer.PasswordResetMessage(email, link, s.cfg.Reset.TTL())
	if err := s.mailer.Send(ctx, msg); err != nil {
		logger.WithError(err).Warnf("Falha ao enviar e-mail de reset para %s", mailer.MaskEmail(email))
		metrics.RecordPasswordReset(metrics.ResetOutcomeFailed)
		return result, nil
	}

	result.Sent = true
	metrics.RecordPasswordReset(metrics.ResetOutcomeSent)
	return result, nil
}

// ConfirmReset consome o token e troca a senha, se a conta existir
func (s *Service) ConfirmReset(ctx context.Context, req *domain.ResetConfirmRequest) error {
	rawToken := strings.TrimSpace(req.Token)
	password := req.NewPassword
	if password == "" {
		password = req.Password
	}

	if rawToken == "" {
		return NewAuthError(ErrTokenRequired, apiErrors.ErrTokenRequired, MsgTokenRequired)
	}
	if !IsStrongPassword(password) {
		return NewAuthError(ErrWeakPassword, apiErrors.ErrWeakPassword, MsgWeakPassword)
	}

	tokenHash := utils.SHA256Hex(rawToken)
	now := s.now()

	token, err := s.tokenRepo.FindTokenByHash(ctx, tokenHash, domain.TokenKindResetPassword)
	if err != nil {
		return NewAuthError(err, apiErrors.ErrStorage, "")
	}
	if token == nil {
		return NewAuthError(ErrInvalidToken, apiErrors.ErrTokenInvalid, MsgTokenInvalid)
	}

	if token.IsExpired(now) {
		if _, err := s.tokenRepo.ConsumeTokenByHash(ctx, tokenHash, domain.TokenKindResetPassword); err != nil {
			log.ForContext(ctx).WithError(err).Warn("Falha ao remover token expirado")
		}
		return NewAuthError(ErrExpiredToken, apiErrors.ErrTokenExpired, MsgTokenInvalid)
	}

	consumed, err := s.tokenRepo.ConsumeTokenByHash(ctx, tokenHash, domain.TokenKindResetPassword)
	if err != nil {
		return NewAuthError(err, apiErrors.ErrStorage, "")
	}
	// outra requisição consumiu o mesmo token
	if consumed == nil {
		return NewAuthError(ErrInvalidToken, apiErrors.ErrTokenInvalid, MsgTokenInvalid)
	}

	user, err := s.findTokenOwner(ctx, consumed)
	if err != nil {
		return NewAuthError(err, apiErrors.ErrStorage, "")
	}
	if user == nil {
		return nil
	}

	passHash, err := HashPassword(password)
	if err != nil {
		return NewAuthError(err, apiErrors.ErrInternalServer, "erro ao gerar hash da senha")
	}

	if _, err := s.userRepo.UpdateUserPassword(ctx, user.ID, passHash, now.UTC()); err != nil {
		return NewAuthError(err, apiErrors.ErrStorage, "")
	}

	log.ForContext(ctx).WithField("user_id", user.ID).Info("Senha redefinida")
	return nil
}

func (s *Service) findTokenOwner(ctx context.Context, token *domain.AuthToken) (*domain.User, error) {
	if token.UserID != nil {
		return s.userRepo.GetUserByID(ctx, *token.UserID)
	}
	if token.Email != "" {
		return s.userRepo.GetUserByEmail(ctx, NormalizeEmail(token.Email))
	}
	return nil, nil
}

// ResetLink monta o link da página de redefinição de senha
func ResetLink(baseURL, rawToken string) string {
	return strings.TrimRight(baseURL, "/") + "/reset-hasla.html?token=" + url.QueryEscape(rawToken)
}
