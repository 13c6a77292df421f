package authenticating

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mko-api/infrastructure/mailer"
	mailermocks "github.com/vfg2006/mko-api/infrastructure/mailer/mocks"
	"github.com/vfg2006/mko-api/infrastructure/repository/mocks"
	"github.com/vfg2006/mko-api/internal/config"
	"github.com/vfg2006/mko-api/internal/domain"
	"github.com/vfg2006/mko-api/pkg/apiErrors"
	"github.com/vfg2006/mko-api/pkg/log"
	"github.com/vfg2006/mko-api/pkg/utils"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type resetMocks struct {
	users  *mocks.MockUserRepository
	tokens *mocks.MockAuthTokenRepository
	mailer *mailermocks.MockMailer
}

func newTestService(t *testing.T) (*Service, resetMocks) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	m := resetMocks{
		users:  mocks.NewMockUserRepository(ctrl),
		tokens: mocks.NewMockAuthTokenRepository(ctrl),
		mailer: mailermocks.NewMockMailer(ctrl),
	}

	cfg := &config.Config{Reset: config.Reset{TTLMinutes: 30, FrontendURL: "https://mko.pl/"}}
	svc := NewService(m.users, m.tokens, m.mailer, cfg).(*Service)
	svc.now = func() time.Time { return fixedNow }

	return svc, m
}

func authErrorCode(t *testing.T, err error) string {
	t.Helper()
	var authErr *AuthError
	require.True(t, errors.As(err, &authErr), "esperava AuthError, recebeu %v", err)
	return authErr.Code
}

func TestRequestResetValidacao(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		expected string
	}{
		{"vazio", "   ", apiErrors.ErrEmailRequired},
		{"sem domínio", "jan@", apiErrors.ErrEmailInvalid},
		{"tld curto", "jan@example.p", apiErrors.ErrEmailInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t)

			_, err := svc.RequestReset(context.Background(), &domain.ResetRequest{Email: tt.email})
			assert.Equal(t, tt.expected, authErrorCode(t, err))
		})
	}
}

func expectTokenRotation(m resetMocks, email string) *domain.AuthToken {
	saved := &domain.AuthToken{}
	m.tokens.EXPECT().DeleteExpiredTokens(gomock.Any(), fixedNow).Return(0, nil)
	m.tokens.EXPECT().DeleteTokensByEmail(gomock.Any(), email, domain.TokenKindResetPassword).Return(1, nil)
	m.users.EXPECT().GetUserByEmail(gomock.Any(), email).Return(nil, nil)
	m.tokens.EXPECT().CreateToken(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, token *domain.AuthToken) error {
		*saved = *token
		return nil
	})
	return saved
}

func TestRequestResetEnviaEmail(t *testing.T) {
	svc, m := newTestService(t)
	saved := expectTokenRotation(m, "jan@example.pl")

	m.mailer.EXPECT().Configured().Return(true)

	var sent mailer.Message
	m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg mailer.Message) error {
		sent = msg
		return nil
	})

	result, err := svc.RequestReset(context.Background(), &domain.ResetRequest{Email: "  Jan@Example.PL "})

	require.NoError(t, err)
	assert.True(t, result.Sent)
	assert.Len(t, result.RawToken, 64)
	assert.Equal(t, "https://mko.pl/reset-hasla.html?token="+result.RawToken, result.ResetLink)

	assert.Equal(t, utils.SHA256Hex(result.RawToken), saved.TokenHash)
	assert.NotEqual(t, result.RawToken, saved.TokenHash)
	assert.Equal(t, "jan@example.pl", saved.Email)
	assert.Equal(t, domain.TokenKindResetPassword, saved.Kind)
	assert.True(t, saved.ExpiresAt.Equal(fixedNow.Add(30*time.Minute)))
	assert.Nil(t, saved.UserID)

	assert.Equal(t, "jan@example.pl", sent.To)
	assert.True(t, strings.Contains(sent.Text, result.ResetLink))
	assert.True(t, strings.Contains(sent.Text, "Link wygaśnie za 30 min."))
}

func TestRequestResetSemSMTP(t *testing.T) {
	svc, m := newTestService(t)
	expectTokenRotation(m, "jan@example.pl")

	m.mailer.EXPECT().Configured().Return(false)

	result, err := svc.RequestReset(context.Background(), &domain.ResetRequest{Email: "jan@example.pl"})

	require.NoError(t, err)
	assert.False(t, result.MailConfigured)
	assert.False(t, result.Sent)
	assert.NotEmpty(t, result.RawToken)
}

func TestRequestResetFalhaNoEnvioContinuaNeutro(t *testing.T) {
	svc, m := newTestService(t)
	expectTokenRotation(m, "jan@example.pl")

	m.mailer.EXPECT().Configured().Return(true)
	m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("535 auth failed"))

	result, err := svc.RequestReset(context.Background(), &domain.ResetRequest{Email: "jan@example.pl"})

	require.NoError(t, err)
	assert.True(t, result.MailConfigured)
	assert.False(t, result.Sent)
}

func TestRequestResetVinculaUsuarioExistente(t *testing.T) {
	svc, m := newTestService(t)

	m.tokens.EXPECT().DeleteExpiredTokens(gomock.Any(), gomock.Any()).Return(0, nil)
	m.tokens.EXPECT().DeleteTokensByEmail(gomock.Any(), "jan@example.pl", domain.TokenKindResetPassword).Return(0, nil)
	m.users.EXPECT().GetUserByEmail(gomock.Any(), "jan@example.pl").Return(&domain.User{ID: "usr_1"}, nil)

	var saved *domain.AuthToken
	m.tokens.EXPECT().CreateToken(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, token *domain.AuthToken) error {
		saved = token
		return nil
	})
	m.mailer.EXPECT().Configured().Return(false)

	_, err := svc.RequestReset(context.Background(), &domain.ResetRequest{Email: "jan@example.pl"})

	require.NoError(t, err)
	require.NotNil(t, saved.UserID)
	assert.Equal(t, "usr_1", *saved.UserID)
}

func TestRequestResetErroAoSalvarToken(t *testing.T) {
	svc, m := newTestService(t)

	m.tokens.EXPECT().DeleteExpiredTokens(gomock.Any(), gomock.Any()).Return(0, nil)
	m.tokens.EXPECT().DeleteTokensByEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, errors.New("disco cheio"))

	_, err := svc.RequestReset(context.Background(), &domain.ResetRequest{Email: "jan@example.pl"})
	assert.Equal(t, apiErrors.ErrStorage, authErrorCode(t, err))
}

func TestConfirmResetValidacao(t *testing.T) {
	tests := []struct {
		name     string
		req      domain.ResetConfirmRequest
		expected string
	}{
		{"sem token", domain.ResetConfirmRequest{Token: "  ", NewPassword: "haslo123"}, apiErrors.ErrTokenRequired},
		{"senha fraca", domain.ResetConfirmRequest{Token: "abc", NewPassword: "haslo"}, apiErrors.ErrWeakPassword},
		{"sem dígito", domain.ResetConfirmRequest{Token: "abc", Password: "haslohaslo"}, apiErrors.ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t)

			err := svc.ConfirmReset(context.Background(), &tt.req)
			assert.Equal(t, tt.expected, authErrorCode(t, err))
		})
	}
}

func TestConfirmResetTokenInexistente(t *testing.T) {
	svc, m := newTestService(t)

	m.tokens.EXPECT().FindTokenByHash(gomock.Any(), utils.SHA256Hex("abc"), domain.TokenKindResetPassword).Return(nil, nil)

	err := svc.ConfirmReset(context.Background(), &domain.ResetConfirmRequest{Token: "abc", NewPassword: "haslo123"})

	assert.Equal(t, apiErrors.ErrTokenInvalid, authErrorCode(t, err))
	assert.True(t, IsTokenError(err))
}

func TestConfirmResetTokenExpiradoEhRemovido(t *testing.T) {
	svc, m := newTestService(t)
	hash := utils.SHA256Hex("abc")

	m.tokens.EXPECT().FindTokenByHash(gomock.Any(), hash, domain.TokenKindResetPassword).
		Return(&domain.AuthToken{TokenHash: hash, ExpiresAt: fixedNow.Add(-time.Second)}, nil)
	m.tokens.EXPECT().ConsumeTokenByHash(gomock.Any(), hash, domain.TokenKindResetPassword).Return(nil, nil)

	err := svc.ConfirmReset(context.Background(), &domain.ResetConfirmRequest{Token: "abc", NewPassword: "haslo123"})

	assert.Equal(t, apiErrors.ErrTokenExpired, authErrorCode(t, err))
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestConfirmResetTrocaSenha(t *testing.T) {
	svc, m := newTestService(t)
	hash := utils.SHA256Hex("abc")
	userID := "usr_1"
	token := &domain.AuthToken{TokenHash: hash, UserID: &userID, Email: "jan@example.pl", ExpiresAt: fixedNow.Add(time.Minute)}

	m.tokens.EXPECT().FindTokenByHash(gomock.Any(), hash, domain.TokenKindResetPassword).Return(token, nil)
	m.tokens.EXPECT().ConsumeTokenByHash(gomock.Any(), hash, domain.TokenKindResetPassword).Return(token, nil)
	m.users.EXPECT().GetUserByID(gomock.Any(), "usr_1").Return(&domain.User{ID: "usr_1"}, nil)

	var passHash string
	m.users.EXPECT().UpdateUserPassword(gomock.Any(), "usr_1", gomock.Any(), fixedNow).
		DoAndReturn(func(_ context.Context, _ string, hash string, _ time.Time) (bool, error) {
			passHash = hash
			return true, nil
		})

	err := svc.ConfirmReset(context.Background(), &domain.ResetConfirmRequest{Token: " abc ", Password: "haslo123"})

	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passHash), []byte("haslo123")))
}

func TestConfirmResetSemContaEhNeutro(t *testing.T) {
	svc, m := newTestService(t)
	hash := utils.SHA256Hex("abc")
	token := &domain.AuthToken{TokenHash: hash, Email: "Ghost@Example.pl", ExpiresAt: fixedNow.Add(time.Minute)}

	m.tokens.EXPECT().FindTokenByHash(gomock.Any(), hash, gomock.Any()).Return(token, nil)
	m.tokens.EXPECT().ConsumeTokenByHash(gomock.Any(), hash, gomock.Any()).Return(token, nil)
	m.users.EXPECT().GetUserByEmail(gomock.Any(), "ghost@example.pl").Return(nil, nil)

	err := svc.ConfirmReset(context.Background(), &domain.ResetConfirmRequest{Token: "abc", NewPassword: "haslo123"})
	assert.NoError(t, err)
}

func TestConfirmResetTokenConsumidoConcorrentemente(t *testing.T) {
	svc, m := newTestService(t)
	hash := utils.SHA256Hex("abc")
	token := &domain.AuthToken{TokenHash: hash, Email: "jan@example.pl", ExpiresAt: fixedNow.Add(time.Minute)}

	m.tokens.EXPECT().FindTokenByHash(gomock.Any(), hash, gomock.Any()).Return(token, nil)
	m.tokens.EXPECT().ConsumeTokenByHash(gomock.Any(), hash, gomock.Any()).Return(nil, nil)

	err := svc.ConfirmReset(context.Background(), &domain.ResetConfirmRequest{Token: "abc", NewPassword: "haslo123"})
	assert.Equal(t, apiErrors.ErrTokenInvalid, authErrorCode(t, err))
}
