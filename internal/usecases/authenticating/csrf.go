package authenticating

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/mko-api/pkg/utils"
)

// Motivos de rejeição devolvidos em {error:"CSRF", reason}
const (
	CSRFReasonBadFormat  = "BAD_FORMAT"
	CSRFReasonBadSig     = "BAD_SIG"
	CSRFReasonBadPayload = "BAD_PAYLOAD"
	CSRFReasonExpired    = "EXPIRED"
)

const csrfNonceBytes = 16

type CSRFIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewCSRFIssuer(secret string, ttl time.Duration) *CSRFIssuer {
	return &CSRFIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue gera um token curto assinado com HS256
func (c *CSRFIssuer) Issue() (string, error) {
	nonce, err := utils.RandomToken(csrfNonceBytes)
	if err != nil {
		return "", err
	}

	now := c.now()
	claims := jwt.RegisteredClaims{
		ID:        nonce,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify devolve "" quando o token é válido, senão o motivo da rejeição
func (c *CSRFIssuer) Verify(token string) string {
	_, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)

	switch {
	case err == nil:
		return ""
	case errors.Is(err, jwt.ErrTokenMalformed):
		return CSRFReasonBadFormat
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return CSRFReasonBadSig
	case errors.Is(err, jwt.ErrTokenExpired):
		return CSRFReasonExpired
	default:
		return CSRFReasonBadPayload
	}
}
