package repository

import (
	"context"
	"strings"
	"time"

	"github.com/vfg2006/mko-api/infrastructure/database/jsondb"
	"github.com/vfg2006/mko-api/internal/domain"
)

type jsonUserRepository struct {
	store *jsondb.Store
}

func NewJSONUserRepository(store *jsondb.Store) UserRepository {
	return &jsonUserRepository{store: store}
}

func (r *jsonUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	err := r.store.Update(func(doc *jsondb.Document) error {
		doc.Users = append([]*domain.User{user}, doc.Users...)
		return nil
	})
	return storageErr(err, "erro ao criar usuário")
}

func (r *jsonUserRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	var user *domain.User
	err := r.store.View(func(doc *jsondb.Document) error {
		for _, u := range doc.Users {
			if u.ID == id {
				user = u
				break
			}
		}
		return nil
	})
	return user, storageErr(err, "erro ao buscar usuário")
}

func (r *jsonUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user *domain.User
	err := r.store.View(func(doc *jsondb.Document) error {
		for _, u := range doc.Users {
			if strings.EqualFold(u.Email, email) {
				user = u
				break
			}
		}
		return nil
	})
	return user, storageErr(err, "erro ao buscar usuário por e-mail")
}

func (r *jsonUserRepository) ListUsers(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User
	err := r.store.View(func(doc *jsondb.Document) error {
		users = doc.Users
		return nil
	})
	return users, storageErr(err, "erro ao listar usuários")
}

func (r *jsonUserRepository) UpdateUserPassword(ctx context.Context, id, passHash string, at time.Time) (bool, error) {
	found := false
	err := r.store.Update(func(doc *jsondb.Document) error {
		for _, u := range doc.Users {
			if u.ID == id {
				u.PassHash = passHash
				u.UpdatedAt = &at
				found = true
				return nil
			}
		}
		return jsondb.ErrNoChange
	})
	if err != nil {
		return false, storageErr(err, "erro ao atualizar senha")
	}

	return found, nil
}

type jsonAuthTokenRepository struct {
	store *jsondb.Store
}

func NewJSONAuthTokenRepository(store *jsondb.Store) AuthTokenRepository {
	return &jsonAuthTokenRepository{store: store}
}

func (r *jsonAuthTokenRepository) CreateToken(ctx context.Context, token *domain.AuthToken) error {
	err := r.store.Update(func(doc *jsondb.Document) error {
		doc.AuthTokens = append([]*domain.AuthToken{token}, doc.AuthTokens...)
		return nil
	})
	return storageErr(err, "erro ao criar token")
}

func (r *jsonAuthTokenRepository) FindTokenByHash(ctx context.Context, tokenHash, kind string) (*domain.AuthToken, error) {
	var token *domain.AuthToken
	err := r.store.View(func(doc *jsondb.Document) error {
		for _, t := range doc.AuthTokens {
			if t.TokenHash == tokenHash && t.Kind == kind {
				token = t
				break
			}
		}
		return nil
	})
	return token, storageErr(err, "erro ao buscar token")
}

// ConsumeTokenByHash remove e devolve o token, garantindo uso único
func (r *jsonAuthTokenRepository) ConsumeTokenByHash(ctx context.Context, tokenHash, kind string) (*domain.AuthToken, error) {
	var consumed *domain.AuthToken
	err := r.store.Update(func(doc *jsondb.Document) error {
		for i, t := range doc.AuthTokens {
			if t.TokenHash == tokenHash && t.Kind == kind {
				consumed = t
				doc.AuthTokens = append(doc.AuthTokens[:i], doc.AuthTokens[i+1:]...)
				return nil
			}
		}
		return jsondb.ErrNoChange
	})
	if err != nil {
		return nil, storageErr(err, "erro ao consumir token")
	}

	return consumed, nil
}

func (r *jsonAuthTokenRepository) DeleteTokensByEmail(ctx context.Context, email, kind string) (int, error) {
	return r.deleteWhere(func(t *domain.AuthToken) bool {
		return t.Kind == kind && strings.EqualFold(t.Email, email)
	})
}

func (r *jsonAuthTokenRepository) DeleteExpiredTokens(ctx context.Context, now time.Time) (int, error) {
	return r.deleteWhere(func(t *domain.AuthToken) bool {
		return !t.ExpiresAt.IsZero() && t.IsExpired(now)
	})
}

func (r *jsonAuthTokenRepository) deleteWhere(match func(t *domain.AuthToken) bool) (int, error) {
	removed := 0
	err := r.store.Update(func(doc *jsondb.Document) error {
		kept := doc.AuthTokens[:0]
		for _, t := range doc.AuthTokens {
			if match(t) {
				removed++
				continue
			}
			kept = append(kept, t)
		}
		if removed == 0 {
			return jsondb.ErrNoChange
		}
		doc.AuthTokens = kept
		return nil
	})
	if err != nil {
		return 0, storageErr(err, "erro ao remover tokens")
	}

	return removed, nil
}
