package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/mko-api/infrastructure/database/postgres"
	"github.com/vfg2006/mko-api/internal/domain"
)

const (
	usersTable      = "users"
	authTokensTable = "auth_tokens"
)

var userColumns = []string{"id", "email", "name", "pass_hash", "role", "created_at", "updated_at"}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) error {
	query, args, err := psql.Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, strings.ToLower(user.Email), user.Name, user.PassHash, user.Role, user.CreatedAt, user.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return storageErr(err, "erro ao criar usuário")
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"id": id})
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"email": strings.ToLower(strings.TrimSpace(email))})
}

func (r *userRepository) getUser(ctx context.Context, where squirrel.Eq) (*domain.User, error) {
	query, args, err := psql.Select(userColumns...).From(usersTable).Where(where).ToSql()
	if err != nil {
		return nil, err
	}

	user, err := scanUser(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr(err, "erro ao buscar usuário")
	}

	return user, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]*domain.User, error) {
	query, args, err := psql.Select(userColumns...).From(usersTable).OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr(err, "erro ao listar usuários")
	}
	defer rows.Close()

	users := []*domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, storageErr(err, "erro ao ler usuário")
		}
		users = append(users, user)
	}

	return users, storageErr(rows.Err(), "erro durante iteração de usuários")
}

func (r *userRepository) UpdateUserPassword(ctx context.Context, id, passHash string, at time.Time) (bool, error) {
	query, args, err := psql.Update(usersTable).
		Set("pass_hash", passHash).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, storageErr(err, "erro ao atualizar senha")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, storageErr(err, "erro ao contar usuários atualizados")
	}

	return affected > 0, nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	user := &domain.User{}
	if err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PassHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return user, nil
}

type authTokenRepository struct {
	conn *postgres.Connection
}

func NewAuthTokenRepository(conn *postgres.Connection) AuthTokenRepository {
	return &authTokenRepository{conn: conn}
}

var authTokenColumns = []string{"token_hash", "email", "user_id", "kind", "expires_at", "created_at"}

func (r *authTokenRepository) CreateToken(ctx context.Context, token *domain.AuthToken) error {
	query, args, err := psql.Insert(authTokensTable).
		Columns(authTokenColumns...).
		Values(token.TokenHash, strings.ToLower(token.Email), token.UserID, token.Kind, token.ExpiresAt, token.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return storageErr(err, "erro ao criar token")
}

func (r *authTokenRepository) FindTokenByHash(ctx context.Context, tokenHash, kind string) (*domain.AuthToken, error) {
	query, args, err := psql.Select(authTokenColumns...).
		From(authTokensTable).
		Where(squirrel.Eq{"token_hash": tokenHash, "kind": kind}).
		ToSql()
	if err != nil {
		return nil, err
	}

	token, err := scanAuthToken(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr(err, "erro ao buscar token")
	}

	return token, nil
}

// ConsumeTokenByHash usa DELETE ... RETURNING para que só uma chamada consiga o token
func (r *authTokenRepository) ConsumeTokenByHash(ctx context.Context, tokenHash, kind string) (*domain.AuthToken, error) {
	query, args, err := psql.Delete(authTokensTable).
		Where(squirrel.Eq{"token_hash": tokenHash, "kind": kind}).
		Suffix("RETURNING " + strings.Join(authTokenColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}

	token, err := scanAuthToken(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr(err, "erro ao consumir token")
	}

	return token, nil
}

func (r *authTokenRepository) DeleteTokensByEmail(ctx context.Context, email, kind string) (int, error) {
	return r.deleteWhere(ctx, squirrel.Eq{"email": strings.ToLower(email), "kind": kind})
}

func (r *authTokenRepository) DeleteExpiredTokens(ctx context.Context, now time.Time) (int, error) {
	return r.deleteWhere(ctx, squirrel.LtOrEq{"expires_at": now})
}

func (r *authTokenRepository) deleteWhere(ctx context.Context, where squirrel.Sqlizer) (int, error) {
	query, args, err := psql.Delete(authTokensTable).Where(where).ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, storageErr(err, "erro ao remover tokens")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, storageErr(err, "erro ao contar tokens removidos")
	}

	return int(affected), nil
}

func scanAuthToken(row rowScanner) (*domain.AuthToken, error) {
	token := &domain.AuthToken{}
	if err := row.Scan(
		&token.TokenHash,
		&token.Email,
		&token.UserID,
		&token.Kind,
		&token.ExpiresAt,
		&token.CreatedAt,
	); err != nil {
		return nil, err
	}
	return token, nil
}
