package readstore

import (
	"context"

	"parkhub/internal/infra"
	"parkhub/internal/infra/db"
	"parkhub/internal/pkg/pgconv"
	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

// FindAuthorizedByID backs token validation on every authenticated request.
func (r *UserReadStore) FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const q = `
		SELECT id, username, role
		FROM users
		WHERE id = $1`

	var v queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, q, id).Scan(&v.ID, &v.Username, &v.Role)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find authorized user", err)
	}
	return &v, nil
}

func (r *UserReadStore) FindProfileByID(ctx context.Context, id uuid.UUID) (*queries.UserProfileView, error) {
	const q = `
		SELECT id, username, email, role, created_at, last_login_at
		FROM users
		WHERE id = $1`

	v, err := scanUserProfile(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user profile", err)
	}
	return v, nil
}

func (r *UserReadStore) FindAllProfiles(ctx context.Context) ([]*queries.UserProfileView, error) {
	const q = `
		SELECT id, username, email, role, created_at, last_login_at
		FROM users
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	result := make([]*queries.UserProfileView, 0)
	for rows.Next() {
		v, err := scanUserProfile(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user rows", err)
	}
	return result, nil
}

// FindCredentialsByUsername serves login. It is the only read that exposes
// the password hash, and the hash never leaves the command layer.
func (r *UserReadStore) FindCredentialsByUsername(ctx context.Context, username string) (*queries.UserCredentialsView, error) {
	const q = `
		SELECT id, username, password_hash, role
		FROM users
		WHERE username = $1`

	var c queries.UserCredentialsView
	err := r.db.QueryRow(ctx, q, username).Scan(&c.ID, &c.Username, &c.PasswordHash, &c.Role)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user credentials", err)
	}
	return &c, nil
}

func scanUserProfile(row rowScanner) (*queries.UserProfileView, error) {
	var v queries.UserProfileView
	err := row.Scan(&v.ID, &v.Username, &v.Email, &v.Role, &v.CreatedAt, &v.LastLoginAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
