package repository

import (
	"context"

	"parkhub/internal/domain/user"
	"parkhub/internal/infra"
	"parkhub/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	const q = `
		INSERT INTO users (id, username, password_hash, email, role, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id`

	var email *string
	if e := u.Email(); e != nil {
		v := e.Value()
		email = &v
	}

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q,
		u.ID(), u.Username().Value(), u.PasswordHash(), email, u.Role().String()).
		Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	const q = `UPDATE users SET last_login_at = now() WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
