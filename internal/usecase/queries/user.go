package queries

import (
	"context"

	"github.com/google/uuid"
)

// UserCredentialsView carries the password hash for login verification only;
// it never crosses the handler boundary.
type UserCredentialsView struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Role         string
}

type UserStore interface {
	FindCredentialsByUsername(ctx context.Context, username string) (*UserCredentialsView, error)
	FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindProfileByID(ctx context.Context, id uuid.UUID) (*UserProfileView, error)
	FindAllProfiles(ctx context.Context) ([]*UserProfileView, error)
}

type UserQueries interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*UserProfileView, error)
	// ListProfiles backs the admin user listing.
	ListProfiles(ctx context.Context) ([]*UserProfileView, error)
}

type userQueriesImpl struct {
	store UserStore
}

func NewUserQueries(store UserStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) GetProfile(ctx context.Context, id uuid.UUID) (*UserProfileView, error) {
	return q.store.FindProfileByID(ctx, id)
}

func (q *userQueriesImpl) ListProfiles(ctx context.Context) ([]*UserProfileView, error) {
	return q.store.FindAllProfiles(ctx)
}
