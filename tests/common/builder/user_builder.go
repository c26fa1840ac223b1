//go:build unit || e2e

package builder

import (
	"time"

	"parkhub/internal/domain/user"
	reqdto "parkhub/internal/handler/dto/request"
	"parkhub/internal/pkg/password"
	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Username     string
	Password     string
	PasswordHash string
	Email        string
	Role         string
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

func NewUserBuilder() *UserBuilder {
	hash, _ := password.HashPassword("password123")
	return &UserBuilder{
		ID:           uuid.New(),
		Username:     "frank",
		Password:     "password123",
		PasswordHash: hash,
		Email:        "frank@example.com",
		Role:         "user",
		CreatedAt:    time.Now(),
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) BuildDomain() (*user.User, error) {
	username, err := user.NewUsername(b.Username)
	if err != nil {
		return nil, err
	}
	if _, err := user.NewPassword(b.Password); err != nil {
		return nil, err
	}
	role, err := user.NewRole(b.Role)
	if err != nil {
		return nil, err
	}

	var email *user.Email
	if b.Email != "" {
		e, err := user.NewEmail(b.Email)
		if err != nil {
			return nil, err
		}
		email = &e
	}

	return user.NewUser(username, b.PasswordHash, email, role), nil
}

func (b *UserBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	email := b.Email
	return reqdto.RegisterRequest{
		Username: b.Username,
		Password: b.Password,
		Email:    &email,
	}
}

func (b *UserBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Username: b.Username,
		Password: b.Password,
	}
}

func (b *UserBuilder) BuildCredentialsView() *queries.UserCredentialsView {
	return &queries.UserCredentialsView{
		ID:           b.ID,
		Username:     b.Username,
		PasswordHash: b.PasswordHash,
		Role:         b.Role,
	}
}

func (b *UserBuilder) BuildProfileView() *queries.UserProfileView {
	var email *string
	if b.Email != "" {
		e := b.Email
		email = &e
	}
	return &queries.UserProfileView{
		ID:          b.ID,
		Username:    b.Username,
		Email:       email,
		Role:        b.Role,
		CreatedAt:   b.CreatedAt,
		LastLoginAt: b.LastLoginAt,
	}
}

func (b *UserBuilder) BuildAuthorizedView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       b.ID,
		Username: b.Username,
		Role:     b.Role,
	}
}

func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.Username = username
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.Password = password
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) WithRole(role string) *UserBuilder {
	b.Role = role
	return b
}

func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.Role = "admin"
	return b
}
