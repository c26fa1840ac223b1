package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	username     Username
	passwordHash string
	email        *Email
	role         Role
	createdAt    time.Time
}

func NewUser(username Username, passwordHash string, email *Email, role Role) *User {
	return &User{
		id:           uuid.New(),
		username:     username,
		passwordHash: passwordHash,
		email:        email,
		role:         role,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Username() Username   { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }

func (u *User) Email() *Email {
	return u.email
}

func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}
