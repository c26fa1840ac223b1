package request

import (
	"strings"

	"parkhub/internal/domain/user"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) GetUsername() string {
	return strings.TrimSpace(r.Username)
}

type RegisterRequest struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Email    *string `json:"email,omitempty"`
}

// ToDomain validates the raw fields into value objects. The password hash is
// produced by the command, not here.
func (r RegisterRequest) ToDomain() (user.Username, user.Password, *user.Email, error) {
	username, err := user.NewUsername(r.Username)
	if err != nil {
		return user.Username{}, user.Password{}, nil, err
	}

	password, err := user.NewPassword(r.Password)
	if err != nil {
		return user.Username{}, user.Password{}, nil, err
	}

	var email *user.Email
	if r.Email != nil && strings.TrimSpace(*r.Email) != "" {
		e, err := user.NewEmail(*r.Email)
		if err != nil {
			return user.Username{}, user.Password{}, nil, err
		}
		email = &e
	}

	return username, password, email, nil
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}
