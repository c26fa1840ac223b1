package response

import (
	"time"

	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	UserID      uuid.UUID `json:"user_id"`
	Role        string    `json:"role"`
}

type RegisterResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

type UserProfileResponse struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"username"`
	Email       *string    `json:"email,omitempty"`
	Role        string     `json:"role"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

func FromUserProfileView(rm *queries.UserProfileView) *UserProfileResponse {
	return &UserProfileResponse{
		ID:          rm.ID,
		Username:    rm.Username,
		Email:       rm.Email,
		Role:        rm.Role,
		CreatedAt:   rm.CreatedAt,
		LastLoginAt: rm.LastLoginAt,
	}
}
