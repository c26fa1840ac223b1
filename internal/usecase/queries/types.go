package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type LotView struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Address           string    `json:"address"`
	Pincode           string    `json:"pincode"`
	PricePerHourCents int64     `json:"price_per_hour_cents"`
	SpotCount         int32     `json:"spot_count"`
	CreatedAt         time.Time `json:"created_at"`
}

type SpotView struct {
	ID        uuid.UUID `json:"id"`
	LotID     uuid.UUID `json:"lot_id"`
	Number    int32     `json:"spot_number"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type ReservationView struct {
	ID         uuid.UUID  `json:"id"`
	SpotID     uuid.UUID  `json:"spot_id"`
	SpotNumber int32      `json:"spot_number"`
	LotID      uuid.UUID  `json:"lot_id"`
	LotName    string     `json:"lot_name"`
	UserID     uuid.UUID  `json:"user_id"`
	StartedAt  time.Time  `json:"started_at"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
	CostCents  *int64     `json:"cost_cents,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}

type UserProfileView struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"username"`
	Email       *string    `json:"email,omitempty"`
	Role        string     `json:"role"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

type ExportJobView struct {
	ID          uuid.UUID  `json:"id"`
	Status      string     `json:"status"`
	FilePath    *string    `json:"file_path,omitempty"`
	RequestedAt time.Time  `json:"requested_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
