package response

import (
	"time"

	"parkhub/internal/usecase/commands"
	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ReservationID uuid.UUID `json:"reservationId"`
	LotID         uuid.UUID `json:"lotId"`
	SpotID        uuid.UUID `json:"spotId"`
	SpotNumber    int32     `json:"spotNumber"`
	StartedAt     time.Time `json:"startedAt"`
}

type ReleaseResponse struct {
	ReservationID   uuid.UUID `json:"reservationId"`
	EndedAt         time.Time `json:"endedAt"`
	CostCents       int64     `json:"costCents"`
	DurationMinutes int64     `json:"durationMinutes"`
	BilledHours     int64     `json:"billedHours"`
}

type ReservationResponse struct {
	ID         uuid.UUID  `json:"id"`
	SpotID     uuid.UUID  `json:"spotId"`
	SpotNumber int32      `json:"spotNumber"`
	LotID      uuid.UUID  `json:"lotId"`
	LotName    string     `json:"lotName"`
	StartedAt  time.Time  `json:"startedAt"`
	EndedAt    *time.Time `json:"endedAt,omitempty"`
	CostCents  *int64     `json:"costCents,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func FromBookingResult(r *commands.BookingResult) *BookingResponse {
	return &BookingResponse{
		ReservationID: r.ReservationID,
		LotID:         r.LotID,
		SpotID:        r.SpotID,
		SpotNumber:    r.SpotNumber,
		StartedAt:     r.StartedAt,
	}
}

func FromReleaseResult(r *commands.ReleaseResult) *ReleaseResponse {
	return &ReleaseResponse{
		ReservationID:   r.ReservationID,
		EndedAt:         r.EndedAt,
		CostCents:       r.CostCents,
		DurationMinutes: r.DurationMinutes,
		BilledHours:     r.BilledHours,
	}
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:         rm.ID,
		SpotID:     rm.SpotID,
		SpotNumber: rm.SpotNumber,
		LotID:      rm.LotID,
		LotName:    rm.LotName,
		StartedAt:  rm.StartedAt,
		EndedAt:    rm.EndedAt,
		CostCents:  rm.CostCents,
		Status:     rm.Status,
		CreatedAt:  rm.CreatedAt,
	}
}
