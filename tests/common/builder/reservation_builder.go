//go:build unit || e2e

package builder

import (
	"time"

	"parkhub/internal/domain/reservation"
	"parkhub/internal/domain/spot"
	"parkhub/internal/usecase/commands"
	"parkhub/internal/usecase/queries"
	"parkhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID         uuid.UUID
	SpotID     uuid.UUID
	SpotNumber int32
	LotID      uuid.UUID
	LotName    string
	UserID     uuid.UUID
	StartedAt  time.Time
	EndedAt    *time.Time
	CostCents  *int64
	Status     string
	CreatedAt  time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	return &ReservationBuilder{
		ID:         uuid.New(),
		SpotID:     uuid.New(),
		SpotNumber: 1,
		LotID:      uuid.New(),
		LotName:    "Central Garage",
		UserID:     uuid.New(),
		StartedAt:  now.Add(-2 * time.Hour),
		Status:     "active",
		CreatedAt:  now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	status, err := reservation.NewStatus(b.Status)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		b.ID, b.SpotID, b.UserID,
		b.StartedAt, b.EndedAt, b.CostCents,
		status, b.CreatedAt,
	), nil
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:         b.ID,
		SpotID:     b.SpotID,
		SpotNumber: b.SpotNumber,
		LotID:      b.LotID,
		LotName:    b.LotName,
		UserID:     b.UserID,
		StartedAt:  b.StartedAt,
		EndedAt:    b.EndedAt,
		CostCents:  b.CostCents,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildSpotSnapshot() *shared.SpotSnapshot {
	return &shared.SpotSnapshot{
		ID:     b.SpotID,
		LotID:  b.LotID,
		Number: b.SpotNumber,
		Status: spot.StatusAvailable,
	}
}

func (b *ReservationBuilder) BuildBookingResult() *commands.BookingResult {
	return &commands.BookingResult{
		ReservationID: b.ID,
		LotID:         b.LotID,
		SpotID:        b.SpotID,
		SpotNumber:    b.SpotNumber,
		StartedAt:     b.StartedAt,
	}
}

func (b *ReservationBuilder) WithUserID(userID uuid.UUID) *ReservationBuilder {
	b.UserID = userID
	return b
}

func (b *ReservationBuilder) WithLotID(lotID uuid.UUID) *ReservationBuilder {
	b.LotID = lotID
	return b
}

func (b *ReservationBuilder) WithSpotNumber(number int32) *ReservationBuilder {
	b.SpotNumber = number
	return b
}

func (b *ReservationBuilder) WithStartedAt(startedAt time.Time) *ReservationBuilder {
	b.StartedAt = startedAt
	return b
}

func (b *ReservationBuilder) AsCompleted(endedAt time.Time, costCents int64) *ReservationBuilder {
	b.EndedAt = &endedAt
	b.CostCents = &costCents
	b.Status = "completed"
	return b
}
