package reservation

import (
	"time"

	"github.com/google/uuid"
)

// Reservation records one user's occupancy of one spot for one continuous
// interval. After completion the spot reference is an identity pointer only;
// the spot may be reused by later reservations or deleted by a shrink.
type Reservation struct {
	id        uuid.UUID
	spotID    uuid.UUID
	userID    uuid.UUID
	startedAt time.Time
	endedAt   *time.Time
	costCents *int64
	status    Status
	createdAt time.Time
}

func NewReservation(spotID, userID uuid.UUID, startedAt time.Time) *Reservation {
	return &Reservation{
		id:        uuid.New(),
		spotID:    spotID,
		userID:    userID,
		startedAt: startedAt,
		status:    StatusActive,
	}
}

func ReconstructReservation(
	id, spotID, userID uuid.UUID,
	startedAt time.Time,
	endedAt *time.Time,
	costCents *int64,
	status Status,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		spotID:    spotID,
		userID:    userID,
		startedAt: startedAt,
		endedAt:   endedAt,
		costCents: costCents,
		status:    status,
		createdAt: createdAt,
	}
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) SpotID() uuid.UUID    { return r.spotID }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) StartedAt() time.Time { return r.startedAt }
func (r *Reservation) EndedAt() *time.Time  { return r.endedAt }
func (r *Reservation) CostCents() *int64    { return r.costCents }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

// Complete transitions active -> completed, stamps the end time and bills the
// elapsed interval at the owning lot's current hourly price. The transition is
// terminal and never reverses.
func (r *Reservation) Complete(endedAt time.Time, pricePerHourCents int64) error {
	if r.status != StatusActive {
		return ErrNotActive
	}
	if pricePerHourCents < 0 {
		return ErrNegativePrice
	}

	cost := Cost(endedAt.Sub(r.startedAt), pricePerHourCents)
	r.endedAt = &endedAt
	r.costCents = &cost
	r.status = StatusCompleted
	return nil
}

// DurationMinutes reports the billed interval length. Zero until completed.
func (r *Reservation) DurationMinutes() float64 {
	if r.endedAt == nil {
		return 0
	}
	return r.endedAt.Sub(r.startedAt).Minutes()
}
