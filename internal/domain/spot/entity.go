package spot

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidNumber   = errors.New("spot number must be positive")
	ErrInvalidStatus   = errors.New("invalid spot status")
	ErrAlreadyOccupied = errors.New("spot is already occupied")
	ErrNotOccupied     = errors.New("spot is not occupied")
)

// Status is the single source of truth for occupancy. There is no derived
// occupancy flag anywhere else.
type Status string

const (
	StatusAvailable Status = "available"
	StatusOccupied  Status = "occupied"
)

func (s Status) String() string {
	return string(s)
}

func NewStatus(raw string) (Status, error) {
	s := Status(raw)
	switch s {
	case StatusAvailable, StatusOccupied:
		return s, nil
	default:
		return "", ErrInvalidStatus
	}
}

type Spot struct {
	id        uuid.UUID
	lotID     uuid.UUID
	number    int32
	status    Status
	createdAt time.Time
}

func NewSpot(lotID uuid.UUID, number int32) (*Spot, error) {
	if number <= 0 {
		return nil, ErrInvalidNumber
	}
	return &Spot{
		id:     uuid.New(),
		lotID:  lotID,
		number: number,
		status: StatusAvailable,
	}, nil
}

func ReconstructSpot(id, lotID uuid.UUID, number int32, status Status, createdAt time.Time) *Spot {
	return &Spot{
		id:        id,
		lotID:     lotID,
		number:    number,
		status:    status,
		createdAt: createdAt,
	}
}

func (s *Spot) ID() uuid.UUID        { return s.id }
func (s *Spot) LotID() uuid.UUID     { return s.lotID }
func (s *Spot) Number() int32        { return s.number }
func (s *Spot) Status() Status       { return s.status }
func (s *Spot) CreatedAt() time.Time { return s.createdAt }

func (s *Spot) IsAvailable() bool {
	return s.status == StatusAvailable
}

// Occupy claims the spot for a booking. The caller must hold the row lock.
func (s *Spot) Occupy() error {
	if s.status != StatusAvailable {
		return ErrAlreadyOccupied
	}
	s.status = StatusOccupied
	return nil
}

// Free returns the spot to the pool on release.
func (s *Spot) Free() error {
	if s.status != StatusOccupied {
		return ErrNotOccupied
	}
	s.status = StatusAvailable
	return nil
}
