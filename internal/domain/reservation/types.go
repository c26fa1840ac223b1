package reservation

import "errors"

var (
	ErrNotActive     = errors.New("reservation is not active")
	ErrInvalidStatus = errors.New("invalid reservation status")
	ErrNegativePrice = errors.New("price per hour cannot be negative")
)

// Status transitions exactly once: active -> completed. There is no
// cancellation or no-show state.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func NewStatus(raw string) (Status, error) {
	s := Status(raw)
	switch s {
	case StatusActive, StatusCompleted:
		return s, nil
	default:
		return "", ErrInvalidStatus
	}
}
