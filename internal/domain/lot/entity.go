package lot

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName         = errors.New("lot name must not be empty")
	ErrNegativePrice     = errors.New("price per hour cannot be negative")
	ErrNegativeSpotCount = errors.New("spot count cannot be negative")
)

// Lot is a physical facility owning a contiguous pool of numbered spots.
// The declared spot count always equals the number of live spot rows; the
// capacity commands keep the two in step inside one transaction.
type Lot struct {
	id                uuid.UUID
	name              string
	address           string
	pincode           string
	pricePerHourCents int64
	spotCount         int32
	createdAt         time.Time
}

func NewLot(name, address, pincode string, pricePerHourCents int64, spotCount int32) (*Lot, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if pricePerHourCents < 0 {
		return nil, ErrNegativePrice
	}
	if spotCount < 0 {
		return nil, ErrNegativeSpotCount
	}

	return &Lot{
		id:                uuid.New(),
		name:              name,
		address:           strings.TrimSpace(address),
		pincode:           strings.TrimSpace(pincode),
		pricePerHourCents: pricePerHourCents,
		spotCount:         spotCount,
	}, nil
}

func ReconstructLot(id uuid.UUID, name, address, pincode string, pricePerHourCents int64, spotCount int32, createdAt time.Time) *Lot {
	return &Lot{
		id:                id,
		name:              name,
		address:           address,
		pincode:           pincode,
		pricePerHourCents: pricePerHourCents,
		spotCount:         spotCount,
		createdAt:         createdAt,
	}
}

func (l *Lot) ID() uuid.UUID            { return l.id }
func (l *Lot) Name() string             { return l.name }
func (l *Lot) Address() string          { return l.address }
func (l *Lot) Pincode() string          { return l.pincode }
func (l *Lot) PricePerHourCents() int64 { return l.pricePerHourCents }
func (l *Lot) SpotCount() int32         { return l.spotCount }
func (l *Lot) CreatedAt() time.Time     { return l.createdAt }
