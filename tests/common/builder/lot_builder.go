//go:build unit || e2e

package builder

import (
	"time"

	"parkhub/internal/domain/lot"
	reqdto "parkhub/internal/handler/dto/request"
	"parkhub/internal/usecase/queries"
	"parkhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type LotBuilder struct {
	ID                uuid.UUID
	Name              string
	Address           string
	Pincode           string
	PricePerHourCents int64
	SpotCount         int32
	HighestSpotNumber int32
	OccupiedSpots     int32
	CreatedAt         time.Time
}

func NewLotBuilder() *LotBuilder {
	return &LotBuilder{
		ID:                uuid.New(),
		Name:              "Central Garage",
		Address:           "1 Main Street",
		Pincode:           "560001",
		PricePerHourCents: 250,
		SpotCount:         10,
		HighestSpotNumber: 10,
		OccupiedSpots:     0,
		CreatedAt:         time.Now(),
	}
}

func (b *LotBuilder) With(mutate func(*LotBuilder)) *LotBuilder {
	mutate(b)
	return b
}

// Clone copies the builder so a test can branch a variant without mutating
// the shared base.
func (b *LotBuilder) Clone() *LotBuilder {
	var c LotBuilder
	_ = copier.Copy(&c, b)
	return &c
}

func (b *LotBuilder) BuildDomain() (*lot.Lot, error) {
	return lot.NewLot(b.Name, b.Address, b.Pincode, b.PricePerHourCents, b.SpotCount)
}

func (b *LotBuilder) BuildCreateRequestDTO() reqdto.CreateLotRequest {
	return reqdto.CreateLotRequest{
		Name:              b.Name,
		Address:           b.Address,
		Pincode:           b.Pincode,
		PricePerHourCents: b.PricePerHourCents,
		SpotCount:         b.SpotCount,
	}
}

func (b *LotBuilder) BuildUpdateRequestDTO() reqdto.UpdateLotRequest {
	name := b.Name
	address := b.Address
	pincode := b.Pincode
	price := b.PricePerHourCents
	return reqdto.UpdateLotRequest{
		Name:              &name,
		Address:           &address,
		Pincode:           &pincode,
		PricePerHourCents: &price,
	}
}

func (b *LotBuilder) BuildView() *queries.LotView {
	return &queries.LotView{
		ID:                b.ID,
		Name:              b.Name,
		Address:           b.Address,
		Pincode:           b.Pincode,
		PricePerHourCents: b.PricePerHourCents,
		SpotCount:         b.SpotCount,
		CreatedAt:         b.CreatedAt,
	}
}

func (b *LotBuilder) BuildSnapshot() *shared.LotSnapshot {
	return &shared.LotSnapshot{
		ID:                b.ID,
		Name:              b.Name,
		Address:           b.Address,
		Pincode:           b.Pincode,
		PricePerHourCents: b.PricePerHourCents,
		SpotCount:         b.SpotCount,
		HighestSpotNumber: b.HighestSpotNumber,
		CreatedAt:         b.CreatedAt,
	}
}

func (b *LotBuilder) BuildAvailability() *shared.LotAvailability {
	return &shared.LotAvailability{
		LotID:             b.ID,
		Name:              b.Name,
		Address:           b.Address,
		Pincode:           b.Pincode,
		PricePerHourCents: b.PricePerHourCents,
		TotalSpots:        b.SpotCount,
		OccupiedSpots:     b.OccupiedSpots,
		AvailableSpots:    b.SpotCount - b.OccupiedSpots,
	}
}

func (b *LotBuilder) WithName(name string) *LotBuilder {
	b.Name = name
	return b
}

func (b *LotBuilder) WithPrice(cents int64) *LotBuilder {
	b.PricePerHourCents = cents
	return b
}

// WithSpotCount also aligns the historical maximum, matching a lot that has
// never been shrunk. Use WithHighestSpotNumber for post-shrink states.
func (b *LotBuilder) WithSpotCount(count int32) *LotBuilder {
	b.SpotCount = count
	b.HighestSpotNumber = count
	return b
}

func (b *LotBuilder) WithHighestSpotNumber(number int32) *LotBuilder {
	b.HighestSpotNumber = number
	return b
}

func (b *LotBuilder) WithOccupiedSpots(count int32) *LotBuilder {
	b.OccupiedSpots = count
	return b
}
