package request

import (
	"parkhub/internal/domain/lot"
)

type CreateLotRequest struct {
	Name              string `json:"name" binding:"required"`
	Address           string `json:"address"`
	Pincode           string `json:"pincode"`
	PricePerHourCents int64  `json:"price_per_hour_cents"`
	SpotCount         int32  `json:"spot_count"`
}

func (r CreateLotRequest) ToDomain() (*lot.Lot, error) {
	return lot.NewLot(r.Name, r.Address, r.Pincode, r.PricePerHourCents, r.SpotCount)
}

// UpdateLotRequest patches the lot profile. Capacity changes go through the
// resize endpoint so they carry its occupancy checks.
type UpdateLotRequest struct {
	Name              *string `json:"name,omitempty"`
	Address           *string `json:"address,omitempty"`
	Pincode           *string `json:"pincode,omitempty"`
	PricePerHourCents *int64  `json:"price_per_hour_cents,omitempty"`
}

type ResizeLotRequest struct {
	SpotCount *int32 `json:"spot_count" binding:"required"`
}
