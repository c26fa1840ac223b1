package response

import (
	"time"

	"parkhub/internal/usecase/queries"
	"parkhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type LotResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Address           string    `json:"address"`
	Pincode           string    `json:"pincode"`
	PricePerHourCents int64     `json:"pricePerHourCents"`
	SpotCount         int32     `json:"spotCount"`
	CreatedAt         time.Time `json:"createdAt"`
}

type SpotResponse struct {
	ID        uuid.UUID `json:"id"`
	LotID     uuid.UUID `json:"lotId"`
	Number    int32     `json:"spotNumber"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type AvailabilityResponse struct {
	LotID             uuid.UUID `json:"lotId"`
	Name              string    `json:"name"`
	Address           string    `json:"address"`
	Pincode           string    `json:"pincode"`
	PricePerHourCents int64     `json:"pricePerHourCents"`
	TotalSpots        int32     `json:"totalSpots"`
	OccupiedSpots     int32     `json:"occupiedSpots"`
	AvailableSpots    int32     `json:"availableSpots"`
}

type DashboardStatsResponse struct {
	TotalLots          int64   `json:"totalLots"`
	TotalSpots         int64   `json:"totalSpots"`
	OccupiedSpots      int64   `json:"occupiedSpots"`
	AvailableSpots     int64   `json:"availableSpots"`
	OccupancyRate      float64 `json:"occupancyRate"`
	ActiveReservations int64   `json:"activeReservations"`
	TotalUsers         int64   `json:"totalUsers"`
	TodayRevenueCents  int64   `json:"todayRevenueCents"`
	MonthRevenueCents  int64   `json:"monthRevenueCents"`
}

func FromLotView(rm *queries.LotView) *LotResponse {
	return &LotResponse{
		ID:                rm.ID,
		Name:              rm.Name,
		Address:           rm.Address,
		Pincode:           rm.Pincode,
		PricePerHourCents: rm.PricePerHourCents,
		SpotCount:         rm.SpotCount,
		CreatedAt:         rm.CreatedAt,
	}
}

func FromSpotView(rm *queries.SpotView) *SpotResponse {
	return &SpotResponse{
		ID:        rm.ID,
		LotID:     rm.LotID,
		Number:    rm.Number,
		Status:    rm.Status,
		CreatedAt: rm.CreatedAt,
	}
}

func FromLotAvailability(av *shared.LotAvailability) *AvailabilityResponse {
	return &AvailabilityResponse{
		LotID:             av.LotID,
		Name:              av.Name,
		Address:           av.Address,
		Pincode:           av.Pincode,
		PricePerHourCents: av.PricePerHourCents,
		TotalSpots:        av.TotalSpots,
		OccupiedSpots:     av.OccupiedSpots,
		AvailableSpots:    av.AvailableSpots,
	}
}

func FromDashboardStats(s *shared.DashboardStats) *DashboardStatsResponse {
	return &DashboardStatsResponse{
		TotalLots:          s.TotalLots,
		TotalSpots:         s.TotalSpots,
		OccupiedSpots:      s.OccupiedSpots,
		AvailableSpots:     s.AvailableSpots,
		OccupancyRate:      s.OccupancyRate,
		ActiveReservations: s.ActiveReservations,
		TotalUsers:         s.TotalUsers,
		TodayRevenueCents:  s.TodayRevenueCents,
		MonthRevenueCents:  s.MonthRevenueCents,
	}
}
