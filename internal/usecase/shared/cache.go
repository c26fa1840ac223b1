package shared

import (
	"context"

	"github.com/google/uuid"
)

// LotAvailability is the aggregate served by the availability view. It is
// always derived from authoritative spot rows, never from a maintained
// counter, and cached copies are shared read-only.
type LotAvailability struct {
	LotID             uuid.UUID `json:"lot_id"`
	Name              string    `json:"name"`
	Address           string    `json:"address"`
	Pincode           string    `json:"pincode"`
	PricePerHourCents int64     `json:"price_per_hour_cents"`
	TotalSpots        int32     `json:"total_spots"`
	OccupiedSpots     int32     `json:"occupied_spots"`
	AvailableSpots    int32     `json:"available_spots"`
}

// AvailabilityCache is an explicit, injectable collaborator. It is derived,
// disposable state: clearing it early is always safe, and writers invalidate
// by scope after commit so staleness stays bounded by the TTL.
//
// A miss is (nil/zero, false, nil); cache transport errors are returned so
// callers can log and fall through to the authoritative read.
type AvailabilityCache interface {
	GetLot(ctx context.Context, lotID uuid.UUID) (*LotAvailability, bool, error)
	SetLot(ctx context.Context, av *LotAvailability) error
	GetAll(ctx context.Context) ([]LotAvailability, bool, error)
	SetAll(ctx context.Context, avs []LotAvailability) error
	// InvalidateLot drops the lot's scope and the all-lots scope.
	InvalidateLot(ctx context.Context, lotID uuid.UUID) error
	InvalidateAll(ctx context.Context) error
}

// StatsCache holds the dashboard aggregate under its own scope key.
type StatsCache interface {
	Get(ctx context.Context) (*DashboardStats, bool, error)
	Set(ctx context.Context, stats *DashboardStats) error
	Invalidate(ctx context.Context) error
}

type DashboardStats struct {
	TotalLots          int64   `json:"total_lots"`
	TotalSpots         int64   `json:"total_spots"`
	OccupiedSpots      int64   `json:"occupied_spots"`
	AvailableSpots     int64   `json:"available_spots"`
	OccupancyRate      float64 `json:"occupancy_rate"`
	ActiveReservations int64   `json:"active_reservations"`
	TotalUsers         int64   `json:"total_users"`
	TodayRevenueCents  int64   `json:"today_revenue_cents"`
	MonthRevenueCents  int64   `json:"month_revenue_cents"`
}
