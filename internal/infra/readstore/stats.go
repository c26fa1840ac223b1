package readstore

import (
	"context"

	"parkhub/internal/infra"
	"parkhub/internal/infra/db"
	"parkhub/internal/usecase/shared"
)

type StatsReadStore struct {
	db db.DBTX
}

func NewStatsReadStore(dbtx db.DBTX) *StatsReadStore {
	return &StatsReadStore{db: dbtx}
}

// CollectDashboard assembles fleet-wide counters in one round trip. Revenue
// is attributed to the day the reservation ended.
func (r *StatsReadStore) CollectDashboard(ctx context.Context) (*shared.DashboardStats, error) {
	const q = `
		SELECT
			(SELECT COUNT(*) FROM lots),
			(SELECT COUNT(*) FROM spots),
			(SELECT COUNT(*) FROM spots WHERE status = 'occupied'),
			(SELECT COUNT(*) FROM reservations WHERE status = 'active'),
			(SELECT COUNT(*) FROM users),
			(SELECT COALESCE(SUM(cost_cents), 0) FROM reservations
			 WHERE status = 'completed' AND ended_at >= date_trunc('day', now())),
			(SELECT COALESCE(SUM(cost_cents), 0) FROM reservations
			 WHERE status = 'completed' AND ended_at >= date_trunc('month', now()))`

	var s shared.DashboardStats
	err := r.db.QueryRow(ctx, q).Scan(
		&s.TotalLots, &s.TotalSpots, &s.OccupiedSpots,
		&s.ActiveReservations, &s.TotalUsers,
		&s.TodayRevenueCents, &s.MonthRevenueCents)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to collect dashboard stats", err)
	}

	s.AvailableSpots = s.TotalSpots - s.OccupiedSpots
	if s.TotalSpots > 0 {
		s.OccupancyRate = float64(s.OccupiedSpots) / float64(s.TotalSpots)
	}
	return &s, nil
}
