package worker

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models for the background jobs. All worker reads are read-only; the
// only writes workers perform go through the export job repository.

type ExportRow struct {
	ReservationID uuid.UUID
	LotName       string
	SpotNumber    int32
	StartedAt     time.Time
	EndedAt       *time.Time
	CostCents     *int64
	Status        string
}

type UserContact struct {
	UserID   uuid.UUID
	Username string
	Email    *string
}

type MonthlyActivityRow struct {
	UserID           uuid.UUID
	Username         string
	Email            *string
	ReservationCount int64
	TotalCostCents   int64
}

type Store interface {
	// FindExportRowsByUser returns the user's full history, oldest first.
	FindExportRowsByUser(ctx context.Context, userID uuid.UUID) ([]ExportRow, error)
	// FindUsersWithoutBookingSince lists users with no reservation started at
	// or after the cutoff.
	FindUsersWithoutBookingSince(ctx context.Context, cutoff time.Time) ([]UserContact, error)
	// CollectMonthlyActivity aggregates completed reservations per user for
	// the [from, to) window.
	CollectMonthlyActivity(ctx context.Context, from, to time.Time) ([]MonthlyActivityRow, error)
}
