package shared

import (
	"time"

	"parkhub/internal/domain/spot"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side reads and row-lock results.

type LotSnapshot struct {
	ID                uuid.UUID
	Name              string
	Address           string
	Pincode           string
	PricePerHourCents int64
	SpotCount         int32
	// HighestSpotNumber is the highest number ever minted for this lot,
	// including spots later removed by a shrink. Growth numbers from here,
	// never from the surviving rows.
	HighestSpotNumber int32
	CreatedAt         time.Time
}

type SpotSnapshot struct {
	ID     uuid.UUID
	LotID  uuid.UUID
	Number int32
	Status spot.Status
}

type ExportJobStatus string

const (
	ExportJobPending    ExportJobStatus = "pending"
	ExportJobProcessing ExportJobStatus = "processing"
	ExportJobDone       ExportJobStatus = "done"
	ExportJobFailed     ExportJobStatus = "failed"
)

type ExportJobSnapshot struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Status      ExportJobStatus
	FilePath    *string
	RequestedAt time.Time
	CompletedAt *time.Time
}
