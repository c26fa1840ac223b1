package shared

import (
	"context"

	"parkhub/internal/domain/lot"
	"parkhub/internal/domain/reservation"
	"parkhub/internal/domain/spot"
	"parkhub/internal/domain/user"
	"parkhub/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

// Tx exposes write repositories bound to one open transaction. Repositories
// are lazily constructed against the transaction's connection.
type Tx interface {
	Lots() LotRepository
	Spots() SpotRepository
	Reservations() ReservationRepository
	Users() UserRepository
	ExportJobs() ExportJobRepository
	DB() db.DBTX
}

type LotRepository interface {
	Create(ctx context.Context, l *lot.Lot) error
	FindByID(ctx context.Context, id uuid.UUID) (*LotSnapshot, error)
	// LockByID acquires an exclusive row lock on the lot, serializing
	// capacity changes against each other.
	LockByID(ctx context.Context, id uuid.UUID) (*LotSnapshot, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, name, address, pincode string, pricePerHourCents int64) error
	// SetCapacity persists the declared spot count together with the highest
	// number ever minted, so growth after a shrink never reuses a number.
	SetCapacity(ctx context.Context, id uuid.UUID, spotCount, highestSpotNumber int32) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type SpotRepository interface {
	CreateBatch(ctx context.Context, lotID uuid.UUID, numbers []int32) error
	// ClaimLowestAvailable locks and returns the lowest-numbered available
	// spot in the lot. The row lock is taken before the status is trusted, so
	// a concurrent booking either blocks here or observes the post-commit
	// state and moves to the next candidate.
	ClaimLowestAvailable(ctx context.Context, lotID uuid.UUID) (*SpotSnapshot, error)
	LockByID(ctx context.Context, id uuid.UUID) (*SpotSnapshot, error)
	// LockHighestNumbered locks the n highest-numbered spots of the lot as
	// shrink candidates, highest first.
	LockHighestNumbered(ctx context.Context, lotID uuid.UUID, n int32) ([]SpotSnapshot, error)
	SetStatus(ctx context.Context, id uuid.UUID, status spot.Status) error
	CountOccupied(ctx context.Context, lotID uuid.UUID) (int64, error)
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) error
	DeleteByLotID(ctx context.Context, lotID uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	// LockActiveByIDAndOwner locks the active reservation matching id and
	// owner. A completed reservation no longer matches, which is what makes
	// Release idempotent-by-failure.
	LockActiveByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (*reservation.Reservation, error)
	HasActiveByUser(ctx context.Context, userID uuid.UUID) (bool, error)
	CountActiveByLot(ctx context.Context, lotID uuid.UUID) (int64, error)
	Complete(ctx context.Context, r *reservation.Reservation) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type ExportJobRepository interface {
	Create(ctx context.Context, job *ExportJobSnapshot) error
	// ClaimNextPending locks and flips the oldest pending job to processing,
	// skipping jobs already claimed by another worker.
	ClaimNextPending(ctx context.Context) (*ExportJobSnapshot, error)
	MarkDone(ctx context.Context, id uuid.UUID, filePath string) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
}
