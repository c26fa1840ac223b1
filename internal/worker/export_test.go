//go:build unit

package worker

import (
	"context"
	"encoding/csv"
	"os"
	"testing"
	"time"

	"parkhub/internal/usecase/shared"
	sharedmock "parkhub/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubStore struct {
	Store
	rows []ExportRow
	err  error
}

func (s *stubStore) FindExportRowsByUser(ctx context.Context, userID uuid.UUID) ([]ExportRow, error) {
	return s.rows, s.err
}

type stubNotifier struct {
	sent []Notification
	err  error
}

func (s *stubNotifier) Notify(_ context.Context, n Notification) error {
	s.sent = append(s.sent, n)
	return s.err
}

func TestWriteCSV(t *testing.T) {
	started := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ended := started.Add(2 * time.Hour)
	cost := int64(600)

	rows := []ExportRow{
		{
			ReservationID: uuid.New(),
			LotName:       "Central Garage",
			SpotNumber:    3,
			StartedAt:     started,
			EndedAt:       &ended,
			CostCents:     &cost,
			Status:        "completed",
		},
		{
			ReservationID: uuid.New(),
			LotName:       "Central Garage",
			SpotNumber:    1,
			StartedAt:     ended,
			Status:        "active",
		},
	}

	w := &ExportWorker{
		store: &stubStore{rows: rows},
		dir:   t.TempDir(),
	}

	job := &shared.ExportJobSnapshot{ID: uuid.New(), UserID: uuid.New()}

	filePath, err := w.writeCSV(context.Background(), job)
	require.NoError(t, err)

	f, err := os.Open(filePath)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"reservation_id", "lot", "spot_number", "started_at", "ended_at", "cost_cents", "status"}, records[0])

	completed := records[1]
	assert.Equal(t, rows[0].ReservationID.String(), completed[0])
	assert.Equal(t, "3", completed[2])
	assert.Equal(t, "2026-03-01T11:00:00Z", completed[4])
	assert.Equal(t, "600", completed[5])
	assert.Equal(t, "completed", completed[6])

	// an active reservation has no end or cost yet
	active := records[2]
	assert.Equal(t, "", active[4])
	assert.Equal(t, "", active[5])
	assert.Equal(t, "active", active[6])
}

func TestProcessOneNotifiesOnCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uow := sharedmock.NewMockUnitOfWork(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	jobs := sharedmock.NewMockExportJobRepository(ctrl)

	tx.EXPECT().ExportJobs().Return(jobs).AnyTimes()
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()

	job := &shared.ExportJobSnapshot{ID: uuid.New(), UserID: uuid.New()}
	jobs.EXPECT().ClaimNextPending(gomock.Any()).Return(job, nil)
	jobs.EXPECT().MarkDone(gomock.Any(), job.ID, gomock.Any()).Return(nil)

	notifier := &stubNotifier{}
	w := &ExportWorker{
		uow:      uow,
		store:    &stubStore{},
		notifier: notifier,
		dir:      t.TempDir(),
	}

	processed, err := w.processOne(context.Background())
	require.NoError(t, err)
	assert.True(t, processed)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, job.UserID.String(), notifier.sent[0].Recipient)
	assert.Contains(t, notifier.sent[0].Body, job.ID.String())
}

func TestProcessOneFailedJobDoesNotNotify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uow := sharedmock.NewMockUnitOfWork(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	jobs := sharedmock.NewMockExportJobRepository(ctrl)

	tx.EXPECT().ExportJobs().Return(jobs).AnyTimes()
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()

	job := &shared.ExportJobSnapshot{ID: uuid.New(), UserID: uuid.New()}
	jobs.EXPECT().ClaimNextPending(gomock.Any()).Return(job, nil)
	jobs.EXPECT().MarkFailed(gomock.Any(), job.ID).Return(nil)

	notifier := &stubNotifier{}
	w := &ExportWorker{
		uow:      uow,
		store:    &stubStore{err: os.ErrDeadlineExceeded},
		notifier: notifier,
		dir:      t.TempDir(),
	}

	processed, err := w.processOne(context.Background())
	require.NoError(t, err)
	assert.True(t, processed)
	assert.Empty(t, notifier.sent)
}

func TestWriteCSVStoreFailure(t *testing.T) {
	w := &ExportWorker{
		store: &stubStore{err: os.ErrDeadlineExceeded},
		dir:   t.TempDir(),
	}

	_, err := w.writeCSV(context.Background(), &shared.ExportJobSnapshot{ID: uuid.New()})
	require.Error(t, err)
}
