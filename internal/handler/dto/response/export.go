package response

import (
	"time"

	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ExportJobResponse struct {
	ID          uuid.UUID  `json:"id"`
	Status      string     `json:"status"`
	FilePath    *string    `json:"filePath,omitempty"`
	RequestedAt time.Time  `json:"requestedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func FromExportJobView(rm *queries.ExportJobView) *ExportJobResponse {
	return &ExportJobResponse{
		ID:          rm.ID,
		Status:      rm.Status,
		FilePath:    rm.FilePath,
		RequestedAt: rm.RequestedAt,
		CompletedAt: rm.CompletedAt,
	}
}
