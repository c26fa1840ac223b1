package request

import (
	"github.com/google/uuid"
)

type BookSpotRequest struct {
	LotID uuid.UUID `json:"lot_id" binding:"required"`
}
