package api

import (
	"errors"
	"net/http"

	reqdto "parkhub/internal/handler/dto/request"
	resdto "parkhub/internal/handler/dto/response"
	"parkhub/internal/handler/middleware"
	"parkhub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
}

func NewBookingHandler(bookingCommands commands.BookingCommands) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
	}
}

// @Summary Book a spot
// @Description Claim the lowest-numbered available spot in the lot
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookSpotRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Book(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.BookSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.Book(c.Request.Context(), userID, req.LotID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAlreadyActive):
			c.JSON(http.StatusConflict, gin.H{
				"error": "An active reservation already exists",
			})
		case errors.Is(err, commands.ErrLotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Lot not found",
			})
		case errors.Is(err, commands.ErrNoCapacity):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No available spot in lot",
			})
		case errors.Is(err, commands.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking conflicted with a concurrent operation, retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingResult(result))
}

// @Summary Release a reservation
// @Description Complete the reservation, free the spot and bill the elapsed time
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReleaseResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/release [post]
func (h *BookingHandler) Release(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	reservationID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.bookingCommands.Release(c.Request.Context(), userID, reservationID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Active reservation not found",
			})
		case errors.Is(err, commands.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Release conflicted with a concurrent operation, retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReleaseResult(result))
}
