package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "parkhub/internal/handler/dto/response"
	"parkhub/internal/handler/middleware"
	"parkhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationQueries queries.ReservationQueries
}

func NewReservationHandler(reservationQueries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		reservationQueries: reservationQueries,
	}
}

// @Summary Reservation history
// @Description The caller's reservations, newest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum rows"
// @Success 200 {array} resdto.ReservationResponse
// @Router /reservations [get]
func (h *ReservationHandler) History(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit",
			})
			return
		}
		limit = parsed
	}

	views, err := h.reservationQueries.HistoryByUser(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	result := make([]*resdto.ReservationResponse, len(views))
	for i, v := range views {
		result[i] = resdto.FromReservationView(v)
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Get reservation
// @Description One reservation; owners see their own, admins see any
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	reservationID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), userID, role.String(), reservationID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not allowed to read this reservation",
			})
		case isNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Active reservation
// @Description The caller's currently active reservation, if any
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} map[string]string
// @Router /reservations/active [get]
func (h *ReservationHandler) Active(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.reservationQueries.ActiveByUser(c.Request.Context(), userID)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No active reservation",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}
