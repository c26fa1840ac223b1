package api

import (
	"net/http"

	resdto "parkhub/internal/handler/dto/response"
	"parkhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
	statsQueries        queries.StatsQueries
}

func NewAvailabilityHandler(
	availabilityQueries queries.AvailabilityQueries,
	statsQueries queries.StatsQueries,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
		statsQueries:        statsQueries,
	}
}

// @Summary List availability
// @Description Availability counters for every lot, possibly served from cache
// @Tags availability
// @Produce json
// @Success 200 {array} resdto.AvailabilityResponse
// @Router /availability [get]
func (h *AvailabilityHandler) List(c *gin.Context) {
	avs, err := h.availabilityQueries.ListLots(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	result := make([]*resdto.AvailabilityResponse, len(avs))
	for i := range avs {
		result[i] = resdto.FromLotAvailability(&avs[i])
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Get lot availability
// @Description Availability counters for one lot, possibly served from cache
// @Tags availability
// @Produce json
// @Param id path string true "Lot ID"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 404 {object} map[string]string
// @Router /availability/{id} [get]
func (h *AvailabilityHandler) Get(c *gin.Context) {
	lotID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	av, err := h.availabilityQueries.GetLot(c.Request.Context(), lotID)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Lot not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromLotAvailability(av))
}

// @Summary Dashboard stats
// @Description Fleet-wide occupancy and revenue aggregates
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardStatsResponse
// @Router /admin/stats [get]
func (h *AvailabilityHandler) Stats(c *gin.Context) {
	stats, err := h.statsQueries.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDashboardStats(stats))
}
