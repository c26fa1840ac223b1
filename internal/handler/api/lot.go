package api

import (
	"errors"
	"net/http"

	reqdto "parkhub/internal/handler/dto/request"
	resdto "parkhub/internal/handler/dto/response"
	"parkhub/internal/usecase/commands"
	"parkhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LotHandler struct {
	capacityCommands commands.CapacityCommands
	lotQueries       queries.LotQueries
}

func NewLotHandler(capacityCommands commands.CapacityCommands, lotQueries queries.LotQueries) *LotHandler {
	return &LotHandler{
		capacityCommands: capacityCommands,
		lotQueries:       lotQueries,
	}
}

// @Summary Create lot
// @Description Create a parking lot with its initial spots
// @Tags lots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLotRequest true "Lot request"
// @Success 201 {object} resdto.LotResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/lots [post]
func (h *LotHandler) Create(c *gin.Context) {
	var req reqdto.CreateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	lotID, err := h.capacityCommands.CreateLot(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, commands.ErrDomainValidation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request data",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.lotQueries.GetByID(c.Request.Context(), lotID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromLotView(view))
}

// @Summary Update lot
// @Description Patch the lot profile (name, address, pincode, price)
// @Tags lots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Param request body reqdto.UpdateLotRequest true "Patch request"
// @Success 200 {object} resdto.LotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/lots/{id} [patch]
func (h *LotHandler) Update(c *gin.Context) {
	lotID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.capacityCommands.UpdateLot(c.Request.Context(), lotID, req); err != nil {
		switch {
		case errors.Is(err, commands.ErrLotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Lot not found",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	view, err := h.lotQueries.GetByID(c.Request.Context(), lotID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromLotView(view))
}

// @Summary Resize lot
// @Description Grow or shrink the lot to the target spot count
// @Tags lots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Param request body reqdto.ResizeLotRequest true "Resize request"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/lots/{id}/resize [post]
func (h *LotHandler) Resize(c *gin.Context) {
	lotID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.ResizeLotRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SpotCount == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.capacityCommands.Resize(c.Request.Context(), lotID, *req.SpotCount)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrLotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Lot not found",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid spot count",
			})
		case errors.Is(err, commands.ErrCapacityConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Occupied spots block the capacity change",
			})
		case errors.Is(err, commands.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Resize conflicted with a concurrent operation, retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"lotId":   result.LotID,
		"added":   result.Added,
		"removed": result.Removed,
	})
}

// @Summary Delete lot
// @Description Delete the lot and all its spots
// @Tags lots
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/lots/{id} [delete]
func (h *LotHandler) Delete(c *gin.Context) {
	lotID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.capacityCommands.DeleteLot(c.Request.Context(), lotID); err != nil {
		switch {
		case errors.Is(err, commands.ErrLotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Lot not found",
			})
		case errors.Is(err, commands.ErrLotOccupied):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Lot has occupied spots or active reservations",
			})
		case errors.Is(err, commands.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Delete conflicted with a concurrent operation, retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List lots
// @Description List all parking lots
// @Tags lots
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.LotResponse
// @Router /lots [get]
func (h *LotHandler) List(c *gin.Context) {
	views, err := h.lotQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	result := make([]*resdto.LotResponse, len(views))
	for i, v := range views {
		result[i] = resdto.FromLotView(v)
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Get lot
// @Description Get one parking lot
// @Tags lots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Success 200 {object} resdto.LotResponse
// @Failure 404 {object} map[string]string
// @Router /lots/{id} [get]
func (h *LotHandler) Get(c *gin.Context) {
	lotID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.lotQueries.GetByID(c.Request.Context(), lotID)
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

	c.JSON(http.StatusOK, resdto.FromLotView(view))
}

// @Summary List spots
// @Description List the lot's spots with their occupancy status
// @Tags lots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Success 200 {array} resdto.SpotResponse
// @Failure 404 {object} map[string]string
// @Router /lots/{id}/spots [get]
func (h *LotHandler) ListSpots(c *gin.Context) {
	lotID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	views, err := h.lotQueries.ListSpots(c.Request.Context(), lotID)
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

	result := make([]*resdto.SpotResponse, len(views))
	for i, v := range views {
		result[i] = resdto.FromSpotView(v)
	}
	c.JSON(http.StatusOK, result)
}
