package api

import (
	"net/http"

	resdto "parkhub/internal/handler/dto/response"
	"parkhub/internal/handler/middleware"
	"parkhub/internal/usecase/commands"
	"parkhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	exportCommands commands.ExportCommands
	exportQueries  queries.ExportQueries
}

func NewExportHandler(exportCommands commands.ExportCommands, exportQueries queries.ExportQueries) *ExportHandler {
	return &ExportHandler{
		exportCommands: exportCommands,
		exportQueries:  exportQueries,
	}
}

// @Summary Request CSV export
// @Description Queue an asynchronous CSV export of the caller's history
// @Tags exports
// @Produce json
// @Security BearerAuth
// @Success 202 {object} map[string]string
// @Router /exports [post]
func (h *ExportHandler) Request(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	jobID, err := h.exportCommands.RequestExport(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"jobId": jobID.String()})
}

// @Summary Get export job
// @Description Status of one export job
// @Tags exports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} resdto.ExportJobResponse
// @Failure 404 {object} map[string]string
// @Router /exports/{id} [get]
func (h *ExportHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	jobID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.exportQueries.GetJob(c.Request.Context(), jobID, userID)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Export job not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromExportJobView(view))
}

// @Summary List export jobs
// @Description The caller's export jobs, newest first
// @Tags exports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ExportJobResponse
// @Router /exports [get]
func (h *ExportHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.exportQueries.ListJobs(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	result := make([]*resdto.ExportJobResponse, len(views))
	for i, v := range views {
		result[i] = resdto.FromExportJobView(v)
	}
	c.JSON(http.StatusOK, result)
}
