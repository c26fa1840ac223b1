package api

import (
	"net/http"

	resdto "parkhub/internal/handler/dto/response"
	"parkhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userQueries queries.UserQueries
}

func NewUserHandler(userQueries queries.UserQueries) *UserHandler {
	return &UserHandler{
		userQueries: userQueries,
	}
}

// @Summary List users
// @Description All registered users, oldest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.UserProfileResponse
// @Router /admin/users [get]
func (h *UserHandler) List(c *gin.Context) {
	views, err := h.userQueries.ListProfiles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	result := make([]*resdto.UserProfileResponse, len(views))
	for i, v := range views {
		result[i] = resdto.FromUserProfileView(v)
	}
	c.JSON(http.StatusOK, result)
}
