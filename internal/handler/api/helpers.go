package api

import (
	"net/http"

	"parkhub/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func isNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name + " format",
		})
		return uuid.Nil, false
	}
	return id, true
}
