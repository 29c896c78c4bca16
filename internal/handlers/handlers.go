package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/falaoperador/admin-api/internal/apierrors"
)

// parseID reads the :id route parameter.
func parseID(c *gin.Context) (uint64, *apierrors.APIError) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apierrors.NewBadRequest("ID inválido")
	}
	return id, nil
}
