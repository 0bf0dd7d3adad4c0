package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"opsboard/internal/models"
)

// parseID reads the :id path param. Responds 400 and returns false on junk.
func parseID(c *gin.Context, entity, op string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		log.Printf("[%s][%s][err] invalid id=%q: %v", entity, op, c.Param("id"), err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// respondError maps the error taxonomy onto HTTP statuses:
// NotFound -> 404, ValidationError -> 400, restore IntegrityFailure and
// everything else -> 500 with the cause message.
func respondError(c *gin.Context, entity, op string, err error) {
	log.Printf("[%s][%s][err] %v", entity, op, err)
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
