package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"opsboard/internal/models"
	"opsboard/internal/services"
)

type SnapshotHandler struct {
	service services.SnapshotService
}

func NewSnapshotHandler(service services.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{service: service}
}

// @Summary      Export a backup
// @Description  Full-store snapshot: categories, people, tasks, notes with every field
// @Tags         Snapshots
// @Produce      json
// @Success      200  {object}  models.Snapshot
// @Router       /api/backup [get]
func (h *SnapshotHandler) Backup(c *gin.Context) {
	snapshot, err := h.service.Export(c.Request.Context())
	if err != nil {
		respondError(c, "snapshot", "backup", err)
		return
	}
	log.Printf("[snapshot][backup][ok] categories=%d people=%d tasks=%d notes=%d",
		len(snapshot.Categories), len(snapshot.People), len(snapshot.Tasks), len(snapshot.Notes))
	c.JSON(http.StatusOK, snapshot)
}

// @Summary      Restore from a backup
// @Description  Replaces the whole store atomically, keeping the document's ids
// @Tags         Snapshots
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/restore [post]
func (h *SnapshotHandler) Restore(c *gin.Context) {
	var snapshot models.RestoreSnapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		log.Printf("[snapshot][restore][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "no data provided"})
		return
	}

	if err := h.service.Restore(c.Request.Context(), &snapshot); err != nil {
		respondError(c, "snapshot", "restore", err)
		return
	}
	log.Printf("[snapshot][restore][ok] categories=%d people=%d tasks=%d notes=%d",
		len(snapshot.Categories), len(snapshot.People), len(snapshot.Tasks), len(snapshot.Notes))
	c.JSON(http.StatusOK, gin.H{"success": true})
}
