package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"opsboard/internal/models"
	"opsboard/internal/services"
)

type NoteHandler struct {
	service services.NoteService
}

func NewNoteHandler(service services.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

// GET /api/notes?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD
// Both bounds inclusive; with either one missing the full set comes back.
func (h *NoteHandler) List(c *gin.Context) {
	var rng models.NoteRange
	if v, ok := c.GetQuery("start_date"); ok {
		rng.Start = &v
	}
	if v, ok := c.GetQuery("end_date"); ok {
		rng.End = &v
	}

	notes, err := h.service.List(c.Request.Context(), rng)
	if err != nil {
		respondError(c, "note", "list", err)
		return
	}
	if notes == nil {
		notes = []models.Note{}
	}
	c.JSON(http.StatusOK, notes)
}

// @Summary      Upsert a note
// @Description  Writes the note for (task_id, date); at most one note exists per pair
// @Tags         Notes
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Note
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/notes [post]
func (h *NoteHandler) Upsert(c *gin.Context) {
	var req struct {
		TaskID  int64  `json:"task_id"`
		Date    string `json:"date"`
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[note][upsert][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.service.Upsert(c.Request.Context(), req.TaskID, req.Date, req.Content)
	if err != nil {
		respondError(c, "note", "upsert", err)
		return
	}
	log.Printf("[note][upsert][ok] id=%d task_id=%d date=%s", note.ID, note.TaskID, note.Date)
	c.JSON(http.StatusOK, note)
}
