package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"opsboard/internal/models"
	"opsboard/internal/services"
)

type TaskHandler struct {
	service services.TaskService
}

func NewTaskHandler(service services.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// @Summary      Create a task
// @Description  Creates a task at the end of its category (order = max sibling + 1)
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Success      201  {object}  models.Task
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req struct {
		CategoryID int64  `json:"category_id" binding:"required"`
		Text       string `json:"text"`
		PersonID   *int64 `json:"person_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[task][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.service.Create(c.Request.Context(), req.CategoryID, req.Text, req.PersonID)
	if err != nil {
		respondError(c, "task", "create", err)
		return
	}
	log.Printf("[task][create][ok] id=%d category_id=%d order=%d", task.ID, task.CategoryID, task.Order)
	c.JSON(http.StatusCreated, task)
}

// PUT /api/tasks/:id — partial update. person_id is three-state: absent
// keeps the assignment, null clears it, a value sets it (unvalidated).
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "task", "update")
	if !ok {
		return
	}

	var req struct {
		Text     *string           `json:"text"`
		Done     *bool             `json:"done"`
		Order    *int64            `json:"order"`
		PersonID models.OptionalID `json:"person_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[task][update][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := models.TaskUpdate{Text: req.Text, Done: req.Done, Order: req.Order}
	if req.PersonID.Set {
		update.PersonID = &req.PersonID.Value
	}

	task, err := h.service.Update(c.Request.Context(), id, update)
	if err != nil {
		respondError(c, "task", "update", err)
		return
	}
	log.Printf("[task][update][ok] id=%d", id)
	c.JSON(http.StatusOK, task)
}

// DELETE /api/tasks/:id — cascades to the task's notes.
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "task", "delete")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "task", "delete", err)
		return
	}
	log.Printf("[task][delete][ok] id=%d", id)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
