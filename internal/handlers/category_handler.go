package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"opsboard/internal/models"
	"opsboard/internal/services"
)

type CategoryHandler struct {
	service services.CategoryService
}

func NewCategoryHandler(service services.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// @Summary      Create a category
// @Description  Creates a category at the end of the board (order = max + 1)
// @Tags         Categories
// @Accept       json
// @Produce      json
// @Success      201  {object}  models.Category
// @Failure      400  {object}  map[string]string
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[category][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.service.Create(c.Request.Context(), req.Name, req.Color)
	if err != nil {
		respondError(c, "category", "create", err)
		return
	}
	log.Printf("[category][create][ok] id=%d name=%q order=%d", category.ID, category.Name, category.Order)
	c.JSON(http.StatusCreated, category)
}

// PUT /api/categories/:id — partial update, absent fields stay untouched.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "category", "update")
	if !ok {
		return
	}

	var req models.CategoryUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[category][update][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, "category", "update", err)
		return
	}
	log.Printf("[category][update][ok] id=%d", id)
	c.JSON(http.StatusOK, category)
}

// DELETE /api/categories/:id — cascades to tasks and their notes.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "category", "delete")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "category", "delete", err)
		return
	}
	log.Printf("[category][delete][ok] id=%d", id)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
