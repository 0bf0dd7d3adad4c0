package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"opsboard/internal/models"
	"opsboard/internal/services"
)

type PersonHandler struct {
	service services.PersonService
}

func NewPersonHandler(service services.PersonService) *PersonHandler {
	return &PersonHandler{service: service}
}

// GET /api/people
func (h *PersonHandler) GetAll(c *gin.Context) {
	people, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, "person", "list", err)
		return
	}
	if people == nil {
		people = []models.Person{}
	}
	c.JSON(http.StatusOK, people)
}

// POST /api/people
func (h *PersonHandler) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[person][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	person, err := h.service.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, "person", "create", err)
		return
	}
	log.Printf("[person][create][ok] id=%d name=%q", person.ID, person.Name)
	c.JSON(http.StatusCreated, person)
}

// PUT /api/people/:id
func (h *PersonHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "person", "update")
	if !ok {
		return
	}

	var req models.PersonUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[person][update][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	person, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, "person", "update", err)
		return
	}
	log.Printf("[person][update][ok] id=%d", id)
	c.JSON(http.StatusOK, person)
}

// DELETE /api/people/:id — tasks keep living, their assignment is cleared.
func (h *PersonHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "person", "delete")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "person", "delete", err)
		return
	}
	log.Printf("[person][delete][ok] id=%d", id)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
