package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opsboard/internal/services"
)

type BoardHandler struct {
	service services.BoardService
}

func NewBoardHandler(service services.BoardService) *BoardHandler {
	return &BoardHandler{service: service}
}

// @Summary      Initial board state
// @Description  Categories sorted by order with embedded order-sorted tasks, plus people
// @Tags         Board
// @Produce      json
// @Success      200  {object}  models.BoardState
// @Router       /api/init [get]
func (h *BoardHandler) Init(c *gin.Context) {
	state, err := h.service.State(c.Request.Context())
	if err != nil {
		respondError(c, "board", "init", err)
		return
	}
	c.JSON(http.StatusOK, state)
}
