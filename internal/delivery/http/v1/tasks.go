package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/aggo-mock-api/internal/models"
)

type tasksResponse struct {
	Tasks []models.TaskCard `json:"tasks"`
}

func (h *handlerImpl) HandleGetTaskCards(c *gin.Context) {
	cards := h.fixtures.Catalog().TaskCards()
	h.logger.Debug().
		Int("count", len(cards)).
		Msg("listed task cards")

	c.JSON(http.StatusOK, tasksResponse{Tasks: cards})
}
