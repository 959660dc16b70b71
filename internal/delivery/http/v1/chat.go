package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/aggo-mock-api/internal/models"
	"github.com/adanyl0v/aggo-mock-api/internal/services"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Success bool               `json:"success"`
	Message models.ChatMessage `json:"message"`
}

func (h *handlerImpl) HandleChat(c *gin.Context) {
	var req chatRequest
	err := c.ShouldBindJSON(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		h.logger.Error().
			Err(err).
			Msg("failed to bind request body")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	reply, err := h.chat.Reply(c.Request.Context(), req.Message)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to reply to chat message")
		switch {
		case errors.Is(err, services.ErrMessageRequired):
			abort(c, newBadRequestError(services.ErrMessageRequired.Error()))
		case isClientGone(err):
			c.Abort()
		default:
			abort(c, newInternalError())
		}
		return
	}

	c.JSON(http.StatusOK, chatResponse{
		Success: true,
		Message: *reply,
	})
}

// HandleAgentStream replays an agent script as server-sent events.
// Playback stops as soon as the client disconnects.
func (h *handlerImpl) HandleAgentStream(c *gin.Context) {
	script := c.Param("script")
	ctx := c.Request.Context()

	messages, err := h.chat.Play(ctx, script)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("script", script).
			Msg("failed to play script")
		switch {
		case errors.Is(err, services.ErrScriptNotFound):
			abort(c, newNotFoundError(services.ErrScriptNotFound.Error()))
		default:
			abort(c, newInternalError())
		}
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	sent := 0
	for message := range messages {
		c.SSEvent("message", message)
		c.Writer.Flush()
		sent++
	}

	if ctx.Err() != nil {
		h.logger.Info().
			Str("script", script).
			Int("sent", sent).
			Msg("client left agent stream")
		return
	}

	c.SSEvent("done", gin.H{"script": script, "messages": sent})
	c.Writer.Flush()
}
