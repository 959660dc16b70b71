package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *handlerImpl) HandleRequestLog(c *gin.Context) {
	start := time.Now()
	path := c.Request.URL.Path

	c.Next()

	status := c.Writer.Status()
	event := h.logger.Info()
	switch {
	case status >= http.StatusInternalServerError:
		event = h.logger.Error()
	case status >= http.StatusBadRequest:
		event = h.logger.Warn()
	}

	event.
		Str("method", c.Request.Method).
		Str("path", path).
		Int("status", status).
		Dur("latency", time.Since(start)).
		Str("client_ip", c.ClientIP()).
		Msg("handled request")
}

func (h *handlerImpl) HandleCORS(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", h.corsAllowOrigin)
	c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type")

	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Next()
}

func (h *handlerImpl) HandleRecovery(c *gin.Context, recovered any) {
	h.logger.Error().
		Interface("panic", recovered).
		Str("path", c.Request.URL.Path).
		Msg("recovered from panic")
	abort(c, newInternalError())
}

func (h *handlerImpl) HandleNoRoute(c *gin.Context) {
	h.logger.Warn().
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("route not found")
	abort(c, newNotFoundError(routeNotFoundMessage))
}
