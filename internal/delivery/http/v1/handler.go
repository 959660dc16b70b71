package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/aggo-mock-api/internal/fixtures"
	"github.com/adanyl0v/aggo-mock-api/internal/services"
)

type Handler interface {
	HandleHealth(c *gin.Context)

	HandleScan(c *gin.Context)
	HandleGetDiagnostic(c *gin.Context)

	HandleFix(c *gin.Context)
	HandleGetPreview(c *gin.Context)
	HandleFixAll(c *gin.Context)

	HandleGetTaskCards(c *gin.Context)
	HandleChat(c *gin.Context)
	HandleAgentStream(c *gin.Context)

	HandleRequestLog(c *gin.Context)
	HandleCORS(c *gin.Context)
	HandleRecovery(c *gin.Context, recovered any)
	HandleNoRoute(c *gin.Context)
}

type handlerImpl struct {
	logger          zerolog.Logger
	scans           services.ScanService
	fixes           services.FixService
	chat            services.ChatService
	fixtures        *fixtures.Store
	corsAllowOrigin string
}

func New(
	logger zerolog.Logger,
	scanService services.ScanService,
	fixService services.FixService,
	chatService services.ChatService,
	fixtureStore *fixtures.Store,
	corsAllowOrigin string,
) Handler {
	return &handlerImpl{
		logger:          logger,
		scans:           scanService,
		fixes:           fixService,
		chat:            chatService,
		fixtures:        fixtureStore,
		corsAllowOrigin: corsAllowOrigin,
	}
}

// RegisterRoutes mounts the API and its middleware on router.
func RegisterRoutes(router *gin.Engine, h Handler) {
	router.Use(h.HandleRequestLog)
	router.Use(gin.CustomRecovery(h.HandleRecovery))
	router.Use(h.HandleCORS)
	router.NoRoute(h.HandleNoRoute)

	api := router.Group("/api")
	api.GET("/health", h.HandleHealth)

	api.POST("/scan", h.HandleScan)
	api.GET("/diagnostic/:scanId", h.HandleGetDiagnostic)

	api.POST("/fix/:issueId", h.HandleFix)
	api.GET("/preview/:issueId", h.HandleGetPreview)
	api.POST("/fix-all", h.HandleFixAll)

	api.GET("/tasks", h.HandleGetTaskCards)
	api.POST("/chat", h.HandleChat)
	api.GET("/agent/:script", h.HandleAgentStream)
}
