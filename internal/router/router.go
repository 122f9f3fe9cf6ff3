package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/examtools/vceplay/internal/config"
	"github.com/examtools/vceplay/internal/handler"
	"github.com/examtools/vceplay/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Session *handler.SessionHandler
	WS      *handler.WSHandler
}

// SetupRouter configures all Gin route groups. The API is a local,
// single-user surface; there is no authentication layer.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.GET("/exam", handlers.Session.GetExam)

		api.POST("/session", handlers.Session.StartSession)
		api.GET("/session", handlers.Session.GetSession)
		api.GET("/session/progress", handlers.Session.GetProgress)
		api.GET("/session/questions/:position", handlers.Session.GetQuestion)
		api.PUT("/session/answers/:position", handlers.Session.SelectAnswer)
		api.POST("/session/answers/:position/mark", handlers.Session.MarkAnswer)
		api.POST("/session/next", handlers.Session.NextQuestion)
		api.POST("/session/previous", handlers.Session.PreviousQuestion)
		api.POST("/session/jump", handlers.Session.JumpToQuestion)
		api.POST("/session/end", handlers.Session.EndSession)
		api.POST("/session/resume", handlers.Session.ResumeSession)
		api.POST("/session/review", handlers.Session.ReviewSession)

		api.GET("/sessions", handlers.Session.ListSessions)
		api.DELETE("/sessions/:id", handlers.Session.DeleteSession)
	}

	ws := router.Group("/ws/v1")
	{
		ws.GET("/session/stream", handlers.WS.SessionStream)
	}

	return router
}
