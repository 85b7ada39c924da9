package api

import (
	"github.com/gin-gonic/gin"

	"github.com/axobase/egde/api/handlers"
	"github.com/axobase/egde/insights"
)

// SetupRoutes initializes all API endpoints
func SetupRoutes(router *gin.Engine) {
	insightHandler := insights.NewHandler(handlers.InsightExtractor(), handlers.InsightNarrator())

	api := router.Group("/api")
	{
		api.POST("/agents", handlers.RegisterAgent)
		api.GET("/agents", handlers.GetAgents)
		api.GET("/agents/:agentID", handlers.GetAgent)
		api.GET("/agents/:agentID/genome", handlers.GetGenome)
		api.GET("/agents/:agentID/expression", handlers.GetExpression)
		api.GET("/agents/:agentID/decision", handlers.GetLastDecision)
		api.POST("/agents/:agentID/stop", handlers.StopAgent)
		api.POST("/breeding", handlers.Breed)
		api.GET("/insights", insightHandler.GetSummary)
		api.GET("/insights/narrative", insightHandler.GetNarrative)
		api.GET("/ws", handlers.HandleWebSocket)
	}
}
