package routes

import (
	"electripro/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathStats     = "/stats"
)

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler) {
	// Dashboard cards live outside the /estimates group so the stats path
	// cannot collide with an estimate id.
	rg.GET(PathStats, estimateHandler.GetStats)

	estimates := rg.Group(PathEstimates)
	{
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PUT("/:id", estimateHandler.UpdateEstimate)
		estimates.DELETE("/:id", estimateHandler.DeleteEstimate)
		estimates.GET("/:id/document", estimateHandler.GetDocument)
		estimates.GET("/:id/share", estimateHandler.GetShareMessage)
	}
}
