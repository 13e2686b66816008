package handlers

import (
	"github.com/gin-gonic/gin"
)

// Handlers набор обработчиков для регистрации маршрутов
type Handlers struct {
	Features *FeatureHandler
	Analysis *AnalysisHandler
	Export   *ExportHandler
	Admin    *AdminHandler
	System   *SystemHandler
}

// RegisterRoutes регистрирует все API-маршруты под /api
func RegisterRoutes(router *gin.Engine, h *Handlers) {
	api := router.Group("/api")

	api.GET("/health", h.System.HandleHealth)

	features := api.Group("/features")
	{
		features.GET("", h.Features.HandleList)
		features.POST("", h.Features.HandleCreate)
		features.GET("/modules", h.Features.HandleModules)
		features.GET("/export", h.Export.HandleExport)
		features.POST("/sync-from-sheet", h.Features.HandleSync)
		features.POST("/recalculate-scores", h.Features.HandleRecalculateScores)

		features.GET("/:id", h.Features.HandleGet)
		features.PATCH("/:id", h.Features.HandleUpdate)
		features.DELETE("/:id", h.Features.HandleDelete)
		features.GET("/:id/requests", h.Features.HandleRequests)
		features.POST("/:id/requests", h.Features.HandleCreateRequest)

		features.GET("/:id/competitor-mapping", h.Analysis.HandleCompetitorMapping)
		features.POST("/:id/competitor-analysis", h.Analysis.HandleCompetitorAnalysis)
		features.POST("/:id/use-case-document", h.Analysis.HandleUseCaseDocument)
		features.POST("/:id/customer-insights", h.Analysis.HandleCustomerInsights)
	}

	if h.Admin != nil {
		admin := api.Group("/admin")
		{
			admin.POST("/seed", h.Admin.HandleSeed)
			admin.GET("/features", h.Admin.HandleListStored)
			admin.POST("/recalculate", h.Admin.HandleRecalculate)
		}
	}
}
