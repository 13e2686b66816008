package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"featureboard/ai"
	"featureboard/server/middleware"
	"featureboard/server/services"
	"featureboard/sheet"
)

// AnalysisHandler обработчик AI-операций над фичами
type AnalysisHandler struct {
	features *services.FeatureService
	analysis *services.AnalysisService
}

// NewAnalysisHandler создает обработчик AI-анализа
func NewAnalysisHandler(features *services.FeatureService, analysis *services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{features: features, analysis: analysis}
}

// useCaseDocumentRequest тело POST /features/:id/use-case-document.
// Анализ конкурентов опционален: без него генерируется заново.
type useCaseDocumentRequest struct {
	CompetitorAnalysis *ai.CompetitorAnalysis `json:"competitorAnalysis"`
}

// HandleCompetitorMapping возвращает термины конкурентов для фичи
// @Summary Маппинг терминов конкурентов
// @Tags ai
// @Produce json
// @Param id path int true "Позиция в таблице, с 1"
// @Success 200 {object} ai.CompetitorMapping
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "Ошибка AI-провайдера"
// @Router /features/{id}/competitor-mapping [get]
func (h *AnalysisHandler) HandleCompetitorMapping(c *gin.Context) {
	feature, ok := h.loadFeature(c)
	if !ok {
		return
	}

	mapping, err := h.analysis.CompetitorMapping(c.Request.Context(), middleware.GetRequestIDFromGin(c), feature)
	if err != nil {
		HandleError(c, err)
		return
	}
	SendJSONResponse(c, http.StatusOK, mapping)
}

// HandleCompetitorAnalysis возвращает анализ конкурентов и заглушку Google Docs
// @Summary Анализ конкурентов
// @Tags ai
// @Produce json
// @Param id path int true "Позиция в таблице, с 1"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /features/{id}/competitor-analysis [post]
func (h *AnalysisHandler) HandleCompetitorAnalysis(c *gin.Context) {
	feature, ok := h.loadFeature(c)
	if !ok {
		return
	}

	analysis, err := h.analysis.CompetitorAnalysis(c.Request.Context(), middleware.GetRequestIDFromGin(c), feature)
	if err != nil {
		HandleError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, gin.H{
		"analysis": analysis,
		"doc":      h.analysis.DocStub(fmt.Sprintf("Competitor Analysis: %s", feature.Name)),
	})
}

// HandleUseCaseDocument генерирует use-case секции и HTML-документ
// @Summary Use-case документ
// @Tags ai
// @Accept json
// @Produce json
// @Param id path int true "Позиция в таблице, с 1"
// @Param body body useCaseDocumentRequest false "Готовый анализ конкурентов"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /features/{id}/use-case-document [post]
func (h *AnalysisHandler) HandleUseCaseDocument(c *gin.Context) {
	feature, ok := h.loadFeature(c)
	if !ok {
		return
	}

	// Тело опционально, ошибки разбора не фатальны
	var req useCaseDocumentRequest
	if c.Request.Body != nil {
		_ = c.ShouldBindJSON(&req)
	}

	html, useCase, err := h.analysis.UseCaseDocument(c.Request.Context(), middleware.GetRequestIDFromGin(c), feature, req.CompetitorAnalysis)
	if err != nil {
		HandleError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, gin.H{
		"ok":      true,
		"html":    html,
		"useCase": useCase,
		"doc":     h.analysis.DocStub(fmt.Sprintf("Use Case: %s", feature.Name)),
	})
}

// HandleCustomerInsights возвращает сводку по клиентам, запросившим фичу
// @Summary Сводка по клиентам
// @Tags ai
// @Produce json
// @Param id path int true "Позиция в таблице, с 1"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /features/{id}/customer-insights [post]
func (h *AnalysisHandler) HandleCustomerInsights(c *gin.Context) {
	feature, ok := h.loadFeature(c)
	if !ok {
		return
	}

	insights, err := h.analysis.CustomerInsights(c.Request.Context(), middleware.GetRequestIDFromGin(c), feature)
	if err != nil {
		HandleError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, gin.H{
		"insights": insights,
		"doc":      h.analysis.DocStub(fmt.Sprintf("Customer Insights: %s", feature.Name)),
	})
}

// loadFeature загружает фичу по path-параметру id, при ошибке отвечает сам
func (h *AnalysisHandler) loadFeature(c *gin.Context) (*sheet.FeatureRecord, bool) {
	handler := FeatureHandler{features: h.features}
	id, ok := handler.featureID(c)
	if !ok {
		return nil, false
	}

	feature, err := h.features.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return nil, false
	}
	return feature, true
}
