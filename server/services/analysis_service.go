package services

import (
	"context"
	"log/slog"

	"featureboard/ai"
	"featureboard/helpsearch"
	"featureboard/report"
	apperrors "featureboard/server/errors"
	"featureboard/sheet"
)

// AIUnavailableMessage сообщение для клиента при ошибке AI-провайдера
const AIUnavailableMessage = "AI provider request failed. Try again later."

// LinkResolver ищет ссылку на help-статью по поисковому запросу
type LinkResolver interface {
	Resolve(ctx context.Context, competitorName, searchQuery string) (*helpsearch.ResolvedLink, error)
}

// DocStubResult заглушка экспорта в Google Docs: API не подключен,
// возвращается только превью содержимого
type DocStubResult struct {
	OK      bool   `json:"ok"`
	Stub    bool   `json:"stub"`
	Message string `json:"message"`
	Title   string `json:"title"`
}

// AnalysisService AI-операции над фичами: маппинг терминов конкурентов,
// анализ, use-case документы и сводки по клиентам
type AnalysisService struct {
	ai       *ai.Service
	resolver LinkResolver
}

// NewAnalysisService создает сервис анализа. resolver может быть nil,
// тогда help-ссылки не дополняются поиском.
func NewAnalysisService(aiService *ai.Service, resolver LinkResolver) *AnalysisService {
	return &AnalysisService{ai: aiService, resolver: resolver}
}

// CompetitorMapping возвращает соответствие фичи терминам конкурентов
func (s *AnalysisService) CompetitorMapping(ctx context.Context, requestID string, feature *sheet.FeatureRecord) (*ai.CompetitorMapping, error) {
	mapping, err := s.ai.MapToCompetitorTerms(ctx, requestID, feature.Name, description(feature))
	if err != nil {
		return nil, apperrors.NewBadGatewayError(AIUnavailableMessage, err)
	}
	return mapping, nil
}

// CompetitorAnalysis строит анализ конкурентов и дополняет отсутствующие
// help-ссылки результатами веб-поиска
func (s *AnalysisService) CompetitorAnalysis(ctx context.Context, requestID string, feature *sheet.FeatureRecord) (*ai.CompetitorAnalysis, error) {
	analysis, err := s.ai.GenerateCompetitorAnalysis(ctx, requestID, feature.Name, description(feature))
	if err != nil {
		return nil, apperrors.NewBadGatewayError(AIUnavailableMessage, err)
	}

	s.resolveHelpLinks(ctx, analysis)
	return analysis, nil
}

// UseCaseDocument генерирует use-case секции и собирает самодостаточный
// HTML-документ. analysis может прийти из тела запроса, иначе генерируется.
func (s *AnalysisService) UseCaseDocument(ctx context.Context, requestID string, feature *sheet.FeatureRecord, analysis *ai.CompetitorAnalysis) (string, *ai.UseCaseSections, error) {
	if analysis == nil {
		generated, err := s.ai.GenerateCompetitorAnalysis(ctx, requestID, feature.Name, description(feature))
		if err != nil {
			return "", nil, apperrors.NewBadGatewayError(AIUnavailableMessage, err)
		}
		s.resolveHelpLinks(ctx, generated)
		analysis = generated
	}

	useCase, err := s.ai.GenerateUseCaseSections(ctx, requestID, feature.Name, description(feature))
	if err != nil {
		return "", nil, apperrors.NewBadGatewayError(AIUnavailableMessage, err)
	}

	html, err := report.BuildUseCaseDocument(*feature, analysis, useCase)
	if err != nil {
		return "", nil, apperrors.NewInternalError("failed to render use case document", err)
	}
	return html, useCase, nil
}

// CustomerInsights возвращает сводку по клиентам, запросившим фичу
func (s *AnalysisService) CustomerInsights(ctx context.Context, requestID string, feature *sheet.FeatureRecord) (*ai.CustomerInsights, error) {
	insights, err := s.ai.GenerateCustomerInsights(ctx, requestID, feature.Name, description(feature), feature.Clients())
	if err != nil {
		return nil, apperrors.NewBadGatewayError(AIUnavailableMessage, err)
	}
	return insights, nil
}

// DocStub возвращает заглушку экспорта в Google Docs
func (s *AnalysisService) DocStub(title string) DocStubResult {
	return DocStubResult{
		OK:      true,
		Stub:    true,
		Message: "Google Docs API not configured; returning document preview only.",
		Title:   title,
	}
}

// resolveHelpLinks дополняет записи конкурентов без URL ссылками из веб-поиска.
// Ошибки поиска молча игнорируются: остается синтезированный поисковый запрос.
func (s *AnalysisService) resolveHelpLinks(ctx context.Context, analysis *ai.CompetitorAnalysis) {
	if s.resolver == nil || analysis == nil || analysis.Stub {
		return
	}

	for i := range analysis.Competitors {
		c := &analysis.Competitors[i]
		if c.HelpArticleURL != nil || c.HelpSearchQuery == "" {
			continue
		}

		link, err := s.resolver.Resolve(ctx, c.Name, c.HelpSearchQuery)
		if err != nil {
			slog.Debug("help link resolution failed",
				"competitor", c.Name,
				"query", c.HelpSearchQuery,
				"error", err,
			)
			continue
		}
		if link == nil {
			continue
		}

		url := link.URL
		c.HelpArticleURL = &url
		if link.Title != "" {
			c.HelpArticleTitle = link.Title
		}
	}
}

func description(feature *sheet.FeatureRecord) string {
	if feature.Description == nil {
		return ""
	}
	return *feature.Description
}
