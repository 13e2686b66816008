package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// CustomerInsights сводка по клиентам, запросившим фичу
type CustomerInsights struct {
	OK          bool     `json:"ok"`
	Stub        bool     `json:"stub,omitempty"`
	FeatureName string   `json:"featureName"`
	Summary     string   `json:"summary"`
	Themes      []string `json:"themes"`
	Positioning string   `json:"positioning"`
}

// GenerateCustomerInsights строит сводку: зачем клиенты просят фичу и как
// её позиционировать. Без API-ключа возвращает заглушку.
func (s *Service) GenerateCustomerInsights(ctx context.Context, requestID, featureName, featureDescription string, clients []string) (*CustomerInsights, error) {
	if !s.client.Enabled() {
		return &CustomerInsights{
			Stub:        true,
			FeatureName: featureName,
			Summary:     fmt.Sprintf("%d customer(s) requested %q. Configure OPENAI_API_KEY for AI-generated insights.", len(clients), featureName),
			Themes:      []string{},
			Positioning: "",
		}, nil
	}

	clientList := "none listed"
	if len(clients) > 0 {
		clientList = strings.Join(clients, ", ")
	}

	prompt := fmt.Sprintf(`You are a product manager for HR software. For the feature below, summarize why the listed customers likely requested it and how to position it.

Feature: %s
Description: %s
Requesting customers: %s

Reply in JSON only:
{ "summary": "2-3 sentences", "themes": ["short theme", ...], "positioning": "1-2 sentences" }`,
		featureName, featureDescription, clientList)

	content, err := s.client.CompleteJSON(ctx, requestID, prompt)
	if err != nil {
		return nil, err
	}

	insights := RepairInsights(content, featureName)
	insights.OK = true
	return insights, nil
}

// RepairInsights чинит структурные дефекты ответа модели значениями по умолчанию
func RepairInsights(content, featureName string) *CustomerInsights {
	var raw struct {
		Summary     string          `json:"summary"`
		Themes      flexibleStrings `json:"themes"`
		Positioning string          `json:"positioning"`
	}
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return &CustomerInsights{
			FeatureName: featureName,
			Summary:     strings.TrimSpace(content),
			Themes:      []string{},
			Positioning: "",
		}
	}

	insights := &CustomerInsights{
		FeatureName: featureName,
		Summary:     strings.TrimSpace(raw.Summary),
		Themes:      raw.Themes.clean(),
		Positioning: strings.TrimSpace(raw.Positioning),
	}
	if insights.Summary == "" {
		insights.Summary = fmt.Sprintf("Customer insights for %q.", featureName)
	}
	if insights.Themes == nil {
		insights.Themes = []string{}
	}
	return insights
}
