package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// UseCaseSections секции use-case документа для одной фичи
type UseCaseSections struct {
	Objective          string   `json:"objective"`
	Actors             string   `json:"actors"`
	Preconditions      string   `json:"preconditions"`
	BasicFlow          []string `json:"basicFlow"`
	Postconditions     string   `json:"postconditions"`
	AcceptanceCriteria []string `json:"acceptanceCriteria"`
}

// GenerateUseCaseSections генерирует описательный use case для фичи.
// Ответ модели чинится по-полевому: каждое отсутствующее или пустое поле
// заменяется осмысленным значением по умолчанию.
func (s *Service) GenerateUseCaseSections(ctx context.Context, requestID, featureName, featureDescription string) (*UseCaseSections, error) {
	if !s.client.Enabled() {
		return defaultUseCase(featureName), nil
	}

	prompt := fmt.Sprintf(`You are a business analyst writing a use case for an HR software feature. Write a clear, descriptive use case for the following feature. Be specific to this feature (refer to "%s" and its description), not generic.

Feature: %s
Description: %s

Reply in JSON only with this exact structure (use arrays for basicFlow and acceptanceCriteria):
{
  "objective": "1-2 sentences describing the business goal of this use case",
  "actors": "Comma-separated list of who performs this use case (e.g. HR Admin, Manager, Employee)",
  "preconditions": "What must be true before the use case can start (system state, permissions, data)",
  "basicFlow": ["Step 1 in imperative mood", "Step 2", "Step 3", "..."],
  "postconditions": "What is true after a successful run (system state, data updated)",
  "acceptanceCriteria": ["Criterion 1", "Criterion 2", "..."]
}
Write 4-8 steps for basicFlow and 3-5 acceptance criteria. Be concrete and specific to this feature.`,
		featureName, featureName, featureDescription)

	content, err := s.client.CompleteJSON(ctx, requestID, prompt)
	if err != nil {
		return nil, err
	}

	return RepairUseCase(content, featureName), nil
}

// RepairUseCase восстанавливает структуру use case из сырого ответа модели
func RepairUseCase(content, featureName string) *UseCaseSections {
	var raw struct {
		Objective          string          `json:"objective"`
		Actors             string          `json:"actors"`
		Preconditions      string          `json:"preconditions"`
		BasicFlow          flexibleStrings `json:"basicFlow"`
		Postconditions     string          `json:"postconditions"`
		AcceptanceCriteria flexibleStrings `json:"acceptanceCriteria"`
	}
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return defaultUseCase(featureName)
	}

	sections := defaultUseCase(featureName)
	if s := strings.TrimSpace(raw.Objective); s != "" {
		sections.Objective = s
	}
	if s := strings.TrimSpace(raw.Actors); s != "" {
		sections.Actors = s
	}
	if s := strings.TrimSpace(raw.Preconditions); s != "" {
		sections.Preconditions = s
	}
	if flow := raw.BasicFlow.clean(); len(flow) > 0 {
		sections.BasicFlow = flow
	}
	if s := strings.TrimSpace(raw.Postconditions); s != "" {
		sections.Postconditions = s
	}
	if criteria := raw.AcceptanceCriteria.clean(); len(criteria) > 0 {
		sections.AcceptanceCriteria = criteria
	}
	return sections
}

// defaultUseCase запасной use case, когда модель недоступна или её ответ
// нечитаем
func defaultUseCase(featureName string) *UseCaseSections {
	return &UseCaseSections{
		Objective:     fmt.Sprintf("Enable the organization to use the capability: %s.", featureName),
		Actors:        "HR Administrator, relevant employees (role depends on feature).",
		Preconditions: "Feature is enabled and configured in the system; user has appropriate permissions.",
		BasicFlow: []string{
			"User navigates to the relevant module or screen.",
			"User performs the actions required for this feature according to the product design.",
			"System validates input and applies business rules.",
			"Outcome is saved and reflected in the system.",
		},
		Postconditions: "The intended outcome is achieved and data is consistent; any dependent processes are updated as needed.",
		AcceptanceCriteria: []string{
			"Feature behaves as described in the feature description.",
			"User can complete the flow without errors under valid input.",
			"Results are visible and auditable where applicable.",
		},
	}
}
