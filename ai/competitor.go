package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Service операции AI-анализа поверх клиента chat-completions
type Service struct {
	client      *Client
	competitors []string
}

// NewService создает AI-сервис. При nil-клиенте или пустом API-ключе все
// операции возвращают заглушки.
func NewService(client *Client, competitors []string) *Service {
	if len(competitors) == 0 {
		competitors = []string{"BambooHR", "Workday", "HiBOB", "SAP SuccessFactors", "ADP"}
	}
	return &Service{client: client, competitors: competitors}
}

// CompetitorMapping соответствие фичи терминам конкурентов
type CompetitorMapping struct {
	OK          bool              `json:"ok"`
	Stub        bool              `json:"stub,omitempty"`
	Competitors map[string]string `json:"competitors"`
}

// Competitor запись анализа одного конкурента
type Competitor struct {
	Name             string  `json:"name"`
	Term             string  `json:"term"`
	HowItWorks       string  `json:"howItWorks"`
	HelpArticleTitle string  `json:"helpArticleTitle"`
	HelpArticleURL   *string `json:"helpArticleUrl"`
	HelpSearchQuery  string  `json:"helpSearchQuery"`
}

// CompetitorAnalysis полный анализ конкурентов для одной фичи
type CompetitorAnalysis struct {
	OK                 bool         `json:"ok"`
	Stub               bool         `json:"stub,omitempty"`
	FeatureName        string       `json:"featureName"`
	FeatureDescription string       `json:"featureDescription"`
	Competitors        []Competitor `json:"competitors"`
	Similarities       []string     `json:"similarities"`
	Differences        []string     `json:"differences"`
}

// MapToCompetitorTerms возвращает для фичи ближайший термин каждого конкурента
func (s *Service) MapToCompetitorTerms(ctx context.Context, requestID, featureName, featureDescription string) (*CompetitorMapping, error) {
	if !s.client.Enabled() {
		competitors := make(map[string]string, len(s.competitors))
		for _, c := range s.competitors {
			competitors[c] = fmt.Sprintf("%s equivalent of %q", c, featureName)
		}
		return &CompetitorMapping{OK: false, Stub: true, Competitors: competitors}, nil
	}

	prompt := fmt.Sprintf(`You are an HR software expert. For the HR product feature below, give the exact or closest feature name/term used by each competitor. Reply with a short phrase per competitor, nothing else.

Feature: %s
Description: %s

Competitors: %s

Reply in JSON only, one key per competitor, e.g. {"BambooHR":"Time Off Restrictions","Workday":"Leave Blackout Dates",...}`,
		featureName, featureDescription, strings.Join(s.competitors, ", "))

	content, err := s.client.CompleteJSON(ctx, requestID, prompt)
	if err != nil {
		return nil, err
	}

	competitors := make(map[string]string)
	if err := json.Unmarshal([]byte(content), &competitors); err != nil {
		// Нечитаемый ответ сохраняем как есть, чтобы не терять данные
		competitors = map[string]string{"raw": content}
	}
	return &CompetitorMapping{OK: true, Competitors: competitors}, nil
}

// GenerateCompetitorAnalysis строит анализ конкурентов: сходства, отличия и
// таблицу реализаций с ссылками на документацию. Структурные дефекты ответа
// модели чинятся локально значениями по умолчанию.
func (s *Service) GenerateCompetitorAnalysis(ctx context.Context, requestID, featureName, featureDescription string) (*CompetitorAnalysis, error) {
	mapping, err := s.MapToCompetitorTerms(ctx, requestID, featureName, featureDescription)
	if err != nil {
		return nil, err
	}

	if !s.client.Enabled() {
		return s.stubAnalysis(featureName, featureDescription, mapping.Competitors), nil
	}

	var termLines []string
	for name, term := range mapping.Competitors {
		termLines = append(termLines, fmt.Sprintf("%s: %s", name, term))
	}
	sort.Strings(termLines)

	prompt := fmt.Sprintf(`For the HR product feature "%s" (%s), and the competitor terms below:
1. Write 1-2 sentences per competitor on how that product implements this capability. Be factual and concise.
2. For EACH competitor you MUST provide: helpArticleTitle (a short title for the relevant help/doc page), helpSearchQuery (a search phrase to find that doc, e.g. "BambooHR time off restrictions site:help.bamboohr.com"). If you know the exact official help URL, set helpArticleUrl (https only); otherwise use empty string "" for helpArticleUrl. Never leave helpArticleTitle or helpSearchQuery empty.
3. Add a "similarities" array: 2-5 short bullet points on how this product and these competitors are similar for this feature.
4. Add a "differences" array: 2-5 short bullet points on how this product and these competitors differ (scope, configuration, terminology, or limitations).

Competitor terms:
%s

Reply in JSON only. You MUST include "similarities" and "differences" arrays first, then "competitors":
{ "similarities": ["point 1", "point 2"], "differences": ["point 1", "point 2"], "competitors": [
  { "name": "BambooHR", "term": "...", "howItWorks": "...", "helpArticleTitle": "Doc page title", "helpArticleUrl": "https://... or \"\"", "helpSearchQuery": "BambooHR [feature] documentation" }
] }`,
		featureName, featureDescription, strings.Join(termLines, "\n"))

	content, err := s.client.CompleteJSON(ctx, requestID, prompt)
	if err != nil {
		return nil, err
	}

	analysis := RepairAnalysis(content)
	analysis.OK = true
	analysis.FeatureName = featureName
	analysis.FeatureDescription = featureDescription
	return analysis, nil
}

// stubAnalysis детерминированная заглушка анализа без API-ключа
func (s *Service) stubAnalysis(featureName, featureDescription string, terms map[string]string) *CompetitorAnalysis {
	names := make([]string, 0, len(terms))
	for name := range terms {
		names = append(names, name)
	}
	sort.Strings(names)

	competitors := make([]Competitor, 0, len(names))
	for _, name := range names {
		competitors = append(competitors, Competitor{
			Name:             name,
			Term:             terms[name],
			HowItWorks:       "Configured under their HR settings. (Stub: add OPENAI_API_KEY for real analysis.)",
			HelpArticleTitle: "Search docs",
			HelpSearchQuery:  fmt.Sprintf("%s %s help", name, terms[name]),
		})
	}

	return &CompetitorAnalysis{
		OK:                 true,
		Stub:               true,
		FeatureName:        featureName,
		FeatureDescription: featureDescription,
		Competitors:        competitors,
		Similarities:       []string{},
		Differences:        []string{},
	}
}

// rawAnalysis ответ модели до починки: поля могут отсутствовать, иметь не тот
// регистр ключа или не тот тип
type rawAnalysis struct {
	Similarities   flexibleStrings `json:"similarities"`
	SimilaritiesUC flexibleStrings `json:"Similarities"`
	Differences    flexibleStrings `json:"differences"`
	DifferencesUC  flexibleStrings `json:"Differences"`
	Competitors    []struct {
		Name             string `json:"name"`
		Term             string `json:"term"`
		HowItWorks       string `json:"howItWorks"`
		HelpArticleTitle string `json:"helpArticleTitle"`
		HelpArticleURL   string `json:"helpArticleUrl"`
		HelpSearchQuery  string `json:"helpSearchQuery"`
	} `json:"competitors"`
}

// RepairAnalysis восстанавливает структуру анализа из сырого ответа модели:
// отсутствующие массивы становятся пустыми, для каждого конкурента
// гарантируются helpArticleTitle и helpSearchQuery (с синтезированным
// поисковым запросом), helpArticleUrl без префикса http отбрасывается.
func RepairAnalysis(content string) *CompetitorAnalysis {
	var raw rawAnalysis
	// Ошибка разбора оставляет нулевую структуру: всё чинится ниже
	_ = json.Unmarshal([]byte(content), &raw)

	similarities := raw.Similarities
	if len(similarities) == 0 {
		similarities = raw.SimilaritiesUC
	}
	differences := raw.Differences
	if len(differences) == 0 {
		differences = raw.DifferencesUC
	}

	competitors := make([]Competitor, 0, len(raw.Competitors))
	for _, c := range raw.Competitors {
		fallbackQuery := strings.TrimSpace(fmt.Sprintf("%s %s documentation", c.Name, c.Term))

		repaired := Competitor{
			Name:             c.Name,
			Term:             c.Term,
			HowItWorks:       c.HowItWorks,
			HelpArticleTitle: strings.TrimSpace(c.HelpArticleTitle),
			HelpSearchQuery:  strings.TrimSpace(c.HelpSearchQuery),
		}
		if repaired.HelpArticleTitle == "" {
			repaired.HelpArticleTitle = "Search docs"
		}
		if repaired.HelpSearchQuery == "" {
			repaired.HelpSearchQuery = fallbackQuery
		}
		if strings.HasPrefix(c.HelpArticleURL, "http") {
			url := c.HelpArticleURL
			repaired.HelpArticleURL = &url
		}
		competitors = append(competitors, repaired)
	}

	return &CompetitorAnalysis{
		Competitors:  competitors,
		Similarities: similarities.clean(),
		Differences:  differences.clean(),
	}
}

// flexibleStrings список строк, который модель может прислать и одиночной
// строкой
type flexibleStrings []string

func (f *flexibleStrings) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*f = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*f = []string{single}
		return nil
	}
	// Не строка и не массив строк — отбрасываем
	*f = nil
	return nil
}

// clean обрезает пробелы и выкидывает пустые элементы
func (f flexibleStrings) clean() []string {
	out := make([]string, 0, len(f))
	for _, s := range f {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
