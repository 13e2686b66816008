// Package report собирает выходные документы: самодостаточный HTML use-case
// отчёт (для печати в PDF) и экспорт списка фич в XLSX/CSV/JSON.
package report

import (
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"featureboard/ai"
	"featureboard/sheet"
)

// competitorRow строка таблицы конкурентов с уже вычисленной ссылкой
type competitorRow struct {
	Name       string
	Term       string
	HowItWorks string
	LinkURL    string
	LinkText   string
}

type documentData struct {
	Feature          sheet.FeatureRecord
	Description      string
	Module           string
	PointOfContact   string
	RequestedClients string
	Similarities     []string
	Differences      []string
	Competitors      []competitorRow
	UseCase          *ai.UseCaseSections
}

// BuildUseCaseDocument собирает HTML-документ use case для фичи.
// Анализ конкурентов необязателен; при nil-секциях use case используются
// значения по умолчанию, чтобы документ всегда был полным.
func BuildUseCaseDocument(feature sheet.FeatureRecord, analysis *ai.CompetitorAnalysis, useCase *ai.UseCaseSections) (string, error) {
	if useCase == nil {
		useCase = &ai.UseCaseSections{
			Objective:      "Allow the organization to benefit from the capability described above.",
			Actors:         "HR Admin, relevant employees (depending on feature).",
			Preconditions:  "Feature is configured and enabled.",
			BasicFlow:      []string{"User performs the main actions supported by this feature.", "System processes and reflects the outcome."},
			Postconditions: "Desired outcome is achieved and reflected in the system.",
		}
	}

	data := documentData{
		Feature:          feature,
		Description:      orDash(feature.Description),
		Module:           dashIfEmpty(feature.Module),
		PointOfContact:   orDash(feature.PointOfContact),
		RequestedClients: orDash(feature.RequestedClients),
		UseCase:          useCase,
	}
	if analysis != nil {
		data.Similarities = analysis.Similarities
		data.Differences = analysis.Differences
		for _, c := range analysis.Competitors {
			data.Competitors = append(data.Competitors, buildCompetitorRow(c))
		}
	}

	var sb strings.Builder
	if err := documentTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render use case document: %w", err)
	}
	return sb.String(), nil
}

// buildCompetitorRow вычисляет ссылку для строки таблицы: прямая help-ссылка,
// если она есть, иначе поисковый запрос Google
func buildCompetitorRow(c ai.Competitor) competitorRow {
	row := competitorRow{
		Name:       c.Name,
		Term:       dashIfEmpty(c.Term),
		HowItWorks: dashIfEmpty(c.HowItWorks),
	}

	searchQuery := strings.TrimSpace(c.HelpSearchQuery)
	if searchQuery == "" {
		searchQuery = strings.TrimSpace(fmt.Sprintf("%s %s documentation", c.Name, c.Term))
	}

	if c.HelpArticleURL != nil && strings.HasPrefix(*c.HelpArticleURL, "http") {
		row.LinkURL = *c.HelpArticleURL
		row.LinkText = "Help article"
	} else {
		row.LinkURL = "https://www.google.com/search?q=" + url.QueryEscape(searchQuery)
		row.LinkText = "Search docs"
	}
	if title := strings.TrimSpace(c.HelpArticleTitle); title != "" && title != "Search docs" {
		row.LinkText = title
	}
	return row
}

func dashIfEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}

func orDash(s *string) string {
	if s == nil {
		return "—"
	}
	return dashIfEmpty(*s)
}

var documentTemplate = template.Must(template.New("usecase").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Use case: {{.Feature.Name}}</title>
  <style>
    body { font-family: system-ui, sans-serif; max-width: 800px; margin: 2rem auto; padding: 0 1rem; color: #1a1a1a; line-height: 1.5; }
    h1 { font-size: 1.5rem; border-bottom: 2px solid #f97316; padding-bottom: 0.5rem; }
    h2 { font-size: 1.15rem; margin-top: 1.5rem; color: #374151; }
    table { width: 100%; border-collapse: collapse; margin: 0.5rem 0; font-size: 0.9rem; }
    th, td { border: 1px solid #e5e7eb; padding: 0.5rem 0.75rem; text-align: left; }
    a { color: #ea580c; text-decoration: none; }
    a:hover { text-decoration: underline; }
    th { background: #f3f4f6; font-weight: 600; }
    .meta { color: #6b7280; font-size: 0.9rem; margin: 0.5rem 0; }
    .section { margin-bottom: 1.5rem; }
    ul { margin: 0.5rem 0; padding-left: 1.5rem; }
    @media print { body { margin: 1rem; } }
  </style>
</head>
<body>
  <h1>Use case: {{.Feature.Name}}</h1>
  <div class="meta">Module: {{.Module}} | Point of contact: {{.PointOfContact}} | Requested clients: {{.RequestedClients}}</div>

  <div class="section">
    <h2>Feature description</h2>
    <p>{{.Description}}</p>
  </div>
{{if or .Competitors .Similarities .Differences}}
  <div class="section">
    <h2>Competitor analysis</h2>
    {{if .Similarities}}<p><strong>Similarities</strong> (vs competitors):</p><ul>{{range .Similarities}}<li>{{.}}</li>{{end}}</ul>{{end}}
    {{if .Differences}}<p><strong>Differences</strong> (vs competitors):</p><ul>{{range .Differences}}<li>{{.}}</li>{{end}}</ul>{{end}}
    {{if .Competitors}}<p><strong>Competitor mapping</strong></p><table>
      <thead><tr><th>Competitor</th><th>Term</th><th>How it works</th><th>Help / links</th></tr></thead>
      <tbody>{{range .Competitors}}<tr><td>{{.Name}}</td><td>{{.Term}}</td><td>{{.HowItWorks}}</td><td><a href="{{.LinkURL}}" target="_blank" rel="noopener">{{.LinkText}}</a></td></tr>{{end}}</tbody>
    </table>{{end}}
  </div>
{{end}}
  <div class="section">
    <h2>Use case</h2>
    <p><strong>Objective:</strong> {{.UseCase.Objective}}</p>
    <p><strong>Actors:</strong> {{.UseCase.Actors}}</p>
    <p><strong>Preconditions:</strong> {{.UseCase.Preconditions}}</p>
    <p><strong>Basic flow:</strong></p>
    <ol>{{range .UseCase.BasicFlow}}<li>{{.}}</li>{{end}}</ol>
    <p><strong>Postconditions:</strong> {{.UseCase.Postconditions}}</p>
    {{if .UseCase.AcceptanceCriteria}}<p><strong>Acceptance criteria:</strong></p><ul>{{range .UseCase.AcceptanceCriteria}}<li>{{.}}</li>{{end}}</ul>{{end}}
  </div>

  <p style="margin-top:2rem;color:#9ca3af;font-size:0.85rem;">Generated by Feature Priority Dashboard. Save as PDF via File → Print → Save as PDF.</p>
</body>
</html>`))
