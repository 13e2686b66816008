// Package services содержит бизнес-логику между HTTP-обработчиками и
// источниками данных (Google Sheets, sqlite, AI-провайдер).
package services

import (
	"context"
	"sort"
	"strings"

	"featureboard/sheet"
	apperrors "featureboard/server/errors"
)

// SheetUnavailableMessage сообщение для клиента, когда ни таблица, ни seed недоступны
const SheetUnavailableMessage = "Could not load feature list from Google Sheet. Publish the sheet to web (File > Share > Publish to web)."

// RequestEntry один клиентский запрос фичи для GET /features/:id/requests
type RequestEntry struct {
	Client string `json:"client"`
	Tier   string `json:"tier"`
	Count  int    `json:"count"`
}

// FeatureService собирает список фич из таблицы на каждый запрос.
// Таблица и есть база данных: никакого кэширования между запросами.
type FeatureService struct {
	fetcher *sheet.Fetcher
}

// NewFeatureService создает сервис фич
func NewFeatureService(fetcher *sheet.Fetcher) *FeatureService {
	return &FeatureService{fetcher: fetcher}
}

// List возвращает список фич с фильтром по модулю и сортировкой.
// sortKey: "score" (по умолчанию, убывание), "name", "module"
func (s *FeatureService) List(ctx context.Context, module, sortKey string) ([]sheet.FeatureRecord, error) {
	features, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if module != "" {
		filtered := make([]sheet.FeatureRecord, 0, len(features))
		for _, f := range features {
			if f.Module == module {
				filtered = append(filtered, f)
			}
		}
		features = filtered
	}

	sortFeatures(features, sortKey)
	return features, nil
}

// Modules возвращает отсортированный список уникальных модулей
func (s *FeatureService) Modules(ctx context.Context) ([]string, error) {
	features, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	modules := make([]string, 0)
	for _, f := range features {
		if !seen[f.Module] {
			seen[f.Module] = true
			modules = append(modules, f.Module)
		}
	}
	sort.Strings(modules)
	return modules, nil
}

// Get возвращает фичу по её позиции в таблице (нумерация с 1)
func (s *FeatureService) Get(ctx context.Context, id int) (*sheet.FeatureRecord, error) {
	features, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range features {
		if features[i].ID == id {
			return &features[i], nil
		}
	}
	return nil, apperrors.NewNotFoundError("Feature not found", nil)
}

// Requests возвращает список клиентских запросов фичи.
// Каждый клиент из таблицы считается одним запросом professional-уровня.
func (s *FeatureService) Requests(ctx context.Context, id int) ([]RequestEntry, error) {
	feature, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	clients := feature.Clients()
	entries := make([]RequestEntry, 0, len(clients))
	for _, client := range clients {
		entries = append(entries, RequestEntry{
			Client: client,
			Tier:   "professional",
			Count:  1,
		})
	}
	return entries, nil
}

// Count возвращает число фич в таблице
func (s *FeatureService) Count(ctx context.Context) (int, error) {
	features, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(features), nil
}

func (s *FeatureService) load(ctx context.Context) ([]sheet.FeatureRecord, error) {
	rows, err := s.fetcher.FetchRows(ctx)
	if err != nil {
		return nil, apperrors.NewBadGatewayError(SheetUnavailableMessage, err)
	}
	return sheet.AssembleFeatureList(rows), nil
}

// sortFeatures сортирует список стабильно: при равных ключах порядок таблицы сохраняется
func sortFeatures(features []sheet.FeatureRecord, sortKey string) {
	switch sortKey {
	case "name":
		sort.SliceStable(features, func(i, j int) bool {
			return strings.ToLower(features[i].Name) < strings.ToLower(features[j].Name)
		})
	case "module":
		sort.SliceStable(features, func(i, j int) bool {
			mi, mj := strings.ToLower(features[i].Module), strings.ToLower(features[j].Module)
			if mi != mj {
				return mi < mj
			}
			return strings.ToLower(features[i].Name) < strings.ToLower(features[j].Name)
		})
	default: // score
		sort.SliceStable(features, func(i, j int) bool {
			return features[i].WeightedScore > features[j].WeightedScore
		})
	}
}
