package sheet

import (
	"strings"

	"featureboard/scoring"
)

// FeatureRecord запись списка фич в форме, которую потребляет остальная
// система. Инвариант: пара (module, name) уникальна в пределах одного цикла
// синхронизации. WeightedScore и TotalRequests — производные значения,
// пересчитываемые на каждом чтении, а не хранимая истина.
type FeatureRecord struct {
	// ID — позиция строки (с единицы) в текущем цикле чтения таблицы.
	// Не является стабильным ключом между циклами.
	ID               int               `json:"id"`
	Module           string            `json:"module"`
	Name             string            `json:"name"`
	Description      *string           `json:"description"`
	PointOfContact   *string           `json:"point_of_contact"`
	WeightedScore    int               `json:"weighted_score"`
	TotalRequests    int               `json:"total_requests"`
	TierBreakdown    scoring.Breakdown `json:"tier_breakdown"`
	RequestedClients *string           `json:"requested_clients"`
}

// Clients возвращает список запросивших клиентов, разобранный из хранимой
// строки с разделителями-запятыми
func (f *FeatureRecord) Clients() []string {
	if f.RequestedClients == nil {
		return nil
	}
	return SplitClients(*f.RequestedClients)
}

// AssembleFeatureList собирает нормализованные строки в список FeatureRecord.
// Скор здесь считается по числу запросивших клиентов (эффективный вес 1) —
// путь через таблицу не умеет выражать уровень подписки и количество запросов
// на клиента, каждый клиент учитывается один раз как professional.
func AssembleFeatureList(rows []FeatureRow) []FeatureRecord {
	list := make([]FeatureRecord, 0, len(rows))
	for i, row := range rows {
		score := scoring.CountBased(len(row.RequestedClients))
		list = append(list, FeatureRecord{
			ID:               i + 1,
			Module:           row.Module,
			Name:             row.Name,
			Description:      nullable(row.Description),
			PointOfContact:   nullable(row.PointOfContact),
			WeightedScore:    score.WeightedScore,
			TotalRequests:    score.TotalRequests,
			TierBreakdown:    score.Breakdown,
			RequestedClients: nullable(strings.Join(row.RequestedClients, ", ")),
		})
	}
	return list
}

// nullable возвращает nil для пустой строки, чтобы в JSON она сериализовалась
// как null, а не как ""
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
