// Package scoring вычисляет взвешенный приоритет фичи по запросам клиентов.
//
// В системе сосуществуют два определения скора:
//   - путь через Google Sheet: скор равен числу запросивших клиентов
//     (эффективный вес 1, см. CountBased);
//   - путь через локальную БД: скор взвешен по уровню подписки клиента
//     (см. Calculator.Score).
//
// Это сознательно не унифицировано: потребители API могут зависеть от любого
// из двух поведений.
package scoring

import (
	"regexp"
	"strings"
)

// DefaultTierWeights веса уровней подписки по умолчанию
var DefaultTierWeights = map[string]int{
	"enterprise":   3,
	"professional": 2,
	"starter":      1,
}

// unknownTierWeight вес для уровней, отсутствующих в таблице весов
const unknownTierWeight = 1

var whitespaceRe = regexp.MustCompile(`\s+`)

// ClientRequest запрос клиента на фичу
type ClientRequest struct {
	FeatureID    int    `json:"feature_id,omitempty"`
	ClientTier   string `json:"client_tier"`
	RequestCount int    `json:"request_count"`
	ClientName   string `json:"client_name,omitempty"`
}

// TierStat статистика по одному уровню подписки
type TierStat struct {
	Requests int `json:"requests"`
	Weight   int `json:"weight"`
}

// Breakdown разбивка скора по уровням подписки.
// Производное значение для прозрачности и отладки, скор из неё не пересчитывается.
type Breakdown map[string]TierStat

// Result результат расчёта скора для одной фичи
type Result struct {
	WeightedScore int       `json:"weighted_score"`
	TotalRequests int       `json:"total_requests"`
	Breakdown     Breakdown `json:"tier_breakdown"`
}

// Calculator калькулятор взвешенного скора с настраиваемой таблицей весов
type Calculator struct {
	weights map[string]int
}

// NewCalculator создает калькулятор. При nil или пустой таблице весов
// используются веса по умолчанию.
func NewCalculator(weights map[string]int) *Calculator {
	if len(weights) == 0 {
		weights = DefaultTierWeights
	}
	copied := make(map[string]int, len(weights))
	for tier, w := range weights {
		copied[normalizeTier(tier)] = w
	}
	return &Calculator{weights: copied}
}

// TierWeight возвращает вес уровня подписки.
// Имя уровня приводится к нижнему регистру, пробелы заменяются на подчеркивания.
// Неизвестные уровни получают вес 1.
func (c *Calculator) TierWeight(tier string) int {
	if w, ok := c.weights[normalizeTier(tier)]; ok {
		return w
	}
	return unknownTierWeight
}

// Score вычисляет взвешенный скор по множеству запросов клиентов.
// Результат не зависит от порядка запросов: суммирование коммутативно,
// а вес уровня — чистая функция его имени.
func (c *Calculator) Score(requests []ClientRequest) Result {
	totals := make(map[string]int)
	for _, r := range requests {
		totals[r.ClientTier] += r.RequestCount
	}

	result := Result{Breakdown: make(Breakdown, len(totals))}
	for tier, total := range totals {
		w := c.TierWeight(tier)
		result.WeightedScore += total * w
		result.TotalRequests += total
		result.Breakdown[tier] = TierStat{Requests: total, Weight: w}
	}
	return result
}

// CountBased вычисляет скор для пути "таблица как база данных": каждый
// запросивший клиент считается как один запрос уровня professional с
// эффективным весом 1, то есть скор равен числу клиентов.
func CountBased(clientCount int) Result {
	result := Result{
		WeightedScore: clientCount,
		TotalRequests: clientCount,
	}
	if clientCount > 0 {
		result.Breakdown = Breakdown{
			"professional": TierStat{Requests: clientCount, Weight: 1},
		}
	}
	return result
}

func normalizeTier(tier string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(tier)), "_")
}
