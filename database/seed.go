package database

import (
	"fmt"
	"log"

	"featureboard/scoring"
	"featureboard/sheet"
)

// SeedResult итог сидирования БД из таблицы
type SeedResult struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

// SeedFromRows заполняет БД фичами из нормализованных строк таблицы.
// Каждый запросивший клиент записывается как один запрос уровня professional —
// путь через таблицу не несёт информации об уровне подписки. Фичи, у которых
// уже есть запросы, пропускаются, чтобы повторное сидирование не дублировало
// данные.
func (db *DB) SeedFromRows(rows []sheet.FeatureRow, calc *scoring.Calculator) (SeedResult, error) {
	var result SeedResult

	for _, row := range rows {
		featureID, err := db.UpsertFeature(row.Module, row.Name, row.Description, row.PointOfContact)
		if err != nil {
			return result, fmt.Errorf("failed to upsert feature %q: %w", row.Name, err)
		}

		hasRequests, err := db.HasClientRequests(featureID)
		if err != nil {
			return result, fmt.Errorf("failed to check requests for feature %q: %w", row.Name, err)
		}
		if hasRequests {
			result.Skipped++
			continue
		}

		for _, client := range row.RequestedClients {
			if err := db.InsertClientRequest(featureID, "professional", 1, client, "sheet"); err != nil {
				return result, fmt.Errorf("failed to insert request for feature %q: %w", row.Name, err)
			}
		}

		if _, err := db.RecalculateScore(featureID, calc); err != nil {
			return result, err
		}
		result.Added++
	}

	log.Printf("Seed complete: %d features added, %d skipped (already present)", result.Added, result.Skipped)
	return result, nil
}

// RecalculateScore пересчитывает и сохраняет взвешенный скор фичи по
// текущему набору запросов клиентов
func (db *DB) RecalculateScore(featureID int, calc *scoring.Calculator) (scoring.Result, error) {
	totals, err := db.TierTotals(featureID)
	if err != nil {
		return scoring.Result{}, fmt.Errorf("failed to load tier totals for feature %d: %w", featureID, err)
	}

	result := calc.Score(totals)
	if err := db.SaveScore(featureID, result); err != nil {
		return scoring.Result{}, err
	}
	return result, nil
}

// RecalculateAllScores пересчитывает скоры всех фич и возвращает их количество
func (db *DB) RecalculateAllScores(calc *scoring.Calculator) (int, error) {
	ids, err := db.FeatureIDs()
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		if _, err := db.RecalculateScore(id, calc); err != nil {
			return 0, err
		}
	}
	return len(ids), nil
}
