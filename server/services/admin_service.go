package services

import (
	"context"

	"featureboard/database"
	"featureboard/scoring"
	apperrors "featureboard/server/errors"
	"featureboard/sheet"
)

// AdminService обслуживает legacy-путь с sqlite: посев из таблицы и
// пересчет взвешенных оценок по уровням подписки
type AdminService struct {
	db      *database.DB
	fetcher *sheet.Fetcher
	calc    *scoring.Calculator
}

// NewAdminService создает админ-сервис
func NewAdminService(db *database.DB, fetcher *sheet.Fetcher, calc *scoring.Calculator) *AdminService {
	return &AdminService{db: db, fetcher: fetcher, calc: calc}
}

// Seed заполняет sqlite строками из таблицы. Фичи с уже существующими
// клиентскими запросами пропускаются.
func (s *AdminService) Seed(ctx context.Context) (database.SeedResult, error) {
	rows, err := s.fetcher.FetchRows(ctx)
	if err != nil {
		return database.SeedResult{}, apperrors.NewBadGatewayError(SheetUnavailableMessage, err)
	}

	result, err := s.db.SeedFromRows(rows, s.calc)
	if err != nil {
		return database.SeedResult{}, apperrors.WrapError(err, "failed to seed database from sheet")
	}
	return result, nil
}

// ListStored возвращает сохраненные фичи с tier-weighted оценками
func (s *AdminService) ListStored() ([]database.StoredFeature, error) {
	features, err := s.db.ListFeatures()
	if err != nil {
		return nil, apperrors.WrapError(err, "failed to list stored features")
	}
	return features, nil
}

// RecalculateAll пересчитывает оценки всех сохраненных фич
func (s *AdminService) RecalculateAll() (int, error) {
	recalculated, err := s.db.RecalculateAllScores(s.calc)
	if err != nil {
		return 0, apperrors.WrapError(err, "failed to recalculate scores")
	}
	return recalculated, nil
}
