package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"featureboard/scoring"
)

// StoredFeature фича из локальной БД вместе с последним рассчитанным скором
type StoredFeature struct {
	ID               int     `json:"id"`
	Module           string  `json:"module"`
	Name             string  `json:"name"`
	Description      *string `json:"description"`
	PointOfContact   *string `json:"point_of_contact"`
	WeightedScore    float64 `json:"weighted_score"`
	TotalRequests    int     `json:"total_requests"`
	TierBreakdown    *string `json:"tier_breakdown"`
	RequestedClients *string `json:"requested_clients"`
	CalculatedAt     *string `json:"calculated_at"`
}

// UpsertFeature добавляет фичу, если пары (module, name) ещё нет, и возвращает её id
func (db *DB) UpsertFeature(module, name, description, pointOfContact string) (int, error) {
	_, err := db.conn.Exec(`
		INSERT OR IGNORE INTO features (module, name, description, point_of_contact)
		VALUES (?, ?, NULLIF(?, ''), NULLIF(?, ''))
	`, module, name, description, pointOfContact)
	if err != nil {
		return 0, fmt.Errorf("failed to insert feature: %w", err)
	}

	var id int
	err = db.conn.QueryRow(`SELECT id FROM features WHERE module = ? AND name = ?`, module, name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve feature id: %w", err)
	}
	return id, nil
}

// InsertClientRequest добавляет запрос клиента на фичу
func (db *DB) InsertClientRequest(featureID int, tier string, count int, clientName, source string) error {
	if count < 1 {
		count = 1
	}
	_, err := db.conn.Exec(`
		INSERT INTO client_requests (feature_id, client_tier, request_count, client_name, source)
		VALUES (?, ?, ?, NULLIF(?, ''), NULLIF(?, ''))
	`, featureID, tier, count, clientName, source)
	if err != nil {
		return fmt.Errorf("failed to insert client request: %w", err)
	}
	return nil
}

// HasClientRequests сообщает, есть ли у фичи хотя бы один запрос клиента
func (db *DB) HasClientRequests(featureID int) (bool, error) {
	var one int
	err := db.conn.QueryRow(`SELECT 1 FROM client_requests WHERE feature_id = ? LIMIT 1`, featureID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// TierTotals возвращает суммарное число запросов по каждому уровню подписки
// для фичи (SELECT ... GROUP BY client_tier)
func (db *DB) TierTotals(featureID int) ([]scoring.ClientRequest, error) {
	rows, err := db.conn.Query(`
		SELECT client_tier, SUM(request_count) AS total
		FROM client_requests
		WHERE feature_id = ?
		GROUP BY client_tier
	`, featureID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tier totals: %w", err)
	}
	defer rows.Close()

	var totals []scoring.ClientRequest
	for rows.Next() {
		req := scoring.ClientRequest{FeatureID: featureID}
		if err := rows.Scan(&req.ClientTier, &req.RequestCount); err != nil {
			return nil, fmt.Errorf("failed to scan tier total: %w", err)
		}
		totals = append(totals, req)
	}
	return totals, rows.Err()
}

// SaveScore сохраняет рассчитанный скор фичи (upsert по feature_id)
func (db *DB) SaveScore(featureID int, result scoring.Result) error {
	breakdown, err := json.Marshal(result.Breakdown)
	if err != nil {
		return fmt.Errorf("failed to marshal tier breakdown: %w", err)
	}

	_, err = db.conn.Exec(`
		INSERT INTO scores (feature_id, weighted_score, total_requests, tier_breakdown, calculated_at)
		VALUES (?, ?, ?, ?, datetime('now'))
		ON CONFLICT(feature_id) DO UPDATE SET
			weighted_score = excluded.weighted_score,
			total_requests = excluded.total_requests,
			tier_breakdown = excluded.tier_breakdown,
			calculated_at = excluded.calculated_at
	`, featureID, result.WeightedScore, result.TotalRequests, string(breakdown))
	if err != nil {
		return fmt.Errorf("failed to save score: %w", err)
	}
	return nil
}

// FeatureIDs возвращает id всех фич
func (db *DB) FeatureIDs() ([]int, error) {
	rows, err := db.conn.Query(`SELECT id FROM features ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query feature ids: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ListFeatures возвращает фичи с последними скорами, по убыванию скора
func (db *DB) ListFeatures() ([]StoredFeature, error) {
	rows, err := db.conn.Query(`
		SELECT f.id, f.module, f.name, f.description, f.point_of_contact,
		       COALESCE(s.weighted_score, 0), COALESCE(s.total_requests, 0),
		       s.tier_breakdown, s.calculated_at,
		       (SELECT GROUP_CONCAT(client_name, ', ')
		        FROM client_requests cr
		        WHERE cr.feature_id = f.id AND cr.client_name IS NOT NULL)
		FROM features f
		LEFT JOIN scores s ON s.feature_id = f.id
		ORDER BY COALESCE(s.weighted_score, 0) DESC, f.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query features: %w", err)
	}
	defer rows.Close()

	var features []StoredFeature
	for rows.Next() {
		var f StoredFeature
		var description, poc, breakdown, calculatedAt, clients sql.NullString
		if err := rows.Scan(&f.ID, &f.Module, &f.Name, &description, &poc,
			&f.WeightedScore, &f.TotalRequests, &breakdown, &calculatedAt, &clients); err != nil {
			return nil, fmt.Errorf("failed to scan feature: %w", err)
		}
		f.Description = nullString(description)
		f.PointOfContact = nullString(poc)
		f.TierBreakdown = nullString(breakdown)
		f.CalculatedAt = nullString(calculatedAt)
		f.RequestedClients = nullString(clients)
		features = append(features, f)
	}
	return features, rows.Err()
}
