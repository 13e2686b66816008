package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultTierWeights веса уровней подписки по умолчанию
var DefaultTierWeights = map[string]int{
	"enterprise":   3,
	"professional": 2,
	"starter":      1,
}

// DefaultCompetitors список конкурентов по умолчанию для AI-анализа
var DefaultCompetitors = []string{"BambooHR", "Workday", "HiBOB", "SAP SuccessFactors", "ADP"}

// Config конфигурация сервера
type Config struct {
	// Сервер
	Port string `json:"port"`

	// Google Sheet (источник данных о фичах)
	SheetID        string `json:"sheet_id"`
	SheetGID       string `json:"sheet_gid"`
	SheetExportURL string `json:"sheet_export_url,omitempty"` // Явный override, иначе строится из SheetID/SheetGID

	// Fallback seed (используется при недоступности таблицы)
	SeedPath string `json:"seed_path"`

	// База данных (альтернативный/legacy путь)
	DatabasePath string `json:"database_path"`

	// AI конфигурация
	OpenAIAPIKey string   `json:"openai_api_key"`
	OpenAIModel  string   `json:"openai_model"`
	Competitors  []string `json:"competitors"`

	// Скоринг
	TierWeights map[string]int `json:"tier_weights"`

	// Поиск help-статей конкурентов
	HelpSearchEnabled bool `json:"help_search_enabled"`

	// Таймауты внешних вызовов
	AITimeout    time.Duration `json:"ai_timeout"`
	FetchTimeout time.Duration `json:"fetch_timeout"`

	// Connection pooling
	MaxOpenConns    int           `json:"max_open_conns"`
	MaxIdleConns    int           `json:"max_idle_conns"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime"`
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	config := &Config{
		// Сервер
		Port: getEnv("SERVER_PORT", "4000"),

		// Google Sheet
		SheetID:        getEnv("SHEET_ID", "1y5PNfslFtC8sanhWKTnapd6SqbddF2qzckBA_rDnTdc"),
		SheetGID:       getEnv("SHEET_GID", "1660060315"),
		SheetExportURL: os.Getenv("SHEET_EXPORT_URL"),

		// Fallback seed
		SeedPath: getEnv("SEED_PATH", "data/seed-from-sheet.json"),

		// База данных
		DatabasePath: getEnv("DATABASE_PATH", "data/featureboard.db"),

		// AI конфигурация
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		Competitors:  parseCompetitors(os.Getenv("COMPETITORS")),

		// Скоринг
		TierWeights: parseTierWeights(os.Getenv("SCORE_TIER_WEIGHTS")),

		// Поиск help-статей
		HelpSearchEnabled: getEnvBool("HELPSEARCH_ENABLED", false),

		// Таймауты
		AITimeout:    getEnvDuration("AI_TIMEOUT", 30*time.Second),
		FetchTimeout: getEnvDuration("SHEET_FETCH_TIMEOUT", 15*time.Second),

		// Connection pooling
		MaxOpenConns:    getEnvInt("MAX_OPEN_CONNS", 10),
		MaxIdleConns:    getEnvInt("MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: getEnvDuration("CONN_MAX_LIFETIME", 5*time.Minute),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// SheetURL возвращает URL для экспорта таблицы в CSV
func (c *Config) SheetURL() string {
	if c.SheetExportURL != "" {
		return c.SheetExportURL
	}
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv&gid=%s", c.SheetID, c.SheetGID)
}

// parseTierWeights парсит JSON с весами уровней подписки.
// При пустом или некорректном значении возвращает веса по умолчанию.
func parseTierWeights(raw string) map[string]int {
	if raw == "" {
		return copyWeights(DefaultTierWeights)
	}

	weights := make(map[string]int)
	if err := json.Unmarshal([]byte(raw), &weights); err != nil {
		log.Printf("Invalid SCORE_TIER_WEIGHTS %q, falling back to defaults: %v", raw, err)
		return copyWeights(DefaultTierWeights)
	}
	if len(weights) == 0 {
		return copyWeights(DefaultTierWeights)
	}
	return weights
}

func copyWeights(src map[string]int) map[string]int {
	dst := make(map[string]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// parseCompetitors парсит список конкурентов из строки вида "BambooHR, Workday"
func parseCompetitors(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return append([]string(nil), DefaultCompetitors...)
	}
	parts := strings.Split(raw, ",")
	competitors := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			competitors = append(competitors, p)
		}
	}
	if len(competitors) == 0 {
		return append([]string(nil), DefaultCompetitors...)
	}
	return competitors
}

// getEnv получает значение переменной окружения или значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает целочисленное значение переменной окружения
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
		log.Printf("Invalid value for %s: %s, using default %d", key, value, defaultValue)
	}
	return defaultValue
}

// getEnvBool получает булево значение переменной окружения
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
		log.Printf("Invalid value for %s: %s, using default %v", key, value, defaultValue)
	}
	return defaultValue
}

// getEnvDuration получает duration из переменной окружения
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
		log.Printf("Invalid value for %s: %s, using default %v", key, value, defaultValue)
	}
	return defaultValue
}
