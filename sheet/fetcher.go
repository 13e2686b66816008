package sheet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Fetcher получает актуальный список фич из опубликованной Google-таблицы.
// При любой неудаче (сеть, не-2xx статус, HTML вместо CSV, ноль пригодных
// строк) откатывается к локальному seed-файлу. Повторных попыток и
// кэширования нет: таблица и есть база данных.
type Fetcher struct {
	url        string
	seedPath   string
	httpClient *http.Client
}

// FetcherConfig конфигурация фетчера
type FetcherConfig struct {
	URL        string
	SeedPath   string
	Timeout    time.Duration
	HTTPClient *http.Client // Необязательный, для тестов
}

// NewFetcher создает новый фетчер таблицы
func NewFetcher(config FetcherConfig) *Fetcher {
	if config.Timeout == 0 {
		config.Timeout = 15 * time.Second
	}
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}
	return &Fetcher{
		url:        config.URL,
		seedPath:   config.SeedPath,
		httpClient: httpClient,
	}
}

// FetchRows возвращает нормализованные строки таблицы.
// Ошибка возвращается только когда и таблица недоступна, и fallback seed
// отсутствует, нечитаем или пуст; во всех остальных случаях вызывающий
// получает непустой список без ошибки.
func (f *Fetcher) FetchRows(ctx context.Context) ([]FeatureRow, error) {
	rows, err := f.fetchFromSheet(ctx)
	if err == nil && len(rows) > 0 {
		return rows, nil
	}
	if err == nil {
		err = fmt.Errorf("sheet contains no valid feature rows")
	}
	log.Printf("Sheet fetch failed, using fallback seed: %v", err)

	seed, seedErr := f.loadSeed()
	if seedErr != nil {
		return nil, fmt.Errorf("sheet unavailable (%v) and fallback seed unreadable: %w", err, seedErr)
	}
	if len(seed) == 0 {
		return nil, fmt.Errorf("sheet unavailable (%v) and fallback seed is empty", err)
	}
	return seed, nil
}

// fetchFromSheet скачивает и нормализует CSV-экспорт таблицы
func (f *Fetcher) fetchFromSheet(ctx context.Context) ([]FeatureRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	text := decodeBody(body)
	if strings.HasPrefix(strings.TrimLeft(text, " \t\r\n"), "<") {
		return nil, fmt.Errorf("sheet not published to web (got HTML instead of CSV)")
	}

	return NormalizeRows(ParseTable(text)), nil
}

// decodeBody срезает BOM и декодирует тело ответа в UTF-8.
// BOMOverride распознаёт UTF-8 и UTF-16 маркеры, без маркера текст читается
// как UTF-8.
func decodeBody(body []byte) string {
	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), body)
	if err != nil {
		return strings.TrimPrefix(string(body), "\ufeff")
	}
	return string(decoded)
}

// loadSeed читает fallback-список фич из seed-файла.
// Файл уже в нормализованной форме: по одной записи на фичу со списком
// запросивших клиентов.
func (f *Fetcher) loadSeed() ([]FeatureRow, error) {
	data, err := os.ReadFile(f.seedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", f.seedPath, err)
	}

	var rows []FeatureRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", f.seedPath, err)
	}
	return rows, nil
}
