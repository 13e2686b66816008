package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	var errors []string

	// Валидация порта
	if c.Port == "" {
		errors = append(errors, "port is required")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("invalid port: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("port must be between 1 and 65535, got %d", port))
		}
	}

	// Валидация источника данных
	if c.SheetExportURL == "" {
		if c.SheetID == "" {
			errors = append(errors, "sheet id is required when no explicit export url is set")
		}
		if c.SheetGID == "" {
			errors = append(errors, "sheet gid is required when no explicit export url is set")
		}
	}

	// Валидация путей
	if c.SeedPath == "" {
		errors = append(errors, "seed path is required")
	}
	if c.DatabasePath == "" {
		errors = append(errors, "database path is required")
	}

	// Валидация весов
	for tier, weight := range c.TierWeights {
		if weight < 0 {
			errors = append(errors, fmt.Sprintf("tier weight for %q must be non-negative, got %d", tier, weight))
		}
	}

	// Валидация таймаутов
	if c.AITimeout < time.Second {
		errors = append(errors, "ai timeout must be at least 1 second")
	}
	if c.FetchTimeout < time.Second {
		errors = append(errors, "sheet fetch timeout must be at least 1 second")
	}

	// Валидация connection pooling
	if c.MaxOpenConns < 1 {
		errors = append(errors, "max open connections must be at least 1")
	}
	if c.MaxIdleConns < 1 {
		errors = append(errors, "max idle connections must be at least 1")
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		errors = append(errors, "max idle connections cannot be greater than max open connections")
	}
	if c.ConnMaxLifetime < time.Second {
		errors = append(errors, "connection max lifetime must be at least 1 second")
	}

	if len(errors) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errors, "; "))
	}

	return nil
}
