// Package server собирает HTTP-сервер дашборда приоритизации фич:
// Gin-роутер, middleware, сервисы и их зависимости.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"featureboard/ai"
	"featureboard/database"
	"featureboard/helpsearch"
	"featureboard/internal/config"
	"featureboard/scoring"
	"featureboard/server/handlers"
	"featureboard/server/middleware"
	"featureboard/server/services"
	"featureboard/sheet"
)

// Server HTTP-сервер дашборда
type Server struct {
	config     *config.Config
	engine     *gin.Engine
	httpServer *http.Server
	db         *database.DB
}

// NewServer создает сервер со всеми зависимостями из конфигурации.
// sqlite открывается только при заданном DatabasePath: основной путь
// работает без базы, таблица и есть база данных.
func NewServer(cfg *config.Config) (*Server, error) {
	fetcher := sheet.NewFetcher(sheet.FetcherConfig{
		URL:      cfg.SheetURL(),
		SeedPath: cfg.SeedPath,
		Timeout:  cfg.FetchTimeout,
	})

	calc := scoring.NewCalculator(cfg.TierWeights)

	var aiClient *ai.Client
	if cfg.OpenAIAPIKey != "" {
		aiClient = ai.NewClient(ai.ClientConfig{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			Timeout: cfg.AITimeout,
		})
	}
	aiService := ai.NewService(aiClient, cfg.Competitors)

	var resolver services.LinkResolver
	if cfg.HelpSearchEnabled {
		resolver = helpsearch.NewResolver(helpsearch.NewClient(helpsearch.ClientConfig{}))
	}

	featureService := services.NewFeatureService(fetcher)
	analysisService := services.NewAnalysisService(aiService, resolver)

	h := &handlers.Handlers{
		Features: handlers.NewFeatureHandler(featureService),
		Analysis: handlers.NewAnalysisHandler(featureService, analysisService),
		Export:   handlers.NewExportHandler(featureService),
		System:   handlers.NewSystemHandler(),
	}

	var db *database.DB
	if cfg.DatabasePath != "" {
		opened, err := database.NewDBWithConfig(cfg.DatabasePath, database.DBConfig{
			MaxOpenConns:    cfg.MaxOpenConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			ConnMaxLifetime: cfg.ConnMaxLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		db = opened
		h.Admin = handlers.NewAdminHandler(services.NewAdminService(db, fetcher, calc))
	}

	engine := buildEngine(h, cfg)

	return &Server{
		config: cfg,
		engine: engine,
		db:     db,
	}, nil
}

// buildEngine собирает Gin-роутер с middleware и маршрутами
func buildEngine(h *handlers.Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.GinRecoveryMiddleware())
	engine.Use(middleware.GinRequestIDMiddleware())
	engine.Use(middleware.GinLoggerMiddleware())
	engine.Use(middleware.GinCORSMiddleware())
	engine.Use(middleware.GinGzipMiddleware())

	handlers.RegisterRoutes(engine, h)
	handlers.RegisterSwaggerRoutes(engine, fmt.Sprintf("localhost:%s", cfg.Port))

	return engine
}

// Engine возвращает Gin-роутер, используется в тестах
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start запускает HTTP сервер и блокируется до его остановки
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute, // AI-запросы и экспорт могут быть долгими
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting HTTP server on %s...", addr)
	log.Printf("API доступно по адресу: http://localhost%s/api", addr)
	log.Printf("Swagger UI: http://localhost%s/swagger/index.html", addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown останавливает сервер и закрывает базу данных
func (s *Server) Shutdown(ctx context.Context) error {
	log.Printf("Останавливаем HTTP сервер...")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			log.Printf("Ошибка закрытия базы данных: %v", err)
		}
	}

	log.Printf("Сервер остановлен")
	return nil
}
