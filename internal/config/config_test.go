package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}

	if cfg.Port != "4000" {
		t.Errorf("expected default port 4000, got %s", cfg.Port)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("expected default model gpt-4o-mini, got %s", cfg.OpenAIModel)
	}
	if len(cfg.Competitors) != 5 {
		t.Errorf("expected 5 default competitors, got %v", cfg.Competitors)
	}
	if cfg.TierWeights["enterprise"] != 3 || cfg.TierWeights["professional"] != 2 || cfg.TierWeights["starter"] != 1 {
		t.Errorf("unexpected default tier weights: %v", cfg.TierWeights)
	}
}

func TestConfig_SheetURL(t *testing.T) {
	cfg := &Config{SheetID: "doc123", SheetGID: "42"}
	want := "https://docs.google.com/spreadsheets/d/doc123/export?format=csv&gid=42"
	if got := cfg.SheetURL(); got != want {
		t.Errorf("SheetURL() = %s, want %s", got, want)
	}

	cfg.SheetExportURL = "http://localhost:9000/sheet.csv"
	if got := cfg.SheetURL(); got != cfg.SheetExportURL {
		t.Errorf("SheetURL() = %s, want explicit override", got)
	}
}

func TestParseTierWeights(t *testing.T) {
	weights := parseTierWeights(`{"enterprise":5,"vip":10}`)
	if weights["enterprise"] != 5 || weights["vip"] != 10 {
		t.Errorf("unexpected weights: %v", weights)
	}

	// Некорректный JSON откатывается к значениям по умолчанию
	weights = parseTierWeights(`{broken`)
	if weights["enterprise"] != 3 {
		t.Errorf("expected default weights on invalid JSON, got %v", weights)
	}

	// Пустой объект тоже откатывается, иначе все веса были бы равны 1
	weights = parseTierWeights(`{}`)
	if weights["professional"] != 2 {
		t.Errorf("expected default weights on empty object, got %v", weights)
	}
}

func TestParseCompetitors(t *testing.T) {
	got := parseCompetitors(" BambooHR ,Workday,, ")
	if len(got) != 2 || got[0] != "BambooHR" || got[1] != "Workday" {
		t.Errorf("parseCompetitors() = %v", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}

	cfg.Port = "99999"
	cfg.SeedPath = ""
	cfg.TierWeights = map[string]int{"enterprise": -1}
	cfg.MaxIdleConns = 100

	err = cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	for _, want := range []string{"port must be between", "seed path is required", "non-negative", "max idle connections"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("validation error missing %q: %v", want, err)
		}
	}
}

func TestConfig_Validate_Timeouts(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}

	cfg.AITimeout = 100 * time.Millisecond
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for sub-second AI timeout")
	}
}
