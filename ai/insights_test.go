package ai

import (
	"context"
	"strings"
	"testing"
)

func TestGenerateCustomerInsightsStub(t *testing.T) {
	svc := NewService(nil, nil)

	insights, err := svc.GenerateCustomerInsights(context.Background(), "req-1", "Leave Blackout Dates", "Block leave", []string{"Acme", "Globex"})
	if err != nil {
		t.Fatalf("GenerateCustomerInsights: %v", err)
	}
	if !insights.Stub {
		t.Error("expected stub")
	}
	if !strings.Contains(insights.Summary, "2 customer(s)") {
		t.Errorf("summary = %q", insights.Summary)
	}
	if insights.Themes == nil {
		t.Error("themes is nil, want empty slice")
	}
}

func TestRepairInsights(t *testing.T) {
	t.Run("valid reply", func(t *testing.T) {
		got := RepairInsights(`{"summary":"Retail clients need it.","themes":["compliance","peak season"],"positioning":"Lead with scheduling."}`, "X")
		if got.Summary != "Retail clients need it." {
			t.Errorf("summary = %q", got.Summary)
		}
		if len(got.Themes) != 2 {
			t.Errorf("themes = %v", got.Themes)
		}
	})

	t.Run("themes as single string", func(t *testing.T) {
		got := RepairInsights(`{"summary":"s","themes":"compliance"}`, "X")
		if len(got.Themes) != 1 || got.Themes[0] != "compliance" {
			t.Errorf("themes = %v", got.Themes)
		}
	})

	t.Run("missing summary gets default", func(t *testing.T) {
		got := RepairInsights(`{"themes":[]}`, "Bulk Import")
		if !strings.Contains(got.Summary, "Bulk Import") {
			t.Errorf("summary = %q", got.Summary)
		}
	})

	t.Run("garbage becomes summary text", func(t *testing.T) {
		got := RepairInsights("not json at all", "X")
		if got.Summary != "not json at all" {
			t.Errorf("summary = %q", got.Summary)
		}
		if got.Themes == nil {
			t.Error("themes is nil")
		}
	})
}
