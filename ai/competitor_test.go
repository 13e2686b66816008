package ai

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_MapToCompetitorTerms_Stub(t *testing.T) {
	service := NewService(NewClient(ClientConfig{}), []string{"BambooHR", "Workday"})

	mapping, err := service.MapToCompetitorTerms(context.Background(), "req-1", "Blackout Dates", "")
	require.NoError(t, err)
	assert.False(t, mapping.OK)
	assert.True(t, mapping.Stub)
	assert.Len(t, mapping.Competitors, 2)
	assert.Contains(t, mapping.Competitors["BambooHR"], "Blackout Dates")
}

func TestService_GenerateCompetitorAnalysis_Stub(t *testing.T) {
	service := NewService(NewClient(ClientConfig{}), []string{"Workday", "BambooHR"})

	analysis, err := service.GenerateCompetitorAnalysis(context.Background(), "req-1", "Blackout Dates", "desc")
	require.NoError(t, err)
	assert.True(t, analysis.OK)
	assert.True(t, analysis.Stub)
	require.Len(t, analysis.Competitors, 2)
	// Заглушка отдает конкурентов в стабильном порядке
	assert.Equal(t, "BambooHR", analysis.Competitors[0].Name)
	assert.Nil(t, analysis.Competitors[0].HelpArticleURL)
	assert.NotEmpty(t, analysis.Competitors[0].HelpSearchQuery)
	assert.Empty(t, analysis.Similarities)
	assert.Empty(t, analysis.Differences)
}

func TestService_MapToCompetitorTerms_Live(t *testing.T) {
	srv, _ := newFakeUpstream(t, `{"BambooHR":"Time Off Restrictions"}`, http.StatusOK)
	service := NewService(newTestClient(srv.URL), []string{"BambooHR"})

	mapping, err := service.MapToCompetitorTerms(context.Background(), "req-1", "Blackout Dates", "")
	require.NoError(t, err)
	assert.True(t, mapping.OK)
	assert.Equal(t, "Time Off Restrictions", mapping.Competitors["BambooHR"])
}

func TestService_MapToCompetitorTerms_MalformedReplyKeptRaw(t *testing.T) {
	srv, _ := newFakeUpstream(t, `not json at all`, http.StatusOK)
	service := NewService(newTestClient(srv.URL), []string{"BambooHR"})

	mapping, err := service.MapToCompetitorTerms(context.Background(), "req-1", "Blackout Dates", "")
	require.NoError(t, err)
	assert.Equal(t, "not json at all", mapping.Competitors["raw"])
}

func TestRepairAnalysis(t *testing.T) {
	t.Run("missing arrays become empty", func(t *testing.T) {
		analysis := RepairAnalysis(`{"competitors":[]}`)
		assert.NotNil(t, analysis.Similarities)
		assert.Empty(t, analysis.Similarities)
		assert.NotNil(t, analysis.Differences)
		assert.Empty(t, analysis.Differences)
	})

	t.Run("competitor link fields repaired", func(t *testing.T) {
		analysis := RepairAnalysis(`{"competitors":[
			{"name":"BambooHR","term":"Time Off Restrictions","helpArticleUrl":"not-a-url","helpArticleTitle":" ","helpSearchQuery":""},
			{"name":"Workday","term":"Blackout Dates","helpArticleUrl":"https://docs.workday.com/leave","helpArticleTitle":"Leave doc","helpSearchQuery":"workday blackout"}
		]}`)
		require.Len(t, analysis.Competitors, 2)

		bamboo := analysis.Competitors[0]
		assert.Nil(t, bamboo.HelpArticleURL, "non-http url must be dropped")
		assert.Equal(t, "Search docs", bamboo.HelpArticleTitle)
		assert.Equal(t, "BambooHR Time Off Restrictions documentation", bamboo.HelpSearchQuery)

		workday := analysis.Competitors[1]
		require.NotNil(t, workday.HelpArticleURL)
		assert.Equal(t, "https://docs.workday.com/leave", *workday.HelpArticleURL)
		assert.Equal(t, "Leave doc", workday.HelpArticleTitle)
	})

	t.Run("string instead of array coerced", func(t *testing.T) {
		analysis := RepairAnalysis(`{"similarities":"both support blackout dates","differences":["a","  ",""]}`)
		assert.Equal(t, []string{"both support blackout dates"}, analysis.Similarities)
		assert.Equal(t, []string{"a"}, analysis.Differences)
	})

	t.Run("uppercase keys accepted", func(t *testing.T) {
		analysis := RepairAnalysis(`{"Similarities":["s1"],"Differences":["d1"]}`)
		assert.Equal(t, []string{"s1"}, analysis.Similarities)
		assert.Equal(t, []string{"d1"}, analysis.Differences)
	})

	t.Run("garbage input yields empty structure", func(t *testing.T) {
		analysis := RepairAnalysis(`}{ totally broken`)
		assert.Empty(t, analysis.Competitors)
		assert.Empty(t, analysis.Similarities)
	})
}

func TestRepairUseCase(t *testing.T) {
	t.Run("complete reply kept", func(t *testing.T) {
		sections := RepairUseCase(`{
			"objective":"Let HR block leave requests on critical dates.",
			"actors":"HR Admin",
			"preconditions":"Blackout dates configured.",
			"basicFlow":["Open leave settings","Add blackout period"],
			"postconditions":"Requests on blackout dates are rejected.",
			"acceptanceCriteria":["Blocked dates reject requests"]
		}`, "Blackout Dates")
		assert.Equal(t, "HR Admin", sections.Actors)
		assert.Len(t, sections.BasicFlow, 2)
	})

	t.Run("missing fields defaulted", func(t *testing.T) {
		sections := RepairUseCase(`{"objective":"", "basicFlow":[]}`, "Blackout Dates")
		assert.Contains(t, sections.Objective, "Blackout Dates")
		assert.NotEmpty(t, sections.BasicFlow)
		assert.NotEmpty(t, sections.AcceptanceCriteria)
	})

	t.Run("unparseable reply fully defaulted", func(t *testing.T) {
		sections := RepairUseCase(`oops`, "Blackout Dates")
		assert.Contains(t, sections.Objective, "Blackout Dates")
		assert.Equal(t, 4, len(sections.BasicFlow))
	})
}

func TestService_GenerateUseCaseSections_Stub(t *testing.T) {
	service := NewService(NewClient(ClientConfig{}), nil)

	sections, err := service.GenerateUseCaseSections(context.Background(), "req-1", "Blackout Dates", "")
	require.NoError(t, err)
	assert.Contains(t, sections.Objective, "Blackout Dates")
	assert.NotEmpty(t, sections.BasicFlow)
}
