package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "featureboard/server/errors"
	"featureboard/sheet"
)

const testCSV = `Feature,Module,Feature Description,Requested Client(s),Point of Contact
Leave Blackout Dates,Leave,Block leave during peak periods,"Acme, Globex; Initech",Anna
Timesheet Reminders,Time,Remind employees to submit,Acme,Boris
Bulk Employee Import,PIM,Import employees from CSV,"Globex, Initech, Umbrella",Clara
Offer Letter Templates,Recruitment,Reusable offer letters,Globex,Anna
`

func newTestService(t *testing.T, csv string) *FeatureService {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(csv))
	}))
	t.Cleanup(upstream.Close)

	fetcher := sheet.NewFetcher(sheet.FetcherConfig{URL: upstream.URL})
	return NewFeatureService(fetcher)
}

func TestListSortsByScoreDescending(t *testing.T) {
	svc := newTestService(t, testCSV)

	features, err := svc.List(context.Background(), "", "score")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(features) != 4 {
		t.Fatalf("expected 4 features, got %d", len(features))
	}

	// Счет лидера равен числу его клиентов: клиентская колонка разобрана
	if features[0].WeightedScore != 3 {
		t.Errorf("top score = %d, want 3", features[0].WeightedScore)
	}
	for i := 1; i < len(features); i++ {
		if features[i].WeightedScore > features[i-1].WeightedScore {
			t.Errorf("position %d: score %d above %d", i, features[i].WeightedScore, features[i-1].WeightedScore)
		}
	}
	if features[0].Name != "Leave Blackout Dates" && features[0].Name != "Bulk Employee Import" {
		t.Errorf("unexpected top feature %q", features[0].Name)
	}
}

func TestListScoreSortIsStableForTies(t *testing.T) {
	// Две фичи с одним клиентом: порядок таблицы должен сохраниться
	svc := newTestService(t, testCSV)

	features, err := svc.List(context.Background(), "", "score")
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	posTimesheet, posOffer := -1, -1
	for i, f := range features {
		switch f.Name {
		case "Timesheet Reminders":
			posTimesheet = i
		case "Offer Letter Templates":
			posOffer = i
		}
	}
	if posTimesheet == -1 || posOffer == -1 {
		t.Fatalf("missing tie features in %v", features)
	}
	if posTimesheet > posOffer {
		t.Errorf("tie order flipped: Timesheet at %d, Offer at %d", posTimesheet, posOffer)
	}
}

func TestListSortByNameAndModule(t *testing.T) {
	svc := newTestService(t, testCSV)

	byName, err := svc.List(context.Background(), "", "name")
	if err != nil {
		t.Fatalf("List(name): %v", err)
	}
	if byName[0].Name != "Bulk Employee Import" {
		t.Errorf("name sort: first = %q", byName[0].Name)
	}

	byModule, err := svc.List(context.Background(), "", "module")
	if err != nil {
		t.Fatalf("List(module): %v", err)
	}
	if byModule[0].Module != "Leave" {
		t.Errorf("module sort: first module = %q", byModule[0].Module)
	}
}

func TestListModuleFilter(t *testing.T) {
	svc := newTestService(t, testCSV)

	features, err := svc.List(context.Background(), "Time", "score")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(features) != 1 || features[0].Name != "Timesheet Reminders" {
		t.Fatalf("expected only Timesheet Reminders, got %v", features)
	}

	// Фильтр точный, не по подстроке
	none, err := svc.List(context.Background(), "Tim", "score")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("substring filter matched %d features", len(none))
	}
}

func TestModules(t *testing.T) {
	svc := newTestService(t, testCSV)

	modules, err := svc.Modules(context.Background())
	if err != nil {
		t.Fatalf("Modules: %v", err)
	}

	want := []string{"Leave", "PIM", "Recruitment", "Time"}
	if len(modules) != len(want) {
		t.Fatalf("modules = %v, want %v", modules, want)
	}
	for i := range want {
		if modules[i] != want[i] {
			t.Errorf("modules[%d] = %q, want %q", i, modules[i], want[i])
		}
	}
}

func TestGetByPositionAndNotFound(t *testing.T) {
	svc := newTestService(t, testCSV)

	feature, err := svc.Get(context.Background(), 2)
	if err != nil {
		t.Fatalf("Get(2): %v", err)
	}
	if feature.Name != "Timesheet Reminders" {
		t.Errorf("Get(2) = %q", feature.Name)
	}

	_, err = svc.Get(context.Background(), 99)
	var appErr *apperrors.AppError
	if !asAppError(err, &appErr) || appErr.Code != http.StatusNotFound {
		t.Fatalf("Get(99): expected 404 AppError, got %v", err)
	}
}

func TestRequestsSplitsClients(t *testing.T) {
	svc := newTestService(t, testCSV)

	requests, err := svc.Requests(context.Background(), 1)
	if err != nil {
		t.Fatalf("Requests: %v", err)
	}
	if len(requests) != 3 {
		t.Fatalf("expected 3 requests, got %v", requests)
	}
	for _, r := range requests {
		if r.Tier != "professional" || r.Count != 1 {
			t.Errorf("request %+v: want tier professional count 1", r)
		}
	}
	if requests[0].Client != "Acme" || requests[2].Client != "Initech" {
		t.Errorf("client order wrong: %v", requests)
	}
}

func TestListSheetDownMapsToBadGateway(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(upstream.Close)

	// Нет ни таблицы, ни seed-файла
	fetcher := sheet.NewFetcher(sheet.FetcherConfig{URL: upstream.URL, SeedPath: "/nonexistent/seed.json"})
	svc := NewFeatureService(fetcher)

	_, err := svc.List(context.Background(), "", "score")
	var appErr *apperrors.AppError
	if !asAppError(err, &appErr) || appErr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 AppError, got %v", err)
	}
	if appErr.Message != SheetUnavailableMessage {
		t.Errorf("message = %q", appErr.Message)
	}
}

func asAppError(err error, target **apperrors.AppError) bool {
	return errors.As(err, target)
}
