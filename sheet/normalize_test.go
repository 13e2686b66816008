package sheet

import (
	"reflect"
	"testing"
)

func TestColumn_AliasesCaseInsensitive(t *testing.T) {
	// Любое написание алиаса заголовка даёт одно и то же каноническое поле
	headerVariants := []string{"Feature", "feature", "FEATURE", "Feature Name", "feature name"}
	for _, header := range headerVariants {
		row := map[string]string{header: "Shift Swap", "Module": "Time"}
		if got := Column(row, nameAliases); got != "Shift Swap" {
			t.Errorf("header %q: Column() = %q, want Shift Swap", header, got)
		}
	}
}

func TestColumn_NoPositionalFallback(t *testing.T) {
	// Неопознанные заголовки дают пустое поле, а не данные чужой колонки
	row := map[string]string{"Col A": "Shift Swap", "Col B": "Time"}
	if got := Column(row, nameAliases); got != "" {
		t.Errorf("unrecognized headers must yield empty value, got %q", got)
	}
}

func TestColumn_AliasPriority(t *testing.T) {
	row := map[string]string{"Feature": "primary", "Feature Name": "secondary"}
	if got := Column(row, nameAliases); got != "primary" {
		t.Errorf("alias priority: Column() = %q, want primary", got)
	}
}

func TestSplitClients(t *testing.T) {
	got := SplitClients("Acme, Globex; Initech")
	want := []string{"Acme", "Globex", "Initech"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitClients() = %v, want %v", got, want)
	}
}

func TestSplitClients_MixedSeparatorsAndDuplicates(t *testing.T) {
	got := SplitClients("Acme\nAcme;;\n, Umbrella ,")
	want := []string{"Acme", "Acme", "Umbrella"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitClients() = %v, want %v (order and duplicates preserved)", got, want)
	}
}

func TestSplitClients_Empty(t *testing.T) {
	if got := SplitClients(""); got != nil {
		t.Errorf("SplitClients(\"\") = %v, want nil", got)
	}
	if got := SplitClients(" ; , "); got != nil {
		t.Errorf("separators only: got %v, want nil", got)
	}
}

func TestNormalizeRows_RejectsBlankNameOrModule(t *testing.T) {
	rows := NormalizeRows([]map[string]string{
		{"Feature": "Valid", "Module": "Leave"},
		{"Feature": "", "Module": "Leave"},
		{"Feature": "No module", "Module": "  "},
		{"Module": "Leave"},
	})

	if len(rows) != 1 {
		t.Fatalf("expected 1 valid row, got %d: %v", len(rows), rows)
	}
	if rows[0].Name != "Valid" {
		t.Errorf("surviving row = %+v", rows[0])
	}
}

func TestNormalizeRows_FullRecord(t *testing.T) {
	rows := NormalizeRows([]map[string]string{{
		"feature":             "Blackout Dates",
		"Feature description": "Block leave requests on selected dates",
		"Product Module":      "Leave",
		"POC":                 "J. Smith",
		"Requested Client(s)": "Acme; Globex",
	}})

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.Name != "Blackout Dates" || row.Module != "Leave" || row.PointOfContact != "J. Smith" {
		t.Errorf("unexpected row: %+v", row)
	}
	if !reflect.DeepEqual(row.RequestedClients, []string{"Acme", "Globex"}) {
		t.Errorf("RequestedClients = %v", row.RequestedClients)
	}
}
