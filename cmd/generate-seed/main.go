// Утилита генерации фейкового seed-файла для локальной разработки без
// доступа к Google Sheets.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/brianvoe/gofakeit/v6"

	"featureboard/sheet"
)

var hrModules = []string{"Leave", "Time", "PIM", "Recruitment", "Performance", "Payroll", "Onboarding"}

var featureTemplates = []string{
	"%s Blackout Dates",
	"%s Approval Chains",
	"Bulk %s Import",
	"%s Reminders",
	"%s Audit Log",
	"Custom %s Reports",
	"%s Templates",
	"%s Notifications",
}

func main() {
	count := flag.Int("count", 25, "число генерируемых фич")
	out := flag.String("out", "data/seed-from-sheet.json", "путь к seed-файлу")
	seed := flag.Int64("seed", 0, "seed генератора случайных чисел")
	flag.Parse()

	gofakeit.Seed(*seed)

	rows := make([]sheet.FeatureRow, 0, *count)
	seen := make(map[string]bool)
	for len(rows) < *count {
		module := hrModules[gofakeit.Number(0, len(hrModules)-1)]
		template := featureTemplates[gofakeit.Number(0, len(featureTemplates)-1)]
		name := fmt.Sprintf(template, module)
		if seen[module+"/"+name] {
			continue
		}
		seen[module+"/"+name] = true

		clients := make([]string, gofakeit.Number(1, 6))
		for i := range clients {
			clients[i] = gofakeit.Company()
		}

		rows = append(rows, sheet.FeatureRow{
			Name:             name,
			Module:           module,
			Description:      gofakeit.Sentence(12),
			RequestedClients: clients,
			PointOfContact:   gofakeit.Name(),
		})
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		log.Fatalf("Не удалось создать директорию: %v", err)
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		log.Fatalf("Ошибка сериализации: %v", err)
	}
	if err := os.WriteFile(*out, append(data, '\n'), 0644); err != nil {
		log.Fatalf("Ошибка записи %s: %v", *out, err)
	}

	fmt.Printf("Записано %d фич в %s\n", len(rows), *out)
}
