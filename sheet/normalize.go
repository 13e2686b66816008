package sheet

import (
	"regexp"
	"strings"
)

// FeatureRow нормализованная строка таблицы до присвоения id и скора
type FeatureRow struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Module           string   `json:"module"`
	PointOfContact   string   `json:"point_of_contact"`
	RequestedClients []string `json:"requested_clients"`
}

// Группы допустимых заголовков для каждого канонического поля, в порядке
// приоритета. Сопоставление выполняется без учёта регистра и только по имени
// заголовка — позиционного (по индексу колонки) фолбэка нет, чтобы при
// неожиданной раскладке колонок данные не попадали не в то поле.
var (
	nameAliases        = []string{"Feature", "Feature Name", "feature"}
	descriptionAliases = []string{"Feature Description", "Feature description"}
	moduleAliases      = []string{"Module", "module", "Module Name", "Product Module"}
	pocAliases         = []string{"Point of Contact", "Point of contact", "POC"}
	clientsAliases     = []string{"Requested Clients", "Requested clients", "Requested Client(s)"}
)

var clientSeparatorRe = regexp.MustCompile(`[\n,;]+`)

// Column возвращает значение ячейки по списку допустимых имён заголовка,
// сравнивая имена без учёта регистра. Неизвестная раскладка заголовков даёт
// пустое значение, а не данные из чужой колонки.
func Column(row map[string]string, aliases []string) string {
	for _, alias := range aliases {
		want := strings.ToLower(strings.TrimSpace(alias))
		for k, v := range row {
			if strings.ToLower(strings.TrimSpace(k)) == want {
				return strings.TrimSpace(v)
			}
		}
	}
	return ""
}

// SplitClients разбивает сырую ячейку "Requested Clients" на имена клиентов.
// Разделители — любые последовательности переводов строки, запятых и точек с
// запятой. Порядок и дубликаты сохраняются, пустые куски отбрасываются.
func SplitClients(raw string) []string {
	if raw == "" {
		return nil
	}
	var clients []string
	for _, piece := range clientSeparatorRe.Split(raw, -1) {
		if piece = strings.TrimSpace(piece); piece != "" {
			clients = append(clients, piece)
		}
	}
	return clients
}

// NormalizeRow превращает сырую строку таблицы в FeatureRow
func NormalizeRow(row map[string]string) FeatureRow {
	return FeatureRow{
		Name:             Column(row, nameAliases),
		Description:      Column(row, descriptionAliases),
		Module:           Column(row, moduleAliases),
		PointOfContact:   Column(row, pocAliases),
		RequestedClients: SplitClients(Column(row, clientsAliases)),
	}
}

// NormalizeRows нормализует строки таблицы, отбрасывая непригодные.
// Строка без непустых name и module не может представлять фичу и молча
// исключается — это не ошибка.
func NormalizeRows(rows []map[string]string) []FeatureRow {
	out := make([]FeatureRow, 0, len(rows))
	for _, raw := range rows {
		row := NormalizeRow(raw)
		if row.Name == "" || row.Module == "" {
			continue
		}
		out = append(out, row)
	}
	return out
}
