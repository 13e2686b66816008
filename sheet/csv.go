// Package sheet читает опубликованную Google-таблицу с фичами и превращает её
// в нормализованный список записей. Таблица — единственный источник правды:
// каждый вызов перечитывает её заново, без кэширования между запросами.
package sheet

import "strings"

// ParseRows разбивает CSV-текст на строки ячеек с учётом кавычек:
// перевод строки внутри поля в двойных кавычках не начинает новую строку,
// поэтому название или описание фичи с переносами остаётся одной ячейкой.
//
// Удвоенная кавычка внутри поля ("") декодируется в один символ кавычки.
// Незакрытая кавычка не считается ошибкой: текст до конца входа читается как
// содержимое поля. Каждая ячейка обрезается от краевых пробелов.
func ParseRows(text string) [][]string {
	var rows [][]string
	var currentRow []string
	var current strings.Builder
	inQuotes := false

	flushCell := func() {
		currentRow = append(currentRow, strings.TrimSpace(current.String()))
		current.Reset()
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		var next rune
		if i+1 < len(runes) {
			next = runes[i+1]
		}

		if inQuotes {
			if c == '"' {
				if next == '"' {
					current.WriteRune('"')
					i++
				} else {
					inQuotes = false
				}
			} else {
				current.WriteRune(c)
			}
			continue
		}

		switch {
		case c == '"':
			inQuotes = true
		case c == ',':
			flushCell()
		case c == '\n' || c == '\r':
			if c == '\r' && next == '\n' {
				i++
			}
			flushCell()
			rows = append(rows, currentRow)
			currentRow = nil
		default:
			current.WriteRune(c)
		}
	}

	flushCell()
	rows = append(rows, currentRow)
	return rows
}

// ParseTable парсит CSV-текст в таблицу: первая строка — заголовки, остальные
// превращаются в map заголовок -> значение. Меньше двух строк (нет заголовка
// или нет данных) — нечего нормализовать, возвращается пустой результат.
func ParseTable(text string) []map[string]string {
	rows := ParseRows(text)
	if len(rows) < 2 {
		return nil
	}

	headers := rows[0]
	result := make([]map[string]string, 0, len(rows)-1)
	for _, values := range rows[1:] {
		row := make(map[string]string, len(headers))
		for j, h := range headers {
			if j < len(values) {
				row[h] = strings.TrimSpace(values[j])
			} else {
				row[h] = ""
			}
		}
		result = append(result, row)
	}
	return result
}
