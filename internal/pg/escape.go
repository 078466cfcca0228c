package pg

import "strings"

// Единственное место, где сырые строки превращаются в SQL-токены.
// Всё остальное (catalog, directory, objects) собирает запросы только
// через эти две функции.

// QuoteIdentifier оборачивает произвольную строку в безопасный идентификатор.
// Всегда в двойных кавычках: многословные имена и ключевые слова без кавычек
// ломают запрос, а «умные» библиотеки кавычат их через раз.
func QuoteIdentifier(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// QuoteLiteral превращает строку в текстовый литерал. Одинарные кавычки
// удваиваются; если в строке есть обратный слэш — используем E''-форму,
// чтобы не зависеть от standard_conforming_strings.
func QuoteLiteral(s string) string {
	escaped := strings.ReplaceAll(s, `'`, `''`)
	if strings.Contains(s, `\`) {
		return `E'` + strings.ReplaceAll(escaped, `\`, `\\`) + `'`
	}
	return `'` + escaped + `'`
}
