package pg

import (
	"context"
	"fmt"
	"strings"
)

// Property — описание колонки при создании директории.
// Type — сырой SQL-токен типа ("text", "varchar(50)", "serial"): кавычить его
// нельзя, иначе Postgres будет искать пользовательский тип с таким именем.
// Кривой тип просто уронит CREATE TABLE — это штатная ошибка БД.
type Property struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Default    *string `json:"default,omitempty"`
	Constraint string  `json:"constraint,omitempty"`
}

// Допустимые constraint-токены. Всё остальное молча выбрасывается —
// политика, а не ошибка.
var validConstraints = map[string]struct{}{
	"PRIMARY KEY": {},
	"NOT NULL":    {},
	"UNIQUE":      {},
}

// CreateDirectory рендерит и выполняет CREATE TABLE. Один стейтмент,
// без транзакции: DDL создания таблицы атомарен сам по себе.
func (s *Store) CreateDirectory(ctx context.Context, name string, properties []Property) error {
	parts := make([]string, 0, len(properties))
	for _, p := range properties {
		var b strings.Builder
		fmt.Fprintf(&b, "%s %s", QuoteIdentifier(p.Name), p.Type)
		if p.Default != nil {
			fmt.Fprintf(&b, " DEFAULT %s", QuoteLiteral(*p.Default))
		}
		if p.Constraint != "" {
			if _, ok := validConstraints[p.Constraint]; ok {
				fmt.Fprintf(&b, " %s", p.Constraint)
			}
		}
		parts = append(parts, b.String())
	}

	query := fmt.Sprintf("CREATE TABLE %s (%s)",
		QuoteIdentifier(name), strings.Join(parts, ", "))
	_, err := s.db.ExecContext(ctx, query)
	return err
}

// DeleteDirectory выполняет DROP TABLE. Существование не проверяем:
// дроп несуществующей таблицы — обычная ошибка БД.
func (s *Store) DeleteDirectory(ctx context.Context, name string) error {
	query := fmt.Sprintf("DROP TABLE %s", QuoteIdentifier(name))
	_, err := s.db.ExecContext(ctx, query)
	return err
}
