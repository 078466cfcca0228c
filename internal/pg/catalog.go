package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Column — пара (имя, тип) из information_schema.
type Column struct {
	Name     string `json:"name"`
	DataType string `json:"dataType"`
}

// Directories возвращает все таблицы схемы public. Без пагинации:
// схем с тысячами таблиц здесь не бывает.
func (s *Store) Directories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT table_name FROM information_schema.tables WHERE table_schema = 'public'`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// Columns перечитывает колонки таблицы из каталога. Для несуществующей
// таблицы вернёт пустой список — ошибкой это станет уже на самом запросе.
func (s *Store) Columns(ctx context.Context, directory string) ([]Column, error) {
	query := fmt.Sprintf(
		`SELECT column_name, data_type FROM information_schema.columns WHERE table_name = %s ORDER BY ordinal_position`,
		QuoteLiteral(directory))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []Column
	for rows.Next() {
		var c Column
		if err := rows.Scan(&c.Name, &c.DataType); err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}
	return cols, rows.Err()
}

// PrimaryKey ищет колонку первичного ключа через pg_index. Составные ключи
// не поддерживаем: берётся первая колонка индекса. Нет ключа — пустая строка.
func (s *Store) PrimaryKey(ctx context.Context, directory string) (string, error) {
	const query = `SELECT pg_attribute.attname
		FROM pg_index, pg_class, pg_attribute, pg_namespace
		WHERE indrelid = pg_class.oid AND nspname = 'public' AND pg_class.relnamespace = pg_namespace.oid AND
		  pg_attribute.attrelid = pg_class.oid AND pg_attribute.attnum = any(pg_index.indkey) AND indisprimary AND
		  relname = $1`

	var name string
	err := s.db.QueryRowContext(ctx, query, directory).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return name, nil
}
