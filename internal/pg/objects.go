package pg

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Размер страницы фиксированный, курсор — просто OFFSET.
const pageSize = 10

// ObjectPage — страница объектов плюс метаданные директории.
type ObjectPage struct {
	Objects       []map[string]any `json:"objects"`
	PropertyNames []string         `json:"propertyNames"`
	PrimaryKey    *string          `json:"primaryKey"`
	Count         int64            `json:"count"`
}

// ListObjects отдаёт страницу строк как JSON-объекты.
// ORDER BY нет — порядок строк «как вернёт база» и может плыть между
// записями; известное ограничение, сохранено сознательно.
// json/jsonb-колонки отдаются строкой (двойное кодирование), чтобы у клиентов
// был одинаковый листовой тип независимо от структуры значения.
func (s *Store) ListObjects(ctx context.Context, directory string, cursor int64) (*ObjectPage, error) {
	if cursor < 0 {
		cursor = 0
	}

	columns, err := s.Columns(ctx, directory)
	if err != nil {
		return nil, err
	}
	propertyNames := make([]string, 0, len(columns))
	jsonTyped := make(map[string]bool)
	for _, c := range columns {
		propertyNames = append(propertyNames, c.Name)
		if c.DataType == "json" || c.DataType == "jsonb" {
			jsonTyped[c.Name] = true
		}
	}

	query := fmt.Sprintf("SELECT row_to_json(%[1]s.*) FROM %[1]s LIMIT %d OFFSET %d",
		QuoteIdentifier(directory), pageSize, cursor)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	objects := []map[string]any{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		if raw == nil {
			objects = append(objects, nil)
			continue
		}
		var obj map[string]any
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, err
		}
		for name, value := range obj {
			if !jsonTyped[name] {
				continue
			}
			b, err := json.Marshal(value)
			if err != nil {
				return nil, err
			}
			obj[name] = string(b)
		}
		objects = append(objects, obj)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// COUNT(*) отдельным запросом: точное число, без оценок и кэша.
	var count int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", QuoteIdentifier(directory))
	if err := s.db.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, err
	}

	pk, err := s.PrimaryKey(ctx, directory)
	if err != nil {
		return nil, err
	}
	var primaryKey *string
	if pk != "" {
		primaryKey = &pk
	}

	return &ObjectPage{
		Objects:       objects,
		PropertyNames: propertyNames,
		PrimaryKey:    primaryKey,
		Count:         count,
	}, nil
}

// CreateObject — INSERT с инлайном значений как текстовых литералов.
// Имена и значения идут парой из одного прохода по map, чтобы не разъехаться.
func (s *Store) CreateObject(ctx context.Context, directory string, properties map[string]string) error {
	names := make([]string, 0, len(properties))
	values := make([]string, 0, len(properties))
	for name, value := range properties {
		names = append(names, QuoteIdentifier(name))
		values = append(values, QuoteLiteral(value))
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		QuoteIdentifier(directory),
		strings.Join(names, ", "),
		strings.Join(values, ", "))
	_, err := s.db.ExecContext(ctx, query)
	return err
}

// UpdateObject обновляет строку по найденному первичному ключу.
// Значение ключа — единственный настоящий параметр ($1), остальное инлайн.
func (s *Store) UpdateObject(ctx context.Context, directory, id string, properties map[string]string) error {
	pk, err := s.PrimaryKey(ctx, directory)
	if err != nil {
		return err
	}
	if pk == "" {
		return ErrNoPrimaryKey
	}

	sets := make([]string, 0, len(properties))
	for name, value := range properties {
		sets = append(sets, fmt.Sprintf("%s = %s", QuoteIdentifier(name), QuoteLiteral(value)))
	}

	// id приходит строкой, а ключ может быть integer/serial — сравниваем по тексту
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s::text = $1",
		QuoteIdentifier(directory),
		strings.Join(sets, ", "),
		QuoteIdentifier(pk))
	_, err = s.db.ExecContext(ctx, query, id)
	return err
}

// DeleteObject удаляет строку по первичному ключу, та же схема что и update.
func (s *Store) DeleteObject(ctx context.Context, directory, id string) error {
	pk, err := s.PrimaryKey(ctx, directory)
	if err != nil {
		return err
	}
	if pk == "" {
		return ErrNoPrimaryKey
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE %s::text = $1",
		QuoteIdentifier(directory), QuoteIdentifier(pk))
	_, err = s.db.ExecContext(ctx, query, id)
	return err
}
