package pg

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
)

// ErrNoPrimaryKey — единственная «клиентская» ошибка ядра: update/delete
// по таблице без первичного ключа. Всё остальное — внутренние ошибки БД.
var ErrNoPrimaryKey = errors.New("no primary key found for table")

// Store — ядро поверх пула соединений. Своего состояния не держит:
// метаданные каждый раз перечитываются из каталога.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Open открывает ограниченный пул: maxConns соединений, простаивающие
// соединения закрываются по idleTimeout.
func Open(url string, maxConns int, idleTimeout time.Duration) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns)
	db.SetConnMaxIdleTime(idleTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
