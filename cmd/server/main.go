package main

import (
	"fmt"
	"log"
	"time"

	"papka/internal/api"
	"papka/internal/config"
	"papka/internal/pg"
)

func main() {
	cfg := config.LoadWithPath("papka.json")
	if cfg.DBURL == "" {
		log.Fatal("не задан адрес базы: PAPKA_DB_URL / -db / dbUrl в конфиге")
	}

	db, err := pg.Open(cfg.DBURL, cfg.PoolMaxConns, time.Duration(cfg.PoolIdleSec)*time.Second)
	if err != nil {
		log.Fatalf("Ошибка подключения к Postgres: %v", err)
	}
	defer db.Close()

	store := pg.NewStore(db)
	r := api.NewRouter(store, cfg.Token, time.Duration(cfg.TimeoutMS)*time.Millisecond)

	fmt.Printf("Стартуем сервер Papka на :%s...\n", cfg.Port)
	api.RunServer(":"+cfg.Port, r)
}
