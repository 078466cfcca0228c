package config

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port      string `json:"port" yaml:"port"`
	DBURL     string `json:"dbUrl" yaml:"dbUrl"`
	Token     string `json:"token" yaml:"token"` // пустой токен = авторизация выключена
	TimeoutMS int    `json:"timeoutMs" yaml:"timeoutMs"`

	// Пул соединений
	PoolMaxConns int `json:"poolMaxConns" yaml:"poolMaxConns"`
	PoolIdleSec  int `json:"poolIdleSec" yaml:"poolIdleSec"`
}

func def() Config {
	return Config{
		Port:      "9009",
		DBURL:     "",
		Token:     "",
		TimeoutMS: 15000,

		PoolMaxConns: 5,
		PoolIdleSec:  60,
	}
}

// loadFile читает конфиг из JSON или YAML (по расширению).
func loadFile(path string) (Config, error) {
	c := def()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		if err := yaml.Unmarshal(b, &c); err != nil {
			return c, err
		}
		return c, nil
	}
	if err := json.Unmarshal(b, &c); err != nil {
		return c, err
	}
	return c, nil
}

func getenv(k, fallback string) string {
	if v, ok := os.LookupEnv(k); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func getenvInt(k string, fallback int) int {
	if v, ok := os.LookupEnv(k); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return fallback
}

// applyEnv накладывает ENV-переопределения поверх конфига.
func applyEnv(cfg Config) Config {
	cfg.Port = getenv("PAPKA_PORT", cfg.Port)
	cfg.DBURL = getenv("PAPKA_DB_URL", cfg.DBURL)
	cfg.Token = getenv("PAPKA_TOKEN", cfg.Token)
	cfg.TimeoutMS = getenvInt("PAPKA_TIMEOUT_MS", cfg.TimeoutMS)
	cfg.PoolMaxConns = getenvInt("PAPKA_POOL_MAX_CONNS", cfg.PoolMaxConns)
	cfg.PoolIdleSec = getenvInt("PAPKA_POOL_IDLE_SEC", cfg.PoolIdleSec)
	return cfg
}

// LoadWithPath читает файл по указанному пути, потом применяет ENV и флаги.
func LoadWithPath(path string) Config {
	cfg := def()

	// файл (если существует)
	if st, err := os.Stat(path); err == nil && !st.IsDir() {
		if c2, err := loadFile(path); err == nil {
			cfg = c2
		}
	}

	// ENV overrides
	cfg = applyEnv(cfg)

	// Flags overrides
	configPath := flag.String("config", path, "Path to config file (JSON or YAML)")
	port := flag.String("port", cfg.Port, "HTTP port")
	db := flag.String("db", cfg.DBURL, "Postgres URL")
	token := flag.String("token", cfg.Token, "Bearer token (empty = auth disabled)")
	timeout := flag.Int("timeout-ms", cfg.TimeoutMS, "Request timeout, ms")
	poolMax := flag.Int("pool-max-conns", cfg.PoolMaxConns, "Max pool connections")
	poolIdle := flag.Int("pool-idle-sec", cfg.PoolIdleSec, "Idle connection timeout, sec")

	flag.Parse()

	// Если через флаг передали другой конфиг — перечитаем
	if *configPath != path {
		return LoadWithPath(*configPath)
	}

	cfg.Port = strings.TrimSpace(*port)
	cfg.DBURL = strings.TrimSpace(*db)
	cfg.Token = strings.TrimSpace(*token)
	cfg.TimeoutMS = *timeout
	cfg.PoolMaxConns = *poolMax
	cfg.PoolIdleSec = *poolIdle

	return cfg
}
