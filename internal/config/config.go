package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr string
	BankPath string

	StoreDriver string // memory|sql|redis

	DBDriver string // sqlite|postgres
	DBDSN    string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SessionTTL    time.Duration // redis store only

	CORSOrigins []string

	// Session defaults; a create request can override either flag.
	ShuffleChoices bool
	FoldTrueFalse  bool
}

func FromEnv() Config {
	return Config{
		HTTPAddr:       envOr("HTTP_ADDR", ":8080"),
		BankPath:       envOr("BANK_PATH", "./data/questions.json"),
		StoreDriver:    envOr("STORE_DRIVER", "memory"),
		DBDriver:       envOr("DB_DRIVER", "sqlite"),
		DBDSN:          envOr("DB_DSN", ""),
		RedisAddr:      envOr("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        envInt("REDIS_DB", 0),
		SessionTTL:     envDuration("SESSION_TTL", 24*time.Hour),
		CORSOrigins:    csvOr("CORS_ORIGINS", "http://localhost:3000"),
		ShuffleChoices: envBool("SHUFFLE_CHOICES", true),
		FoldTrueFalse:  envBool("FOLD_TRUE_FALSE", true),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
