package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Content sources for the room catalog.
const (
	SourceStatic = "static"
	SourceMySQL  = "mysql"
)

type Config struct {
	AppEnv         string
	HTTPAddr       string
	MetricsAddr    string
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	ContentSource  string
	AssetsDir      string
	CacheTTL       time.Duration
	SessionTTL     time.Duration
	SlideInterval  time.Duration
	AutoplayResume time.Duration
	NavSettle      time.Duration
	NavOffset      int
	PublishWorkers int
	MaxSessions    int
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present; real environment
// variables win over it.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg(".env loaded")
	}
	return fromEnv()
}

func fromEnv() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("not an integer; using default")
		}
		return def
	}
	ms := func(k string, def int) time.Duration {
		return time.Duration(atoi(k, def)) * time.Millisecond
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ""),
		MySQLDSN:       env("MYSQL_DSN", "root:root@tcp(localhost:3306)/betu?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:      env("REDIS_ADDR", "localhost:6379"),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		ContentSource:  env("CONTENT_SOURCE", SourceStatic),
		AssetsDir:      env("ASSETS_DIR", "./public"),
		CacheTTL:       time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		SessionTTL:     time.Duration(atoi("SESSION_TTL_SECONDS", 1800)) * time.Second,
		SlideInterval:  ms("SLIDE_INTERVAL_MS", 5000),
		AutoplayResume: ms("AUTOPLAY_RESUME_MS", 10000),
		NavSettle:      ms("NAV_SETTLE_MS", 150),
		NavOffset:      atoi("NAV_HEADER_OFFSET", 80),
		PublishWorkers: atoi("PUBLISH_WORKERS", 4),
		MaxSessions:    atoi("MAX_SESSIONS", 5000),
	}
	if c.ContentSource != SourceStatic && c.ContentSource != SourceMySQL {
		log.Warn().Str("source", c.ContentSource).Msg("unknown CONTENT_SOURCE; using static")
		c.ContentSource = SourceStatic
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
