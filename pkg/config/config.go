package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	ShutdownTimeout time.Duration

	JobsFile    string
	StaticDir   string
	CORSOrigins string
	MaxScale    int

	// nil means the built-in defaults
	SkillVocabulary []string
	Stopwords       []string

	DatabaseURL  string
	SeedFromFile bool

	RedisURL string
	CacheTTL time.Duration

	LogLevel string
	LogDev   bool

	OTelCollectorURL string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		JobsFile:    getEnv("JOBS_FILE", "data/sample_jobs.json"),
		StaticDir:   getEnv("STATIC_DIR", "web"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		MaxScale:    getEnvInt("MAX_SCALE", 1000),

		SkillVocabulary: getEnvList("SKILL_VOCABULARY"),
		Stopwords:       getEnvList("STOPWORDS"),

		DatabaseURL:  os.Getenv("DATABASE_URL"),
		SeedFromFile: getEnvBool("SEED_FROM_FILE", false),

		RedisURL: os.Getenv("REDIS_URL"),
		CacheTTL: getEnvDuration("CACHE_TTL", 5*time.Minute),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogDev:   getEnvBool("LOG_DEV", false),

		OTelCollectorURL: os.Getenv("OTEL_COLLECTOR_URL"),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// getEnvList splits a comma separated value; unset or blank gives nil.
func getEnvList(key string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
