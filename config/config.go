package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port     string
	LogLevel string
	DataFile string

	GoogleAPIKey   string
	GeminiModel    string
	GeminiEndpoint string
	OpenAIAPIKey   string
	OpenAIModel    string
	SummaryTimeout time.Duration
	SummaryRate    int // generator calls per minute, 0 = unlimited

	RowLimit       int
	SnapshotDriver string
	SnapshotDSN    string
	ReloadSchedule string
	MaxUploadMB    int
}

// Load reads .env files (if present) and returns a populated Config.
// files defaults to ".env".
func Load(files ...string) *Config {
	if err := godotenv.Load(files...); err != nil {
		logrus.Debug("[config] No .env file found, falling back to system env vars")
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() *Config {
	return &Config{
		Port:     getEnv("PORT", "8000"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		DataFile: getEnv("DATA_FILE", ""),

		GoogleAPIKey:   getEnv("GOOGLE_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-pro"),
		GeminiEndpoint: getEnv("GEMINI_ENDPOINT", ""),
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		SummaryTimeout: getEnvDuration("SUMMARY_TIMEOUT", 10*time.Second),
		SummaryRate:    getEnvInt("SUMMARY_RATE_PER_MIN", 30),

		RowLimit:       getEnvInt("ROW_LIMIT", 500),
		SnapshotDriver: getEnv("SNAPSHOT_DRIVER", ""),
		SnapshotDSN:    getEnv("SNAPSHOT_DSN", ""),
		ReloadSchedule: getEnv("RELOAD_SCHEDULE", ""),
		MaxUploadMB:    getEnvInt("MAX_UPLOAD_MB", 20),
	}
}

// Addr returns the listen address for Port.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// MaxUploadBytes returns the upload size cap in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// Level parses LogLevel, defaulting to info.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

// getEnvDuration accepts Go duration strings ("15s") or plain seconds ("15").
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	if n, err := strconv.Atoi(val); err == nil {
		return time.Duration(n) * time.Second
	}
	return fallback
}
