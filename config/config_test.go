package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "SUMMARY_TIMEOUT", "ROW_LIMIT", "GEMINI_MODEL", "MAX_UPLOAD_MB"} {
		t.Setenv(k, "")
	}
	cfg := FromEnv()

	if cfg.Addr() != ":8000" {
		t.Errorf("Addr = %q", cfg.Addr())
	}
	if cfg.SummaryTimeout != 10*time.Second {
		t.Errorf("SummaryTimeout = %v", cfg.SummaryTimeout)
	}
	if cfg.RowLimit != 500 || cfg.GeminiModel != "gemini-pro" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.MaxUploadBytes() != 20<<20 {
		t.Errorf("MaxUploadBytes = %d", cfg.MaxUploadBytes())
	}
	if cfg.Level() != logrus.InfoLevel {
		t.Errorf("Level = %v", cfg.Level())
	}
}

func TestOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ROW_LIMIT", "50")
	t.Setenv("SUMMARY_TIMEOUT", "3")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SUMMARY_RATE_PER_MIN", "not-a-number")

	cfg := FromEnv()
	if cfg.Port != "9090" || cfg.RowLimit != 50 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.SummaryTimeout != 3*time.Second {
		t.Errorf("SummaryTimeout = %v", cfg.SummaryTimeout)
	}
	if cfg.SummaryRate != 30 {
		t.Errorf("invalid int should fall back, got %d", cfg.SummaryRate)
	}
	if cfg.Level() != logrus.DebugLevel {
		t.Errorf("Level = %v", cfg.Level())
	}

	t.Setenv("SUMMARY_TIMEOUT", "1500ms")
	if got := FromEnv().SummaryTimeout; got != 1500*time.Millisecond {
		t.Errorf("SummaryTimeout = %v", got)
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("DATA_FILE=/data/pune.xlsx\nRELOAD_SCHEDULE=@hourly\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	// godotenv never overrides variables that are already set
	for _, k := range []string{"DATA_FILE", "RELOAD_SCHEDULE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg := Load(path)
	if cfg.DataFile != "/data/pune.xlsx" || cfg.ReloadSchedule != "@hourly" {
		t.Errorf("cfg = %+v", cfg)
	}
}
