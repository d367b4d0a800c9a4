package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Driver != DriverSQLite || cfg.Database.SQLitePath != "stockkarte.db" {
		t.Fatalf("database = %+v", cfg.Database)
	}
	if cfg.Database.ConnectTimeout != 10*time.Second || cfg.Database.ConnectRetries != 5 {
		t.Fatalf("connect settings = %v/%d", cfg.Database.ConnectTimeout, cfg.Database.ConnectRetries)
	}
	if cfg.Redis.Enabled || cfg.Redis.TTL != 10*time.Minute || cfg.Redis.Addr() != "localhost:6379" {
		t.Fatalf("redis = %+v", cfg.Redis)
	}
	if cfg.Display.Tag() != language.English {
		t.Fatalf("display tag = %v", cfg.Display.Tag())
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("W4B_DATABASE__DRIVER", "postgres")
	t.Setenv("W4B_DATABASE__POSTGRES__HOST", "db.internal")
	t.Setenv("W4B_DATABASE__POSTGRES__PORT", "6543")
	t.Setenv("W4B_REDIS__ENABLED", "true")
	t.Setenv("W4B_REDIS__TTL", "30s")
	t.Setenv("W4B_DISPLAY__LANGUAGE", "de")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Driver != DriverPostgres || cfg.Database.Postgres.Host != "db.internal" || cfg.Database.Postgres.Port != 6543 {
		t.Fatalf("postgres = %+v", cfg.Database)
	}
	if !strings.Contains(cfg.Database.Postgres.DSN(), "host=db.internal port=6543") {
		t.Fatalf("dsn = %s", cfg.Database.Postgres.DSN())
	}
	if !cfg.Redis.Enabled || cfg.Redis.TTL != 30*time.Second {
		t.Fatalf("redis = %+v", cfg.Redis)
	}
	if cfg.Display.Tag() != language.German {
		t.Fatalf("display tag = %v", cfg.Display.Tag())
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "database:\n  sqlite_path: /var/lib/w4b/cards.db\nmonitoring:\n  log_level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.SQLitePath != "/var/lib/w4b/cards.db" || cfg.Monitoring.LogLevel != "debug" {
		t.Fatalf("config file not applied: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown driver", "W4B_DATABASE__DRIVER", "mysql"},
		{"negative retries", "W4B_DATABASE__CONNECT_RETRIES", "-1"},
		{"unknown log level", "W4B_MONITORING__LOG_LEVEL", "chatty"},
		{"bad language", "W4B_DISPLAY__LANGUAGE", "not a language"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			if _, err := Load(t.TempDir()); err == nil {
				t.Fatalf("Load accepted %s=%q", tt.key, tt.val)
			}
		})
	}
}
