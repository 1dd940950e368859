package config

import "testing"

func TestDSN(t *testing.T) {
	cfg := Config{
		DBHost: "db.internal",
		DBPort: "5433",
		DBUser: "app",
		DBPass: "hunter2",
		DBName: "vibes",
	}

	want := "host=db.internal port=5433 user=app password=hunter2 dbname=vibes sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DB_HOST", "DB_NAME", "DB_USER", "DB_PORT", "PORT"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.DBHost != "localhost" || cfg.DBPort != "5432" {
		t.Errorf("unexpected DB defaults: %+v", cfg)
	}
	if cfg.Port != "8080" {
		t.Errorf("default port: got %q", cfg.Port)
	}
}
