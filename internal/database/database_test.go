package database

import (
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/school-personnel/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

func testConfig(env string) *config.Config {
	return &config.Config{
		Primary: config.Primary{Env: env},
		Database: config.DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "personnel",
			Password:        "secret",
			Name:            "school",
			SSLMode:         "disable",
			MaxOpenConns:    8,
			MaxIdleConns:    2,
			ConnMaxLifetime: 600,
			ConnMaxIdleTime: 60,
		},
	}
}

func TestNewPoolConfigAppliesPoolSettings(t *testing.T) {
	logger := zerolog.Nop()

	poolConfig, err := newPoolConfig(testConfig("production"), &logger, nil)
	if err != nil {
		t.Fatalf("newPoolConfig: %v", err)
	}

	if poolConfig.MaxConns != 8 {
		t.Errorf("MaxConns = %d, want 8", poolConfig.MaxConns)
	}
	if poolConfig.MinConns != 2 {
		t.Errorf("MinConns = %d, want 2", poolConfig.MinConns)
	}
	if poolConfig.MaxConnLifetime != 10*time.Minute {
		t.Errorf("MaxConnLifetime = %v", poolConfig.MaxConnLifetime)
	}
	if poolConfig.MaxConnIdleTime != time.Minute {
		t.Errorf("MaxConnIdleTime = %v", poolConfig.MaxConnIdleTime)
	}
	if poolConfig.ConnConfig.Database != "school" || poolConfig.ConnConfig.User != "personnel" {
		t.Errorf("unexpected connection target: %s@%s", poolConfig.ConnConfig.User, poolConfig.ConnConfig.Database)
	}
	if poolConfig.ConnConfig.Tracer != nil {
		t.Errorf("no tracer expected outside local env without New Relic, got %T", poolConfig.ConnConfig.Tracer)
	}
}

func TestNewPoolConfigLocalQueryLogging(t *testing.T) {
	logger := zerolog.Nop().Level(zerolog.DebugLevel)

	poolConfig, err := newPoolConfig(testConfig("local"), &logger, nil)
	if err != nil {
		t.Fatalf("newPoolConfig: %v", err)
	}

	traceLog, ok := poolConfig.ConnConfig.Tracer.(*tracelog.TraceLog)
	if !ok {
		t.Fatalf("tracer = %T, want *tracelog.TraceLog", poolConfig.ConnConfig.Tracer)
	}
	if traceLog.LogLevel != tracelog.LogLevelDebug {
		t.Errorf("LogLevel = %v, want debug", traceLog.LogLevel)
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	body, err := fs.ReadFile(migrations, "migrations/001_setup.sql")
	if err != nil {
		t.Fatalf("reading embedded migration: %v", err)
	}

	sql := string(body)
	for _, table := range []string{"professors", "musicians", "albums", "people"} {
		if !strings.Contains(sql, "CREATE TABLE "+table) {
			t.Errorf("migration does not create %s", table)
		}
	}
	if !strings.Contains(sql, "ON DELETE CASCADE") {
		t.Error("albums must cascade on musician deletion")
	}
	if !strings.Contains(sql, "---- create above / drop below ----") {
		t.Error("migration lacks the tern down separator")
	}
}
