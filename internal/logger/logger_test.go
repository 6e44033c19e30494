package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/deppfellow/school-personnel/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

func TestGetPgxTraceLogLevel(t *testing.T) {
	tests := []struct {
		level zerolog.Level
		want  tracelog.LogLevel
	}{
		{zerolog.TraceLevel, tracelog.LogLevelTrace},
		{zerolog.DebugLevel, tracelog.LogLevelDebug},
		{zerolog.InfoLevel, tracelog.LogLevelInfo},
		{zerolog.WarnLevel, tracelog.LogLevelWarn},
		{zerolog.ErrorLevel, tracelog.LogLevelError},
		{zerolog.Disabled, tracelog.LogLevelNone},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := GetPgxTraceLogLevel(tt.level); got != int(tt.want) {
				t.Errorf("GetPgxTraceLogLevel(%v) = %d, want %d", tt.level, got, tt.want)
			}
		})
	}
}

func TestNewLoggerServiceWithoutLicense(t *testing.T) {
	service := NewLoggerService(config.DefaultObservabilityConfig())
	if service.GetApplication() != nil {
		t.Fatal("expected no New Relic application without a license key")
	}

	// Must not panic on a disabled service.
	service.Shutdown()

	var nilService *LoggerService
	if nilService.GetApplication() != nil {
		t.Fatal("nil service should report no application")
	}
}

func TestNewLoggerWritesJSON(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "production"

	var buf bytes.Buffer
	logger := newLogger(cfg, nil, &buf)
	logger.Info().Str("professor", "Ada Lovelace").Msg("created")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}

	if entry["service"] != config.ServiceName {
		t.Errorf("service = %v, want %s", entry["service"], config.ServiceName)
	}
	if entry["environment"] != "production" {
		t.Errorf("environment = %v, want production", entry["environment"])
	}
	if entry["message"] != "created" {
		t.Errorf("message = %v, want created", entry["message"])
	}
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	logger := newLogger(cfg, nil, &buf)
	logger.Info().Msg("hidden")

	if buf.Len() != 0 {
		t.Fatalf("info line written at warn level: %q", buf.String())
	}
}

func TestWithTraceContextNilTransaction(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	logger := WithTraceContext(base, nil)
	logger.Info().Msg("x")

	if bytes.Contains(buf.Bytes(), []byte("trace.id")) {
		t.Fatalf("unexpected trace id in %q", buf.String())
	}
}
