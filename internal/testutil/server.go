package testutil

import (
	"testing"

	"github.com/deppfellow/school-personnel/internal/config"
	"github.com/deppfellow/school-personnel/internal/server"
	"github.com/rs/zerolog"
)

// NewTestServer returns a Server with default settings, a silent logger
// and no database. Tests may adjust s.Config before building handlers.
func NewTestServer(t *testing.T) *server.Server {
	t.Helper()

	logger := zerolog.Nop()

	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server: config.ServerConfig{
				Port:               "0",
				ReadTimeout:        30,
				WriteTimeout:       30,
				IdleTimeout:        60,
				CORSAllowedOrigins: []string{"*"},
			},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}
}
