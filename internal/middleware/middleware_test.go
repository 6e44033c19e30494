package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/school-personnel/internal/errs"
	"github.com/deppfellow/school-personnel/internal/sqlerr"
	"github.com/deppfellow/school-personnel/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestRequestIDGeneratesAndPropagates(t *testing.T) {
	e := echo.New()

	var seen string
	h := RequestID()(func(c echo.Context) error {
		seen = GetRequestID(c)
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	if err := h(c); err != nil {
		t.Fatal(err)
	}
	if seen == "" || rec.Header().Get(RequestIDHeader) != seen {
		t.Errorf("generated id %q, header %q", seen, rec.Header().Get(RequestIDHeader))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatal(err)
	}
	if seen != "abc-123" || rec.Header().Get(RequestIDHeader) != "abc-123" {
		t.Errorf("propagated id %q, header %q", seen, rec.Header().Get(RequestIDHeader))
	}
}

func TestGetLoggerFallsBackToNop(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	if l := GetLogger(c); l == nil || l.GetLevel() != zerolog.Disabled {
		t.Errorf("GetLogger without enhancer = %v", l)
	}
}

func TestContextEnhancerStoresLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	s := testutil.NewTestServer(t)
	s.Logger = &logger

	h := RequestID()(NewContextEnhancer(s).EnhanceContext()(func(c echo.Context) error {
		if _, ok := c.Get(LoggerKey).(*zerolog.Logger); !ok {
			t.Error("echo context has no logger")
		}
		zerolog.Ctx(c.Request().Context()).Info().Msg("from service")
		return nil
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	if err := h(echo.New().NewContext(req, httptest.NewRecorder())); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), `"request_id":"req-42"`) {
		t.Errorf("request context logger lost correlation fields: %s", buf.String())
	}
}

func TestGlobalErrorHandler(t *testing.T) {
	global := NewGlobalMiddlewares(testutil.NewTestServer(t))

	tests := []struct {
		name       string
		method     string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "http error passes through",
			method:     http.MethodGet,
			err:        errs.NewBadRequestError("bad", true, nil, nil, nil),
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
			wantMsg:    "bad",
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			wantMsg:    "Route not found",
		},
		{
			name:       "wrong method",
			method:     http.MethodPatch,
			err:        echo.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "METHOD_NOT_ALLOWED",
			wantMsg:    "Method PATCH not allowed",
		},
		{
			name:       "missing row",
			method:     http.MethodGet,
			err:        sqlerr.NotFound("professors"),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			wantMsg:    "Professor not found",
		},
		{
			name:       "unexpected error hides details",
			method:     http.MethodGet,
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
			wantMsg:    "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(tt.method, "/x/", nil), rec)

			global.GlobalErrorHandler(tt.err, c)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var body errs.HTTPError
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Code != tt.wantCode || body.Message != tt.wantMsg || body.Status != tt.wantStatus {
				t.Errorf("body = %+v", body)
			}
		})
	}
}

func TestGlobalErrorHandlerHead(t *testing.T) {
	global := NewGlobalMiddlewares(testutil.NewTestServer(t))

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodHead, "/", nil), rec)

	global.GlobalErrorHandler(echo.ErrNotFound, c)

	if rec.Code != http.StatusNotFound || rec.Body.Len() != 0 {
		t.Errorf("HEAD got %d with %d body bytes", rec.Code, rec.Body.Len())
	}
}

func TestLimiterDisabledPassesThrough(t *testing.T) {
	s := testutil.NewTestServer(t)
	limiter := NewRateLimitMiddleware(s).Limiter()

	calls := 0
	h := limiter(func(c echo.Context) error {
		calls++
		return nil
	})

	e := echo.New()
	for i := 0; i < 5; i++ {
		if err := h(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())); err != nil {
			t.Fatal(err)
		}
	}
	if calls != 5 {
		t.Errorf("calls = %d", calls)
	}
}

func TestLimiterRejectsBurst(t *testing.T) {
	s := testutil.NewTestServer(t)
	s.Config.Server.RateLimit = 1
	limiter := NewRateLimitMiddleware(s).Limiter()

	calls := 0
	h := limiter(func(c echo.Context) error {
		calls++
		return c.NoContent(http.StatusOK)
	})

	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(s).GlobalErrorHandler

	rec := httptest.NewRecorder()
	if err := h(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)); err != nil {
		t.Fatalf("first request: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d", rec.Code)
	}

	// Denials are written through the echo error handler, not returned.
	rec = httptest.NewRecorder()
	if err := h(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)); err != nil {
		t.Fatalf("second request returned %v", err)
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", rec.Code)
	}

	var body errs.HTTPError
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Code != "TOO_MANY_REQUESTS" {
		t.Errorf("body = %+v", body)
	}
	if calls != 1 {
		t.Errorf("next handler ran %d times, want 1", calls)
	}
}
