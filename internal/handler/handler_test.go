package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/deppfellow/school-personnel/internal/errs"
	"github.com/deppfellow/school-personnel/internal/model"
	"github.com/deppfellow/school-personnel/internal/service"
	"github.com/deppfellow/school-personnel/internal/testutil"
	"github.com/labstack/echo/v4"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestCreateHandler(t *testing.T) {
	store := testutil.NewProfessorStore()
	h := NewProfessorHandler(testutil.NewTestServer(t), service.NewProfessorService(store))

	c, rec := newContext(http.MethodPost, "/professor/add/", `{"first_name":"Ada","last_name":"Lovelace","career":"Mathematics"}`)
	if err := h.CreateHandler()(c); err != nil {
		t.Fatalf("CreateHandler: %v", err)
	}

	if rec.Code != http.StatusOK || rec.Body.String() != "Professor Ada Lovelace has been created correctly" {
		t.Errorf("response = %d %q", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != ProfessorLocation(1) {
		t.Errorf("Location = %q", loc)
	}
}

func TestCreateHandlerLimitsFieldLength(t *testing.T) {
	h := NewProfessorHandler(testutil.NewTestServer(t), service.NewProfessorService(testutil.NewProfessorStore()))

	body := fmt.Sprintf(`{"first_name":%q,"last_name":"Lovelace","career":"Mathematics"}`, strings.Repeat("a", 51))
	c, _ := newContext(http.MethodPost, "/professor/add/", body)

	err := h.CreateHandler()(c)
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Status != http.StatusBadRequest {
		t.Fatalf("err = %v", err)
	}
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "first_name" || httpErr.Errors[0].Error != "must not exceed 50 characters" {
		t.Errorf("field errors = %+v", httpErr.Errors)
	}
}

func TestGetHandlerBindsPathParam(t *testing.T) {
	store := testutil.NewProfessorStore(model.ProfessorPayload{FirstName: "Alan", LastName: "Turing", Career: "Computing"})
	h := NewProfessorHandler(testutil.NewTestServer(t), service.NewProfessorService(store))

	c, rec := newContext(http.MethodGet, "/professor/1/", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.GetHandler()(c); err != nil {
		t.Fatalf("GetHandler: %v", err)
	}

	var got model.Professor
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.ID != 1 || got.String() != "Alan Turing" {
		t.Errorf("got %+v", got)
	}
}

func TestUpdateHandlerIgnoresBodyID(t *testing.T) {
	store := testutil.NewProfessorStore(
		model.ProfessorPayload{FirstName: "Alan", LastName: "Turing", Career: "Computing"},
		model.ProfessorPayload{FirstName: "Grace", LastName: "Hopper", Career: "Compilers"},
	)
	h := NewProfessorHandler(testutil.NewTestServer(t), service.NewProfessorService(store))

	c, rec := newContext(http.MethodPut, "/professor/edit/2/", `{"id":1,"first_name":"Rear Admiral","last_name":"Hopper","career":"Navy"}`)
	c.SetParamNames("id")
	c.SetParamValues("2")

	if err := h.UpdateHandler()(c); err != nil {
		t.Fatalf("UpdateHandler: %v", err)
	}
	if rec.Body.String() != "Professor Rear Admiral Hopper modified correctly" {
		t.Errorf("body = %q", rec.Body.String())
	}

	first, _ := store.GetByID(c.Request().Context(), 1)
	if first.FirstName != "Alan" {
		t.Errorf("professor 1 was modified: %+v", first)
	}
}

// Each request must bind into its own value even though every call shares
// the prototype passed to Handle.
func TestHandlerRequestsDoNotShareState(t *testing.T) {
	store := testutil.NewProfessorStore()
	h := NewProfessorHandler(testutil.NewTestServer(t), service.NewProfessorService(store))
	create := h.CreateHandler()

	const n = 20
	var wg sync.WaitGroup
	messages := make([]string, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			c, rec := newContext(http.MethodPost, "/professor/add/",
				fmt.Sprintf(`{"first_name":"First%d","last_name":"Last%d","career":"Career"}`, i, i))
			if err := create(c); err != nil {
				t.Errorf("request %d: %v", i, err)
				return
			}
			messages[i] = rec.Body.String()
		}(i)
	}
	wg.Wait()

	for i, msg := range messages {
		want := fmt.Sprintf("Professor First%d Last%d has been created correctly", i, i)
		if msg != want {
			t.Errorf("request %d answered %q", i, msg)
		}
	}
	if store.Len() != n {
		t.Errorf("stored %d professors, want %d", store.Len(), n)
	}
}

func TestCheckHealth(t *testing.T) {
	t.Run("database unavailable", func(t *testing.T) {
		h := NewHealthHandler(testutil.NewTestServer(t))

		c, rec := newContext(http.MethodGet, "/status/", "")
		if err := h.CheckHealth(c); err != nil {
			t.Fatal(err)
		}
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("status = %d", rec.Code)
		}

		var body HealthResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		db := body.Checks["database"]
		if body.Status != "unhealthy" || db.Status != "unhealthy" || db.Error != errDatabaseNotConfigured.Error() {
			t.Errorf("body = %+v", body)
		}
	})

	t.Run("checks disabled", func(t *testing.T) {
		s := testutil.NewTestServer(t)
		s.Config.Observability.HealthChecks.Enabled = false
		h := NewHealthHandler(s)

		c, rec := newContext(http.MethodGet, "/status/", "")
		if err := h.CheckHealth(c); err != nil {
			t.Fatal(err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}

		var body HealthResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if body.Status != "healthy" || len(body.Checks) != 0 || body.Environment != "test" {
			t.Errorf("body = %+v", body)
		}
	})
}

func TestServeOpenAPIUI(t *testing.T) {
	h := NewOpenAPIHandler(testutil.NewTestServer(t))

	c, rec := newContext(http.MethodGet, "/docs/", "")
	if err := h.ServeOpenAPIUI(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK || rec.Header().Get("Cache-Control") != "no-cache" {
		t.Errorf("response = %d, cache %q", rec.Code, rec.Header().Get("Cache-Control"))
	}
	if !strings.Contains(rec.Body.String(), "/static/openapi.json") {
		t.Error("UI does not reference the OpenAPI document")
	}
}
