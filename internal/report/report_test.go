package report

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/deppfellow/school-personnel/internal/model"
	"github.com/fatih/color"
	"github.com/labstack/echo/v4"
)

func init() {
	color.NoColor = true
}

func TestRoutes(t *testing.T) {
	var buf bytes.Buffer
	Routes(&buf, []*echo.Route{
		{Method: http.MethodPost, Path: "/professor/add/", Name: "create"},
		{Method: http.MethodGet, Path: "/", Name: "index"},
		{Method: echo.RouteNotFound, Path: "/*", Name: "notfound"},
	})

	out := buf.String()
	if !strings.HasPrefix(out, "Routes\n") {
		t.Errorf("missing title: %q", out)
	}
	if strings.Contains(out, "notfound") {
		t.Error("catch-all route listed")
	}
	index := strings.Index(out, "index")
	create := strings.Index(out, "create")
	if index < 0 || create < 0 || index > create {
		t.Errorf("routes not sorted by path:\n%s", out)
	}
}

func TestProfessors(t *testing.T) {
	var buf bytes.Buffer
	Professors(&buf, []model.Professor{
		{ID: 7, FirstName: "Ada", LastName: "Lovelace", Career: "Mathematics"},
	})

	out := buf.String()
	for _, want := range []string{"Professors (1)", "7", "Ada", "Lovelace", "Mathematics"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}
