// Package report renders tables for the command line: the registered
// HTTP routes and the stored professors.
package report

import (
	"io"
	"sort"
	"strconv"

	"github.com/deppfellow/school-personnel/internal/model"
	"github.com/fatih/color"
	"github.com/labstack/echo/v4"
	"github.com/olekukonko/tablewriter"
)

var title = color.New(color.FgYellow, color.Bold)

// Routes writes the route table sorted by path then method. Echo's
// internal catch-all entries are left out.
func Routes(w io.Writer, routes []*echo.Route) {
	rows := make([]*echo.Route, 0, len(routes))
	for _, r := range routes {
		if r.Method == echo.RouteNotFound {
			continue
		}
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Path != rows[j].Path {
			return rows[i].Path < rows[j].Path
		}
		return rows[i].Method < rows[j].Method
	})

	title.Fprintln(w, "Routes")

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Method", "Path", "Handler"})
	for _, r := range rows {
		table.Append([]string{r.Method, r.Path, r.Name})
	}
	table.Render()
}

// Professors writes one row per professor.
func Professors(w io.Writer, professors []model.Professor) {
	title.Fprintf(w, "Professors (%d)\n", len(professors))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "First Name", "Last Name", "Career"})
	for _, p := range professors {
		table.Append([]string{
			strconv.FormatInt(p.ID, 10),
			p.FirstName,
			p.LastName,
			p.Career,
		})
	}
	table.Render()
}
