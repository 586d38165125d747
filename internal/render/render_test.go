package render

import (
	"strings"
	"testing"

	"github.com/alexanderramin/ganttline/internal/domain"
	"github.com/alexanderramin/ganttline/internal/route"
	"github.com/alexanderramin/ganttline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBoard() ([]domain.Task, []domain.Dependency) {
	a := testutil.NewTestTask("R&D <core>",
		testutil.WithID("a"),
		testutil.WithDates("2026-01-01", "2026-01-05"),
		testutil.WithStatus(domain.StatusInProgress),
		testutil.WithProgress(50))
	b := testutil.NewTestTask("Build",
		testutil.WithID("b"),
		testutil.WithDates("2026-01-06", "2026-01-07"),
		testutil.DependsOn("a", domain.FinishToStart))
	return []domain.Task{a, b}, b.DependsOn
}

func TestSVG_DocumentSize(t *testing.T) {
	tasks, deps := sampleBoard()
	out := SVG(tasks, deps, route.DefaultLayout(testutil.MustDate("2026-01-01")))

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `<svg width="620" height="136"`)
	assert.True(t, strings.HasSuffix(out, "</svg>"))
	assert.Contains(t, out, "January 2026")
}

func TestSVG_BarsAndAnchors(t *testing.T) {
	tasks, deps := sampleBoard()
	out := SVG(tasks, deps, route.DefaultLayout(testutil.MustDate("2026-01-01")))

	assert.Contains(t, out, `<rect id="task-a" x="0" y="0" width="300" height="32" rx="4" fill="#64b5f6"/>`)
	assert.Contains(t, out, `<rect id="task-b" x="300" y="48" width="120" height="32" rx="4" fill="#cfd8dc"/>`)
	// Half of a's bar is covered by its progress overlay.
	assert.Contains(t, out, `<rect x="0" y="0" width="150" height="32"`)
	// End anchor of a and Start anchor of b.
	assert.Contains(t, out, `<circle cx="300" cy="20" r="3"`)
	assert.Contains(t, out, `<circle cx="300" cy="60" r="3"`)
}

func TestSVG_RoutesDependencies(t *testing.T) {
	tasks, deps := sampleBoard()
	layout := route.DefaultLayout(testutil.MustDate("2026-01-01"))
	out := SVG(tasks, deps, layout)

	geoms := layout.RouteAll(tasks, deps)
	require.Len(t, geoms, 1)
	assert.Contains(t, out, `<path d="`+geoms[0].Path.D()+`" stroke="#1e88e5"`)
	// The route turns at x=330 and comes back left into b's Start anchor.
	assert.Contains(t, out, `<polygon points="300,60 308,56 308,64" fill="#1e88e5"/>`)
}

func TestSVG_SkipsDanglingEdges(t *testing.T) {
	tasks, _ := sampleBoard()
	deps := []domain.Dependency{{PredecessorID: "gone", SuccessorID: "b", Kind: domain.StartToStart}}
	out := SVG(tasks, deps, route.DefaultLayout(testutil.MustDate("2026-01-01")))

	assert.NotContains(t, out, "<path")
	assert.NotContains(t, out, "<polygon")
}

func TestSVG_EscapesTitles(t *testing.T) {
	tasks, deps := sampleBoard()
	out := SVG(tasks, deps, route.DefaultLayout(testutil.MustDate("2026-01-01")))

	assert.Contains(t, out, "R&amp;D &lt;core&gt;")
	assert.NotContains(t, out, "<core>")
}

func TestSVG_EmptyBoard(t *testing.T) {
	out := SVG(nil, nil, route.DefaultLayout(testutil.MustDate("2026-03-01")))
	assert.Contains(t, out, `<svg width="260" height="40"`)
	assert.Contains(t, out, "March 2026")
}

func TestTimeline_MonthGrid(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTestTask("Design", testutil.WithDates("2026-02-03", "2026-02-05")),
		testutil.NewTestTask("Kickoff", testutil.WithDates("2026-01-30", "2026-02-02")),
		testutil.NewTestTask("Later", testutil.WithDates("2026-03-01", "2026-03-04")),
	}
	out := Timeline(tasks, testutil.MustDate("2026-02-10"))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 5)

	assert.Equal(t, "February 2026", lines[0])
	assert.Equal(t, "        │1234567890123456789012345678│", lines[1])
	assert.Equal(t, "Design  │··███"+strings.Repeat("·", 23)+"│", lines[2])
	assert.Equal(t, "Kickoff │██"+strings.Repeat("·", 26)+"│", lines[3])
	assert.Equal(t, "Later   │"+strings.Repeat("·", 28)+"│", lines[4])
}

func TestTimeline_TruncatesLongTitles(t *testing.T) {
	title := strings.Repeat("x", 30)
	tasks := []domain.Task{testutil.NewTestTask(title, testutil.WithDates("2026-02-01", "2026-02-01"))}
	out := Timeline(tasks, testutil.MustDate("2026-02-01"))

	assert.Contains(t, out, strings.Repeat("x", maxTitleWidth-1)+"… │█")
	assert.NotContains(t, out, title)
}
