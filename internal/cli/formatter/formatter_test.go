package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/ganttline/internal/domain"
	"github.com/alexanderramin/ganttline/internal/route"
	"github.com/alexanderramin/ganttline/internal/schedule"
	"github.com/alexanderramin/ganttline/internal/testutil"
	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func boardTasks() []domain.Task {
	return []domain.Task{
		testutil.NewTestTask("Design",
			testutil.WithID("a"),
			testutil.WithDates("2026-01-02", "2026-01-05"),
			testutil.WithMember("ana"),
			testutil.WithStatus(domain.StatusInProgress),
			testutil.WithImpact(domain.ImpactHigh),
			testutil.WithProgress(40)),
		testutil.NewTestTask("Build",
			testutil.WithID("b"),
			testutil.WithDates("2026-01-06", "2026-01-09"),
			testutil.DependsOn("a", domain.FinishToStart),
			testutil.DependsOn("gone", domain.StartToStart)),
	}
}

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name string
		pct  int
		want string
	}{
		{"zero", 0, "[░░░░░░░░]   0%"},
		{"partial", 45, "[███░░░░░]  45%"},
		{"full", 100, "[████████] 100%"},
		{"over 100 clamps", 150, "[████████] 100%"},
		{"negative clamps", -5, "[░░░░░░░░]   0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripANSI(RenderProgress(tt.pct, 8)))
		})
	}
}

func TestRenderProgress_TinyWidthClampsToTwo(t *testing.T) {
	assert.Equal(t, "[█░]  50%", stripANSI(RenderProgress(50, 1)))
}

func TestRenderTable_Alignment(t *testing.T) {
	got := stripANSI(RenderTable([]string{"A", "BB"}, [][]string{{"xxx", "y"}, {"z"}}))
	assert.Equal(t, "A    BB\n───  ──\nxxx  y\nz    \n", got)
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestRenderBox(t *testing.T) {
	result := RenderBox("TEST", "content here")
	assert.Contains(t, result, "TEST")
	assert.Contains(t, result, "content here")
	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╰")
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "12345678", stripANSI(TruncID("1234567890abcdef")))
	assert.Equal(t, "a", stripANSI(TruncID("a")))
}

func TestFormatDays(t *testing.T) {
	assert.Equal(t, "1 day", FormatDays(1))
	assert.Equal(t, "4 days", FormatDays(4))
}

func TestStatusPillAndImpactBadge(t *testing.T) {
	assert.Contains(t, stripANSI(StatusPill(domain.StatusInProgress)), "In Progress")
	assert.Contains(t, stripANSI(StatusPill(domain.StatusDone)), "✔ Done")
	assert.Contains(t, stripANSI(ImpactBadge(domain.ImpactHigh)), "High")
	assert.Equal(t, "Odd", stripANSI(ImpactBadge("Odd")))
}

func TestFormatTaskTable(t *testing.T) {
	out := stripANSI(FormatTaskTable(boardTasks()))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "DEPENDS ON")
	assert.Contains(t, lines[2], "Design")
	assert.Contains(t, lines[2], "ana")
	assert.Contains(t, lines[2], "02 Jan → 05 Jan")
	assert.Contains(t, lines[2], " 40%")
	assert.Contains(t, lines[3], "FS a, SS gone")
}

func TestFormatTaskDetail(t *testing.T) {
	out := stripANSI(FormatTaskDetail(boardTasks()[1]))
	assert.Contains(t, out, "Build")
	assert.Contains(t, out, "06 Jan → 09 Jan (4 days)")
	assert.Contains(t, out, "After     FS a")
	assert.Contains(t, out, "--")
}

func TestFormatResult(t *testing.T) {
	res := schedule.Result{Changes: []schedule.Change{
		{
			TaskID: "b",
			Before: domain.NewInterval(testutil.MustDate("2026-01-06"), testutil.MustDate("2026-01-09")),
			After:  domain.NewInterval(testutil.MustDate("2026-01-08"), testutil.MustDate("2026-01-11")),
		},
		{
			TaskID: "c",
			Before: domain.NewInterval(testutil.MustDate("2026-01-20"), testutil.MustDate("2026-01-21")),
			After:  domain.NewInterval(testutil.MustDate("2026-01-20"), testutil.MustDate("2026-01-21")),
		},
	}}
	out := stripANSI(FormatResult(res))

	assert.Contains(t, out, "edited b  06 Jan → 09 Jan ⇒ 08 Jan → 11 Jan")
	assert.Contains(t, out, "pushed c  20 Jan → 21 Jan (unchanged)")
	assert.Equal(t, "Nothing changed.", stripANSI(FormatResult(schedule.Result{})))
}

func TestFormatDependencyTable_FlagsConflicts(t *testing.T) {
	ok := domain.Dependency{PredecessorID: "a", SuccessorID: "b", Kind: domain.FinishToStart}
	bad := domain.Dependency{PredecessorID: "b", SuccessorID: "c", Kind: domain.FinishToFinish}
	out := stripANSI(FormatDependencyTable([]domain.Dependency{ok, bad}, []domain.Dependency{bad}))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	assert.Len(t, lines, 4)
	assert.Contains(t, lines[2], "Finish→Start")
	assert.Contains(t, lines[2], "ok")
	assert.Contains(t, lines[3], "Finish→Finish")
	assert.Contains(t, lines[3], "conflict")
}

func TestFormatDependencyTree(t *testing.T) {
	out := stripANSI(FormatDependencyTree(boardTasks()))

	assert.Contains(t, out, "#1 ")
	assert.Contains(t, out, "▶ ")
	assert.Contains(t, out, "├─ ")
	assert.Contains(t, out, "└─ gone (missing)")
	assert.Contains(t, out, "[ Finish→Start ]")
}

func TestFormatRoutes(t *testing.T) {
	tasks := boardTasks()
	layout := route.DefaultLayout(testutil.MustDate("2026-01-02"))
	out := stripANSI(FormatRoutes(layout.RouteAll(tasks, tasks[1].DependsOn)))

	assert.Contains(t, out, "a → b")
	// a's End anchor sits on row 0, four days wide.
	assert.Contains(t, out, "(240, 20)")
	assert.Contains(t, out, "(240, 60)")
	assert.NotContains(t, out, "gone")
}
