package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/ganttline/internal/domain"
	"github.com/alexanderramin/ganttline/internal/route"
	"github.com/alexanderramin/ganttline/internal/schedule"
)

const taskProgressBarWidth = 8

// FormatTaskTable renders the task table in row order. Rows are numbered
// from 1, matching the reorder command.
func FormatTaskTable(tasks []domain.Task) string {
	headers := []string{"#", "ID", "TITLE", "MEMBER", "STATUS", "IMPACT", "PROGRESS", "DATES", "DAYS", "DEPENDS ON"}
	rows := make([][]string, 0, len(tasks))
	for i, t := range tasks {
		rows = append(rows, []string{
			Dim(strconv.Itoa(i + 1)),
			TruncID(t.ID),
			Bold(t.Title),
			Member(t.Member),
			StatusPill(t.Status),
			ImpactBadge(t.Impact),
			RenderProgress(t.Progress, taskProgressBarWidth),
			DateRange(t.Interval()),
			strconv.Itoa(t.Duration()),
			dependsOnCell(t.DependsOn),
		})
	}
	return RenderTable(headers, rows)
}

func dependsOnCell(deps []domain.Dependency) string {
	if len(deps) == 0 {
		return Dim("--")
	}
	parts := make([]string, 0, len(deps))
	for _, d := range deps {
		parts = append(parts, KindBadge(d.Kind)+" "+d.PredecessorID)
	}
	return strings.Join(parts, ", ")
}

// FormatTaskDetail renders a single task in a box.
func FormatTaskDetail(t domain.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Bold(t.Title), Dim(t.ID))
	fmt.Fprintf(&b, "Member    %s\n", Member(t.Member))
	fmt.Fprintf(&b, "Status    %s\n", StatusPill(t.Status))
	fmt.Fprintf(&b, "Impact    %s\n", ImpactBadge(t.Impact))
	fmt.Fprintf(&b, "Progress  %s\n", RenderProgress(t.Progress, taskProgressBarWidth))
	fmt.Fprintf(&b, "Dates     %s (%s)", DateRange(t.Interval()), FormatDays(t.Duration()))
	for _, d := range t.DependsOn {
		fmt.Fprintf(&b, "\nAfter     %s %s", KindBadge(d.Kind), d.PredecessorID)
	}
	return RenderBox("Task", b.String())
}

// FormatResult lists every task an edit committed. Unchanged tasks are
// reported as such so a user can tell a constraint held them in place.
func FormatResult(res schedule.Result) string {
	if len(res.Changes) == 0 {
		return Dim("Nothing changed.")
	}
	var b strings.Builder
	for i, c := range res.Changes {
		label := "edited"
		if i > 0 {
			label = "pushed"
		}
		if !c.Moved() {
			fmt.Fprintf(&b, "%s %s  %s\n", Dim(label), c.TaskID, Dim(DateRange(c.After)+" (unchanged)"))
			continue
		}
		fmt.Fprintf(&b, "%s %s  %s %s %s\n",
			StyleGreen.Render(label), c.TaskID,
			Dim(DateRange(c.Before)), StyleDim.Render("⇒"), StyleBold.Render(DateRange(c.After)))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// FormatDependencyTable renders every edge. Edges whose constraint does not
// hold on the current dates are flagged.
func FormatDependencyTable(deps []domain.Dependency, conflicts []domain.Dependency) string {
	broken := make(map[domain.Dependency]bool, len(conflicts))
	for _, d := range conflicts {
		broken[d] = true
	}
	headers := []string{"PREDECESSOR", "SUCCESSOR", "KIND", "RELATION", "STATE"}
	rows := make([][]string, 0, len(deps))
	for _, d := range deps {
		state := StyleGreen.Render("ok")
		if broken[d] {
			state = StyleRed.Render("conflict")
		}
		rows = append(rows, []string{d.PredecessorID, d.SuccessorID, KindBadge(d.Kind), d.Kind.Label(), state})
	}
	return RenderTable(headers, rows)
}

// FormatDependencyTree shows each task with the tasks it waits on nested
// beneath it.
func FormatDependencyTree(tasks []domain.Task) string {
	titles := make(map[string]string, len(tasks))
	statuses := make(map[string]domain.TaskStatus, len(tasks))
	for _, t := range tasks {
		titles[t.ID] = t.Title
		statuses[t.ID] = t.Status
	}

	var items []TreeItem
	for i, t := range tasks {
		items = append(items, TreeItem{
			Title:  t.Title,
			Row:    i + 1,
			Status: t.Status,
			Detail: DateRange(t.Interval()),
		})
		for j, d := range t.DependsOn {
			title, ok := titles[d.PredecessorID]
			if !ok {
				title = d.PredecessorID + " (missing)"
			}
			items = append(items, TreeItem{
				Title:  title,
				Level:  1,
				IsLast: j == len(t.DependsOn)-1,
				Status: statuses[d.PredecessorID],
				Detail: d.Kind.Label(),
				Kind:   d.Kind,
			})
		}
	}
	return RenderTree(items)
}

// FormatRoutes lists the routed geometry of each edge.
func FormatRoutes(geoms []route.EdgeGeometry) string {
	headers := []string{"EDGE", "KIND", "FROM", "TO", "MID X", "PATH"}
	rows := make([][]string, 0, len(geoms))
	for _, g := range geoms {
		rows = append(rows, []string{
			g.Dependency.PredecessorID + " → " + g.Dependency.SuccessorID,
			KindBadge(g.Dependency.Kind),
			formatPoint(g.From.Point),
			formatPoint(g.To.Point),
			strconv.FormatFloat(g.Path.MidX, 'f', -1, 64),
			Dim(g.Path.D()),
		})
	}
	return RenderTable(headers, rows)
}

func formatPoint(p route.Point) string {
	return fmt.Sprintf("(%s, %s)",
		strconv.FormatFloat(p.X, 'f', -1, 64),
		strconv.FormatFloat(p.Y, 'f', -1, 64))
}
