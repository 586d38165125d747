package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/ganttline/internal/calendar"
	"github.com/alexanderramin/ganttline/internal/cli/formatter"
	"github.com/alexanderramin/ganttline/internal/domain"
	"github.com/alexanderramin/ganttline/internal/render"
	"github.com/alexanderramin/ganttline/internal/session"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// boardMode is what the next key press applies to.
type boardMode int

const (
	modeNormal boardMode = iota
	modeLink
	modeRowMove
	modeAdd
)

const boardTitleWidth = 20

// boardSavedMsg reports the outcome of persisting the session.
type boardSavedMsg struct {
	err  error
	quit bool
}

// boardModel is the interactive chart. It edits an in-memory session and
// persists it through the board service on save and on quit.
type boardModel struct {
	app  *App
	ctrl *session.Controller

	keys  boardKeyMap
	help  help.Model
	input textinput.Model

	mode     boardMode
	cursor   int
	dirty    bool
	status   string
	err      error
	width    int
	quitting bool
}

func newBoardModel(app *App, ctrl *session.Controller) boardModel {
	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 120
	ti.Prompt = "New task: "

	return boardModel{
		app:   app,
		ctrl:  ctrl,
		keys:  newBoardKeyMap(),
		help:  help.New(),
		input: ti,
	}
}

func (m boardModel) Init() tea.Cmd { return nil }

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case boardSavedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("saving board: %w", msg.err)
			return m, nil
		}
		m.dirty = false
		m.status = "Saved."
		if msg.quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeAdd {
			return m.updateAdd(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	tasks := m.ctrl.Tasks()

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.dirty {
			return m, m.save(true)
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.cancel()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.trackPointer()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(tasks)-1 {
			m.cursor++
		}
		m.trackPointer()
		return m, nil

	case key.Matches(msg, m.keys.LinkStart):
		return m.link(domain.EndpointStart)

	case key.Matches(msg, m.keys.LinkEnd):
		return m.link(domain.EndpointEnd)

	case key.Matches(msg, m.keys.MoveRow):
		return m.moveRow()
	}

	if m.mode != modeNormal {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Save):
		return m, m.save(false)

	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.input.Reset()
		cmd := m.input.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.PrevMonth):
		m.ctrl.PrevPeriod()
		m.dirty = true

	case key.Matches(msg, m.keys.NextMonth):
		m.ctrl.NextPeriod()
		m.dirty = true

	case key.Matches(msg, m.keys.ShiftLeft):
		m.edit(func(id string) error { _, err := m.ctrl.Shift(id, -1); return err })

	case key.Matches(msg, m.keys.ShiftRight):
		m.edit(func(id string) error { _, err := m.ctrl.Shift(id, 1); return err })

	case key.Matches(msg, m.keys.Shrink):
		m.edit(func(id string) error { _, err := m.ctrl.Stretch(id, -1); return err })

	case key.Matches(msg, m.keys.Grow):
		m.edit(func(id string) error { _, err := m.ctrl.Stretch(id, 1); return err })
	}
	return m, nil
}

func (m boardModel) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeNormal
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		m.mode = modeNormal
		m.input.Blur()
		t, err := m.ctrl.AddTask(m.input.Value(), "")
		switch {
		case errors.Is(err, domain.ErrEmptyTitle):
			m.status = "Nothing added."
		case err != nil:
			m.err = err
		default:
			m.dirty = true
			m.cursor = len(m.ctrl.Tasks()) - 1
			m.status = fmt.Sprintf("Added %s.", t.Title)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// selected returns the id of the task under the cursor.
func (m *boardModel) selected() (string, bool) {
	tasks := m.ctrl.Tasks()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return "", false
	}
	return tasks[m.cursor].ID, true
}

func (m *boardModel) edit(fn func(id string) error) {
	id, ok := m.selected()
	if !ok {
		return
	}
	if err := fn(id); err != nil {
		m.err = err
		return
	}
	m.dirty = true
}

// link starts a dependency line at the selected task's endpoint, or ends
// the line in progress there.
func (m boardModel) link(endpoint domain.EndpointKind) (tea.Model, tea.Cmd) {
	id, ok := m.selected()
	if !ok || m.mode == modeRowMove {
		return m, nil
	}

	if m.mode != modeLink {
		if err := m.ctrl.BeginDraw(id, endpoint); err != nil {
			m.err = err
			return m, nil
		}
		m.mode = modeLink
		m.status = ""
		return m, nil
	}

	m.mode = modeNormal
	link, err := m.ctrl.CompleteDraw(id, endpoint)
	switch {
	case errors.Is(err, domain.ErrSelfDependency):
		// Dropping a line on its own task is not an edit.
	case err != nil:
		m.err = err
	default:
		m.dirty = true
		m.status = fmt.Sprintf("Linked %s → %s (%s).",
			link.Dependency.PredecessorID, link.Dependency.SuccessorID, link.Dependency.Kind)
	}
	return m, nil
}

func (m boardModel) moveRow() (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeNormal:
		if err := m.ctrl.BeginRowDrag(m.cursor); err != nil {
			m.err = err
			return m, nil
		}
		m.mode = modeRowMove
	case modeRowMove:
		m.mode = modeNormal
		from := m.ctrl.DraggingRow()
		if err := m.ctrl.DropRow(m.cursor); err != nil {
			m.err = err
			return m, nil
		}
		if from != m.cursor {
			m.dirty = true
		}
	}
	return m, nil
}

// cancel abandons whatever gesture is pending, a line or a row drag.
func (m *boardModel) cancel() {
	m.ctrl.CancelDraw()
	if row := m.ctrl.DraggingRow(); row >= 0 {
		// Dropping a row onto itself leaves the order unchanged.
		_ = m.ctrl.DropRow(row)
	}
	m.mode = modeNormal
}

// trackPointer follows the cursor with the in-progress line.
func (m *boardModel) trackPointer() {
	id, ok := m.selected()
	if !ok || !m.ctrl.Drawing() {
		return
	}
	if a, ok := m.ctrl.Anchor(id, domain.EndpointStart); ok {
		m.ctrl.MovePointer(a.Point)
	}
}

func (m boardModel) save(quit bool) tea.Cmd {
	app, ctrl := m.app, m.ctrl
	return func() tea.Msg {
		return boardSavedMsg{err: app.Board.Save(context.Background(), ctrl), quit: quit}
	}
}

// ── View ─────────────────────────────────────────────────────────────────────

func (m boardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderRows())
	b.WriteString("\n")

	if line := m.renderStatus(); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if m.mode == modeAdd {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m boardModel) renderHeader() string {
	header := formatter.StyleHeader.Render("GANTTLINE") + "  " +
		formatter.Bold(calendar.FormatMonth(m.ctrl.Period()))
	switch m.mode {
	case modeLink:
		header += "  " + formatter.StyleYellow.Render("[link]")
	case modeRowMove:
		header += "  " + formatter.StyleYellow.Render("[move row]")
	}
	if m.dirty {
		header += "  " + formatter.Dim("(unsaved)")
	}
	return header
}

func (m boardModel) renderRows() string {
	tasks := m.ctrl.Tasks()
	if len(tasks) == 0 {
		return formatter.Dim("No tasks yet. Press a to add one.") + "\n"
	}

	first := calendar.StartOfMonth(m.ctrl.Period())
	days := calendar.DaysInMonth(first)
	source := ""
	if d, ok := m.ctrl.CurrentDraw(); ok {
		source = d.From.TaskID
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", boardTitleWidth+3))
	for d := 1; d <= days; d++ {
		b.WriteString(formatter.Dim(fmt.Sprintf("%d", d%10)))
	}
	b.WriteString("\n")

	for i, t := range tasks {
		marker := "  "
		switch {
		case i == m.cursor:
			marker = formatter.StyleHeader.Render("▸ ")
		case i == m.ctrl.DraggingRow():
			marker = formatter.StyleYellow.Render("↕ ")
		}
		if t.ID == source {
			marker = formatter.StyleYellow.Render("◆ ")
		}

		title := fitTitle(t.Title, boardTitleWidth)
		if i == m.cursor {
			title = formatter.Bold(title)
		}

		b.WriteString(marker)
		b.WriteString(title)
		b.WriteString(" ")
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(render.StatusFill(t.Status)))
		for d := 0; d < days; d++ {
			day := calendar.AddDays(first, d)
			if !calendar.Before(day, t.Start) && !calendar.Before(t.End, day) {
				b.WriteString(bar.Render(render.CellFilled))
			} else {
				b.WriteString(formatter.Dim(render.CellEmpty))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m boardModel) renderStatus() string {
	if m.err != nil {
		return formatter.StyleRed.Render("Error: " + m.err.Error())
	}
	var parts []string
	if d, ok := m.ctrl.CurrentDraw(); ok {
		parts = append(parts, formatter.StyleYellow.Render(fmt.Sprintf(
			"Linking from %s (%s): pick a row, then s or e.", d.From.TaskID, d.From.Endpoint)))
	}
	if m.mode == modeRowMove {
		parts = append(parts, formatter.StyleYellow.Render("Pick the new row, then m."))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	if n := len(m.ctrl.Conflicts()); n > 0 {
		parts = append(parts, formatter.StyleRed.Render(fmt.Sprintf("%d conflicting dependencies", n)))
	}
	return strings.Join(parts, "  ")
}

// fitTitle pads or truncates s to exactly width cells.
func fitTitle(s string, width int) string {
	r := []rune(s)
	for lipgloss.Width(string(r)) > width {
		r = r[:len(r)-1]
	}
	out := string(r)
	if len(r) < len([]rune(s)) && len(r) > 0 {
		out = string(r[:len(r)-1]) + "…"
	}
	return out + strings.Repeat(" ", width-lipgloss.Width(out))
}
