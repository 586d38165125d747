package cli

import "github.com/charmbracelet/bubbles/key"

// boardKeyMap lists the key bindings of the interactive board. It satisfies
// help.KeyMap.
type boardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	ShiftLeft  key.Binding
	ShiftRight key.Binding
	Shrink     key.Binding
	Grow       key.Binding
	PrevMonth  key.Binding
	NextMonth  key.Binding
	LinkStart  key.Binding
	LinkEnd    key.Binding
	MoveRow    key.Binding
	Add        key.Binding
	Save       key.Binding
	Cancel     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newBoardKeyMap() boardKeyMap {
	return boardKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		ShiftLeft:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "earlier")),
		ShiftRight: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "later")),
		Shrink:     key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("H", "shorter")),
		Grow:       key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("L", "longer")),
		PrevMonth:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev month")),
		NextMonth:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next month")),
		LinkStart:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "link at start")),
		LinkEnd:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "link at end")),
		MoveRow:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move row")),
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
		Save:       key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "save")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "save & quit")),
	}
}

func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ShiftLeft, k.ShiftRight, k.LinkStart, k.LinkEnd, k.Help, k.Quit}
}

func (k boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.ShiftLeft, k.ShiftRight},
		{k.Shrink, k.Grow, k.PrevMonth, k.NextMonth},
		{k.LinkStart, k.LinkEnd, k.MoveRow, k.Add},
		{k.Save, k.Cancel, k.Help, k.Quit},
	}
}
