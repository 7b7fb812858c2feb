package tui

import "github.com/charmbracelet/bubbles/key"

// Key bindings are declared with bubbles/key so the status bar help line is
// generated from the same definitions the update loop matches against.

type globalKeyMap struct {
	Quit   key.Binding
	Cycle  key.Binding
	Save   key.Binding
	Reload key.Binding
}

type listKeyMap struct {
	Down   key.Binding
	Up     key.Binding
	Top    key.Binding
	Bottom key.Binding
	Center key.Binding
	Move   key.Binding
}

type agendaKeyMap struct {
	Promote key.Binding
	Demote  key.Binding
	Auto    key.Binding
	Archive key.Binding
	Jump    key.Binding
}

type backlogKeyMap struct {
	Fold    key.Binding
	Promote key.Binding
	Demote  key.Binding
	Add     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Note    key.Binding
	Auto    key.Binding
	Archive key.Binding
}

type settingsKeyMap struct {
	Add    key.Binding
	Rename key.Binding
	Delete key.Binding
	Left   key.Binding
	Right  key.Binding
}

var keysGlobal = globalKeyMap{
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Cycle:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "view")),
	Save:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
	Reload: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reload")),
}

var keysList = listKeyMap{
	Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/k", "nav")),
	Up:     key.NewBinding(key.WithKeys("k", "up")),
	Top:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g/G", "top/bottom")),
	Bottom: key.NewBinding(key.WithKeys("G")),
	Center: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "center")),
	Move:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move")),
}

var keysAgenda = agendaKeyMap{
	Promote: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "promote")),
	Demote:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "demote")),
	Auto:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "auto")),
	Archive: key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "archive")),
	Jump:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open in backlog")),
}

var keysBacklog = backlogKeyMap{
	Fold:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "fold")),
	Promote: key.NewBinding(key.WithKeys("p"), key.WithHelp("p/x", "cycle")),
	Demote:  key.NewBinding(key.WithKeys("x")),
	Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "del")),
	Note:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "note")),
	Auto:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "auto")),
	Archive: key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "archive")),
}

var keysSettings = settingsKeyMap{
	Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Rename: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "rename")),
	Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "del")),
	Left:   key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/l", "theme")),
	Right:  key.NewBinding(key.WithKeys("l", "right")),
}

func helpLine(bindings ...key.Binding) string {
	out := ""
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		if out != "" {
			out += "  "
		}
		out += h.Key + ":" + h.Desc
	}
	return out
}
