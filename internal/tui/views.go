package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"tend-cli/internal/app"
	"tend-cli/internal/model"
)

const (
	chromeHeight = 3 // header
	statusHeight = 1
	borderRows   = 2
)

func (m appModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	bodyHeight := m.height - chromeHeight - statusHeight
	// Border rows plus the panel title row.
	visible := bodyHeight - borderRows - 1
	if visible < 1 {
		visible = 1
	}
	m.app.UpdateScroll(visible)

	var body string
	switch m.app.View {
	case app.ViewAgenda:
		body = m.renderAgenda(visible)
	case app.ViewBacklog:
		body = m.renderBacklog(visible)
	case app.ViewSettings:
		body = m.renderSettings(visible)
	}

	if m.app.Dialog != app.DialogNone {
		body = m.renderDialog(bodyHeight)
	}

	return m.renderHeader() + "\n" + body + "\n" + m.renderStatusBar()
}

func (m appModel) renderHeader() string {
	th := m.theme()
	active := lipgloss.NewStyle().Foreground(th.TabActive).Bold(true)
	inactive := lipgloss.NewStyle().Foreground(th.TabInactive)

	tabs := []string{" Agenda ", " Backlog ", " Settings "}
	selected := int(m.app.View)
	for i, t := range tabs {
		if i == selected {
			tabs[i] = active.Render(t)
		} else {
			tabs[i] = inactive.Render(t)
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Border).
		Width(m.width - borderRows).
		Render(" tend " + strings.Join(tabs, "│"))
}

// boxed wraps rendered rows in the standard bordered panel, padding to the
// viewport height so the status bar stays pinned.
func (m appModel) boxed(title string, rows []string, visible int) string {
	th := m.theme()
	for len(rows) < visible {
		rows = append(rows, "")
	}
	inner := strings.Join(rows, "\n")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Border).
		Width(m.width - borderRows).
		Render(lipgloss.NewStyle().Foreground(th.TextDim).Render(title) + "\n" + inner)
}

// row truncates a rendered line to the inner panel width.
func (m appModel) row(s string) string {
	w := m.width - 4
	if w < 10 {
		w = 10
	}
	if xansi.StringWidth(s) > w {
		return xansi.Cut(s, 0, w)
	}
	return s
}

func (m appModel) cursorPrefix(selected bool) (string, lipgloss.Style) {
	th := m.theme()
	switch {
	case selected && m.app.IsMoving():
		return " ↕ ", lipgloss.NewStyle().Foreground(th.Moving)
	case selected:
		return " ▸ ", lipgloss.NewStyle().Foreground(th.Cursor)
	default:
		return "   ", lipgloss.NewStyle()
	}
}

func (m appModel) renderAgenda(visible int) string {
	th := m.theme()
	var rows []string

	end := m.app.AgendaScroll + visible
	if end > len(m.app.AgendaItems) {
		end = len(m.app.AgendaItems)
	}
	for i := m.app.AgendaScroll; i < end; i++ {
		item := m.app.AgendaItems[i]
		selected := i == m.app.AgendaCursor

		prefix, prefixStyle := m.cursorPrefix(selected)
		textStyle := lipgloss.NewStyle().Foreground(th.Text)
		if selected && m.app.IsMoving() {
			textStyle = lipgloss.NewStyle().Foreground(th.Moving).Bold(true)
		} else if selected {
			textStyle = lipgloss.NewStyle().Foreground(th.Selected).Bold(true)
		}

		line := prefixStyle.Render(prefix) +
			lipgloss.NewStyle().Foreground(th.StateColor(item.Task.State)).Render(item.Task.State.Symbol()+" ") +
			textStyle.Render(item.Task.Text) +
			lipgloss.NewStyle().Foreground(th.TextDim).Render(" ("+item.ProjectName+")")
		rows = append(rows, m.row(line))
	}

	if len(rows) == 0 {
		rows = append(rows, lipgloss.NewStyle().Foreground(th.TextDim).
			Render("  No active tasks. Press Tab to go to Backlog."))
	}
	return m.boxed(" Agenda ", rows, visible)
}

func (m appModel) renderBacklog(visible int) string {
	th := m.theme()
	var rows []string

	end := m.app.BacklogScroll + visible
	if end > len(m.app.TreeNodes) {
		end = len(m.app.TreeNodes)
	}
	for i := m.app.BacklogScroll; i < end; i++ {
		node := m.app.TreeNodes[i]
		selected := i == m.app.BacklogCursor

		prefix, prefixStyle := m.cursorPrefix(selected)
		indent := strings.Repeat("    ", node.Depth)

		var style lipgloss.Style
		switch {
		case selected && m.app.IsMoving():
			style = lipgloss.NewStyle().Foreground(th.Moving).Bold(true)
		case node.Kind == model.NodeCategory:
			style = lipgloss.NewStyle().Foreground(th.Category).Bold(true)
		case selected:
			style = lipgloss.NewStyle().Foreground(th.Selected).Bold(true)
		case node.Kind == model.NodeProject:
			style = lipgloss.NewStyle().Foreground(th.Project)
		case node.Kind == model.NodeNote:
			style = lipgloss.NewStyle().Foreground(th.TextDim)
		default:
			style = lipgloss.NewStyle().Foreground(th.Text)
		}

		// Tasks get a state dot in front of their text.
		dot := ""
		if node.Kind == model.NodeTask {
			if t := taskForNode(m.app.Doc, node); t != nil {
				dot = lipgloss.NewStyle().Foreground(th.StateColor(t.State)).Render("● ")
			}
		}

		rows = append(rows, m.row(prefixStyle.Render(prefix)+indent+dot+style.Render(node.Display)))
	}

	if len(rows) == 0 {
		rows = append(rows, lipgloss.NewStyle().Foreground(th.TextDim).
			Render("  No categories. Press 'a' to add one."))
	}
	return m.boxed(" Backlog ", rows, visible)
}

func taskForNode(doc *model.Document, node model.TreeNode) *model.Task {
	if node.CategoryIdx >= len(doc.Categories) {
		return nil
	}
	cat := &doc.Categories[node.CategoryIdx]
	if node.ProjectIdx >= len(cat.Projects) {
		return nil
	}
	proj := &cat.Projects[node.ProjectIdx]
	if node.TaskIdx >= len(proj.Tasks) {
		return nil
	}
	return &proj.Tasks[node.TaskIdx]
}

func (m appModel) renderSettings(visible int) string {
	th := m.theme()
	var rows []string

	total := m.app.SettingsTotal()
	end := m.app.SettingsScroll + visible
	if end > total {
		end = total
	}
	for i := m.app.SettingsScroll; i < end; i++ {
		selected := i == m.app.SettingsCursor
		prefix, prefixStyle := m.cursorPrefix(selected)

		style := lipgloss.NewStyle().Foreground(th.Text)
		if selected && m.app.IsMoving() {
			style = lipgloss.NewStyle().Foreground(th.Moving).Bold(true)
		} else if selected {
			style = lipgloss.NewStyle().Foreground(th.Selected).Bold(true)
		}

		if i == 0 {
			line := prefixStyle.Render(prefix) + style.Render("Theme: "+m.theme().Name) +
				lipgloss.NewStyle().Foreground(th.TextDim).Render("  (h/l to change)")
			rows = append(rows, m.row(line))
			continue
		}

		cat := m.app.Doc.Categories[i-1]
		line := prefixStyle.Render(prefix) + style.Render(cat.Name) +
			lipgloss.NewStyle().Foreground(th.TextDim).
				Render(fmt.Sprintf("  (%d projects)", len(cat.Projects)))
		rows = append(rows, m.row(line))
	}

	return m.boxed(" Settings ", rows, visible)
}

func (m appModel) renderStatusBar() string {
	th := m.theme()

	statusStyle := lipgloss.NewStyle().Foreground(th.Status)
	if m.statusErr {
		statusStyle = lipgloss.NewStyle().Foreground(th.StatusError)
	}
	status := ""
	if m.app.Status != "" {
		status = statusStyle.Render(" " + m.app.Status + " ")
	}

	dirty := ""
	if m.app.Dirty {
		dirty = lipgloss.NewStyle().Foreground(th.StatusError).Render("[modified]")
	}

	help := lipgloss.NewStyle().Foreground(th.HelpText).Render(m.helpText())
	return m.row(status + dirty + "  " + help)
}

func (m appModel) helpText() string {
	if m.app.IsMoving() {
		return "j/k:move  enter:accept  esc:cancel"
	}
	switch m.app.Dialog {
	case app.DialogNone:
	case app.DialogConfirmArchive, app.DialogConfirmDelete, app.DialogConfirmDeleteCategory:
		return "y:yes  n/esc:no"
	default:
		return "enter:confirm  esc:cancel"
	}

	switch m.app.View {
	case app.ViewAgenda:
		return helpLine(keysGlobal.Quit, keysGlobal.Cycle, keysList.Down, keysList.Center,
			keysList.Move, keysAgenda.Promote, keysAgenda.Demote, keysAgenda.Jump,
			keysAgenda.Auto, keysAgenda.Archive, keysGlobal.Save)
	case app.ViewBacklog:
		return helpLine(keysGlobal.Quit, keysGlobal.Cycle, keysList.Down, keysBacklog.Fold,
			keysBacklog.Promote, keysBacklog.Add, keysBacklog.Edit, keysBacklog.Delete,
			keysList.Move, keysBacklog.Note, keysGlobal.Save)
	default:
		return helpLine(keysGlobal.Quit, keysGlobal.Cycle, keysList.Down, keysSettings.Left,
			keysSettings.Add, keysSettings.Rename, keysSettings.Delete, keysList.Move,
			keysGlobal.Save)
	}
}
