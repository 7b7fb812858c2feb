package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"tend-cli/internal/app"
)

func (m appModel) modalWidth() int {
	w := m.width * 2 / 3
	if w < 30 {
		w = 30
	}
	if w > m.width-4 {
		w = m.width - 4
	}
	return w
}

func (m appModel) renderModalBox(title, body string) string {
	th := m.theme()
	w := m.modalWidth()
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.DialogBorder).
		Padding(0, 1).
		Width(w).
		Render(lipgloss.NewStyle().Foreground(th.TabActive).Bold(true).Render(title) + "\n\n" + body)
	return box
}

func (m appModel) renderDialog(bodyHeight int) string {
	var box string
	switch m.app.Dialog {
	case app.DialogConfirmDelete, app.DialogConfirmDeleteCategory, app.DialogConfirmArchive:
		box = m.renderConfirmModal()
	default:
		box = m.renderInputModal()
	}
	return lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, box)
}

func dialogTitle(d app.Dialog) string {
	switch d {
	case app.DialogAddTask:
		return "Add task"
	case app.DialogAddProject:
		return "Add project"
	case app.DialogAddCategory:
		return "Add category"
	case app.DialogAddNote:
		return "Add note"
	case app.DialogEditTask:
		return "Edit task"
	case app.DialogEditProject:
		return "Edit project"
	case app.DialogEditCategory:
		return "Edit category"
	case app.DialogEditNote:
		return "Edit note"
	case app.DialogConfirmDelete:
		return "Delete"
	case app.DialogConfirmDeleteCategory:
		return "Delete category"
	case app.DialogConfirmArchive:
		return "Archive"
	}
	return ""
}

func (m appModel) renderInputModal() string {
	th := m.theme()
	w := m.modalWidth() - 4

	text := string(m.app.Input)
	cursor := m.app.InputCursor

	// Render a visible block cursor at the insertion point.
	cursorStyle := lipgloss.NewStyle().Foreground(th.Cursor).Reverse(true)
	var line string
	if cursor >= len(m.app.Input) {
		line = lipgloss.NewStyle().Foreground(th.DialogText).Render(text) + cursorStyle.Render(" ")
	} else {
		before := string(m.app.Input[:cursor])
		at := string(m.app.Input[cursor : cursor+1])
		after := string(m.app.Input[cursor+1:])
		style := lipgloss.NewStyle().Foreground(th.DialogText)
		line = style.Render(before) + cursorStyle.Render(at) + style.Render(after)
	}
	if text == "" {
		line = cursorStyle.Render(" ") +
			lipgloss.NewStyle().Foreground(th.DialogPlaceholder).Render(" type here")
	}
	if xansi.StringWidth(line) > w {
		line = xansi.Cut(line, 0, w)
	}

	help := lipgloss.NewStyle().Foreground(th.HelpText).Render("enter: confirm   esc: cancel")
	body := strings.Join([]string{line, "", help}, "\n")
	return m.renderModalBox(dialogTitle(m.app.Dialog), body)
}

func (m appModel) renderConfirmModal() string {
	th := m.theme()

	var prompt string
	switch m.app.Dialog {
	case app.DialogConfirmDeleteCategory:
		prompt = "Delete this category and everything in it?"
	case app.DialogConfirmArchive:
		prompt = "Archive all completed tasks?"
	default:
		if target := m.app.FocusedEditText(); target != "" {
			prompt = "Delete \"" + target + "\"?"
		} else {
			prompt = "Delete the selected item?"
		}
	}

	help := lipgloss.NewStyle().Foreground(th.HelpText).Render("y: yes   n/esc: no")
	body := strings.Join([]string{
		lipgloss.NewStyle().Foreground(th.DialogText).Render(prompt),
		"",
		help,
	}, "\n")
	return m.renderModalBox(dialogTitle(m.app.Dialog), body)
}
