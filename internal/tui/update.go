package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tend-cli/internal/app"
	"tend-cli/internal/model"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case reloadTickMsg:
		// External change poll. Unsaved local edits are never clobbered: the
		// change is only announced and the file left alone.
		if m.watcher.Changed() {
			if m.app.Dirty {
				m.app.Status = "External change detected (unsaved changes)"
				m.statusErr = true
			} else {
				m.reload()
			}
		}
		return m, tickReload()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Dialogs capture all input, then move mode, then the active view.
	if m.app.Dialog != app.DialogNone {
		m.handleDialogKey(msg)
		return m, nil
	}
	if m.app.IsMoving() {
		m.handleMoveKey(msg)
		return m, nil
	}

	switch {
	case key.Matches(msg, keysGlobal.Quit):
		return m, tea.Quit
	case key.Matches(msg, keysGlobal.Cycle):
		m.app.CycleView()
		return m, nil
	case key.Matches(msg, keysGlobal.Save):
		m.save()
		return m, nil
	case key.Matches(msg, keysGlobal.Reload):
		m.reload()
		return m, nil
	}

	switch m.app.View {
	case app.ViewAgenda:
		m.handleAgendaKey(msg)
	case app.ViewBacklog:
		m.handleBacklogKey(msg)
	case app.ViewSettings:
		m.handleSettingsKey(msg)
	}
	return m, nil
}

func (m *appModel) handleMoveKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keysList.Down):
		m.app.MoveStep(1)
	case key.Matches(msg, keysList.Up):
		m.app.MoveStep(-1)
	case msg.Type == tea.KeyEnter:
		m.app.AcceptMove()
	case msg.Type == tea.KeyEsc:
		m.app.CancelMove()
	}
}

func (m *appModel) handleListKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, keysList.Down):
		m.app.MoveDown()
	case key.Matches(msg, keysList.Up):
		m.app.MoveUp()
	case key.Matches(msg, keysList.Top):
		m.app.MoveTop()
	case key.Matches(msg, keysList.Bottom):
		m.app.MoveBottom()
	case key.Matches(msg, keysList.Center):
		m.app.CenterCursor(m.app.VisibleHeight)
	case key.Matches(msg, keysList.Move):
		m.app.StartMove()
	default:
		return false
	}
	return true
}

func (m *appModel) handleAgendaKey(msg tea.KeyMsg) {
	if m.handleListKey(msg) {
		return
	}
	switch {
	case key.Matches(msg, keysAgenda.Promote):
		m.app.PromoteSelectedAgenda()
	case key.Matches(msg, keysAgenda.Demote):
		m.app.DemoteSelectedAgenda()
	case key.Matches(msg, keysAgenda.Auto):
		m.app.RunAutoPromote()
	case key.Matches(msg, keysAgenda.Archive):
		m.app.OpenDialog(app.DialogConfirmArchive)
	case key.Matches(msg, keysAgenda.Jump):
		m.app.JumpToBacklogTask()
	}
}

func (m *appModel) handleBacklogKey(msg tea.KeyMsg) {
	if m.handleListKey(msg) {
		return
	}
	switch {
	case key.Matches(msg, keysBacklog.Fold):
		m.app.ToggleCollapse()
	case key.Matches(msg, keysBacklog.Promote):
		m.app.PromoteSelectedBacklog()
	case key.Matches(msg, keysBacklog.Demote):
		m.app.DemoteSelectedBacklog()
	case key.Matches(msg, keysBacklog.Add):
		if node, ok := m.app.CurrentTreeNode(); ok {
			if node.Kind == model.NodeCategory {
				m.app.OpenDialog(app.DialogAddProject)
			} else {
				m.app.OpenDialog(app.DialogAddTask)
			}
		}
	case key.Matches(msg, keysBacklog.Edit):
		if node, ok := m.app.CurrentTreeNode(); ok {
			text := m.app.FocusedEditText()
			switch node.Kind {
			case model.NodeTask:
				m.app.OpenDialogWithText(app.DialogEditTask, text)
			case model.NodeProject:
				m.app.OpenDialogWithText(app.DialogEditProject, text)
			case model.NodeCategory:
				m.app.OpenDialogWithText(app.DialogEditCategory, text)
			case model.NodeNote:
				m.app.OpenDialogWithText(app.DialogEditNote, text)
			}
		}
	case key.Matches(msg, keysBacklog.Delete):
		if node, ok := m.app.CurrentTreeNode(); ok && node.Kind != model.NodeCategory {
			m.app.OpenDialog(app.DialogConfirmDelete)
		}
	case key.Matches(msg, keysBacklog.Note):
		if node, ok := m.app.CurrentTreeNode(); ok && node.Kind == model.NodeTask {
			m.app.OpenDialog(app.DialogAddNote)
		}
	case key.Matches(msg, keysBacklog.Auto):
		m.app.RunAutoPromote()
	case key.Matches(msg, keysBacklog.Archive):
		m.app.OpenDialog(app.DialogConfirmArchive)
	}
}

func (m *appModel) handleSettingsKey(msg tea.KeyMsg) {
	_, onCategory := m.app.SettingsCategoryIdx()

	// The theme row steals h/l for theme cycling; elsewhere l centers.
	if !onCategory {
		switch {
		case key.Matches(msg, keysSettings.Left):
			m.app.PrevTheme()
			return
		case key.Matches(msg, keysSettings.Right):
			m.app.NextTheme()
			return
		}
	}

	if m.handleListKey(msg) {
		return
	}

	switch {
	case key.Matches(msg, keysSettings.Add):
		m.app.OpenDialog(app.DialogAddCategory)
	case key.Matches(msg, keysSettings.Rename):
		if ci, ok := m.app.SettingsCategoryIdx(); ok && ci < len(m.app.Doc.Categories) {
			m.app.OpenDialogWithText(app.DialogEditCategory, m.app.Doc.Categories[ci].Name)
		}
	case key.Matches(msg, keysSettings.Delete):
		if _, ok := m.app.SettingsCategoryIdx(); ok && len(m.app.Doc.Categories) > 0 {
			m.app.OpenDialog(app.DialogConfirmDeleteCategory)
		}
	}
}

func (m *appModel) handleDialogKey(msg tea.KeyMsg) {
	switch m.app.Dialog {
	case app.DialogConfirmDelete, app.DialogConfirmDeleteCategory, app.DialogConfirmArchive:
		switch msg.String() {
		case "y", "Y":
			m.app.ConfirmDialog()
		case "n", "N", "esc":
			m.app.CloseDialog()
		}
		return
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.app.CloseDialog()
	case tea.KeyEnter:
		m.app.ConfirmDialog()
	case tea.KeyBackspace:
		m.app.InputBackspace()
	case tea.KeyDelete:
		m.app.InputDelete()
	case tea.KeyLeft:
		m.app.InputMoveLeft()
	case tea.KeyRight:
		m.app.InputMoveRight()
	case tea.KeySpace:
		m.app.InputRune(' ')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.app.InputRune(r)
		}
	}
}
