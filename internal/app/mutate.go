package app

import (
	"tend-cli/internal/engine"
	"tend-cli/internal/model"
)

// PromoteSelectedAgenda cycles the focused agenda task's state forward. The
// agenda item is patched in place instead of rebuilt, so a task promoted to
// done stays visible where it was until the next refresh.
func (a *App) PromoteSelectedAgenda() {
	if a.AgendaCursor < 0 || a.AgendaCursor >= len(a.AgendaItems) {
		return
	}
	item := a.AgendaItems[a.AgendaCursor]
	if engine.PromoteTask(a.Doc, item.CategoryIdx, item.ProjectIdx, item.TaskIdx) {
		a.Dirty = true
		a.AgendaItems[a.AgendaCursor].Task = a.Doc.Categories[item.CategoryIdx].Projects[item.ProjectIdx].Tasks[item.TaskIdx]
		a.Status = "Task promoted"
		a.RebuildTree()
	}
}

func (a *App) DemoteSelectedAgenda() {
	if a.AgendaCursor < 0 || a.AgendaCursor >= len(a.AgendaItems) {
		return
	}
	item := a.AgendaItems[a.AgendaCursor]
	if engine.DemoteTask(a.Doc, item.CategoryIdx, item.ProjectIdx, item.TaskIdx) {
		a.Dirty = true
		a.AgendaItems[a.AgendaCursor].Task = a.Doc.Categories[item.CategoryIdx].Projects[item.ProjectIdx].Tasks[item.TaskIdx]
		a.Status = "Task demoted"
		a.RebuildTree()
	}
}

// PromoteSelectedBacklog promotes the focused task, or toggles the focused
// project between active and inactive.
func (a *App) PromoteSelectedBacklog() {
	a.cycleSelectedBacklog(engine.PromoteTask, "Task promoted")
}

func (a *App) DemoteSelectedBacklog() {
	a.cycleSelectedBacklog(engine.DemoteTask, "Task demoted")
}

func (a *App) cycleSelectedBacklog(op func(*model.Document, int, int, int) bool, okStatus string) {
	node, ok := a.CurrentTreeNode()
	if !ok {
		return
	}
	switch node.Kind {
	case model.NodeTask:
		if op(a.Doc, node.CategoryIdx, node.ProjectIdx, node.TaskIdx) {
			a.Dirty = true
			a.Status = okStatus
		}
	case model.NodeProject:
		if engine.ToggleProjectActive(a.Doc, node.CategoryIdx, node.ProjectIdx) {
			a.Dirty = true
			if a.Doc.Categories[node.CategoryIdx].Projects[node.ProjectIdx].Active {
				a.Status = "Project activated"
			} else {
				a.Status = "Project deactivated"
			}
		}
	default:
		return
	}
	a.RefreshAgenda()
	a.RebuildTree()
	a.restoreCursor(node)
}

// RunAutoPromote applies the auto-promote pass on demand.
func (a *App) RunAutoPromote() {
	engine.AutoPromote(a.Doc)
	a.Dirty = true
	a.Status = "Auto-promote complete"
	a.RefreshAgenda()
	a.RebuildTree()
}

// ArchiveDone moves every done task into the archive log.
func (a *App) ArchiveDone() {
	engine.ArchiveDone(a.Doc)
	a.Dirty = true
	a.Status = "Done tasks archived"
	a.RefreshAgenda()
	a.RebuildTree()
}

// AddTaskFromInput appends a task to the project the backlog cursor sits in
// (or on). Category rows take projects, not tasks.
func (a *App) AddTaskFromInput() {
	text := a.InputText()
	if text == "" {
		return
	}
	node, ok := a.CurrentTreeNode()
	if !ok || node.Kind == model.NodeCategory {
		return
	}
	if engine.AddTask(a.Doc, node.CategoryIdx, node.ProjectIdx, text) {
		a.Dirty = true
		a.Status = "Task added"
		a.RefreshAgenda()
		a.RebuildTree()
	}
}

// AddProjectFromInput appends an active project to the focused category.
func (a *App) AddProjectFromInput() {
	name := a.InputText()
	if name == "" {
		return
	}
	node, ok := a.CurrentTreeNode()
	if !ok {
		return
	}
	if engine.AddProject(a.Doc, node.CategoryIdx, name, true) {
		a.Dirty = true
		a.Status = "Project added"
		a.RefreshAgenda()
		a.RebuildTree()
	}
}

// AddNoteFromInput attaches an annotation to the focused task.
func (a *App) AddNoteFromInput() {
	note := a.InputText()
	if note == "" {
		return
	}
	node, ok := a.CurrentTreeNode()
	if !ok || node.Kind != model.NodeTask {
		return
	}
	if engine.AddTaskNote(a.Doc, node.CategoryIdx, node.ProjectIdx, node.TaskIdx, note) {
		a.Dirty = true
		a.Status = "Note added"
		a.RebuildTree()
		a.restoreCursor(node)
	}
}

// ApplyEdit renames the focused backlog entity (or rewrites the focused
// note) from the input buffer.
func (a *App) ApplyEdit() {
	text := a.InputText()
	if text == "" {
		return
	}
	node, ok := a.CurrentTreeNode()
	if !ok {
		return
	}
	changed := false
	switch node.Kind {
	case model.NodeTask:
		changed = engine.RenameTask(a.Doc, node.CategoryIdx, node.ProjectIdx, node.TaskIdx, text)
		a.Status = "Task renamed"
	case model.NodeProject:
		changed = engine.RenameProject(a.Doc, node.CategoryIdx, node.ProjectIdx, text)
		a.Status = "Project renamed"
	case model.NodeCategory:
		changed = engine.RenameCategory(a.Doc, node.CategoryIdx, text)
		a.Status = "Category renamed"
	case model.NodeNote:
		changed = engine.EditTaskNote(a.Doc, node.CategoryIdx, node.ProjectIdx, node.TaskIdx, node.NoteIdx, text)
		a.Status = "Note updated"
	}
	if changed {
		a.Dirty = true
	}
	a.RefreshAgenda()
	a.RebuildTree()
	a.restoreCursor(node)
}

// DeleteFocused removes the focused task, project or note. Categories are
// deleted from the settings view instead.
func (a *App) DeleteFocused() {
	node, ok := a.CurrentTreeNode()
	if !ok {
		return
	}
	switch node.Kind {
	case model.NodeTask:
		if engine.DeleteTask(a.Doc, node.CategoryIdx, node.ProjectIdx, node.TaskIdx) {
			a.Dirty = true
			a.Status = "Task deleted"
		}
	case model.NodeProject:
		if engine.DeleteProject(a.Doc, node.CategoryIdx, node.ProjectIdx) {
			a.Dirty = true
			a.Status = "Project deleted"
		}
	case model.NodeNote:
		if engine.DeleteTaskNote(a.Doc, node.CategoryIdx, node.ProjectIdx, node.TaskIdx, node.NoteIdx) {
			a.Dirty = true
			a.Status = "Note deleted"
		}
	default:
		return
	}
	a.RefreshAgenda()
	a.RebuildTree()
}

// FocusedEditText is the pre-fill text for an edit dialog on the focused
// backlog node.
func (a *App) FocusedEditText() string {
	node, ok := a.CurrentTreeNode()
	if !ok {
		return ""
	}
	c := a.Doc
	switch node.Kind {
	case model.NodeCategory:
		if node.CategoryIdx < len(c.Categories) {
			return c.Categories[node.CategoryIdx].Name
		}
	case model.NodeProject:
		if p := projectAt(c, node.CategoryIdx, node.ProjectIdx); p != nil {
			return p.Name
		}
	case model.NodeTask:
		if t := taskAt(c, node.CategoryIdx, node.ProjectIdx, node.TaskIdx); t != nil {
			return t.Text
		}
	case model.NodeNote:
		if t := taskAt(c, node.CategoryIdx, node.ProjectIdx, node.TaskIdx); t != nil && node.NoteIdx < len(t.Notes) {
			return node.Display
		}
	}
	return ""
}

// AddCategoryFromInput appends a category (settings view).
func (a *App) AddCategoryFromInput() {
	name := a.InputText()
	if name == "" {
		return
	}
	engine.AddCategory(a.Doc, name)
	a.Dirty = true
	a.Status = "Category added"
	a.RebuildTree()
}

// RenameSelectedCategory renames the category under the settings cursor.
func (a *App) RenameSelectedCategory() {
	name := a.InputText()
	if name == "" {
		return
	}
	ci, ok := a.SettingsCategoryIdx()
	if !ok {
		return
	}
	if engine.RenameCategory(a.Doc, ci, name) {
		a.Dirty = true
		a.Status = "Category renamed"
		a.RebuildTree()
	}
}

// DeleteSelectedCategory removes the category under the settings cursor,
// including all its projects.
func (a *App) DeleteSelectedCategory() {
	ci, ok := a.SettingsCategoryIdx()
	if !ok {
		return
	}
	if engine.RemoveCategory(a.Doc, ci) {
		a.Dirty = true
		a.Status = "Category deleted"
		a.RefreshAgenda()
		a.RebuildTree()
		if total := a.SettingsTotal(); a.SettingsCursor >= total {
			a.SettingsCursor = total - 1
		}
	}
}

// RerankSelectedCategory swaps the selected category with its neighbor and
// follows it with the cursor.
func (a *App) RerankSelectedCategory(dir int) {
	ci, ok := a.SettingsCategoryIdx()
	if !ok {
		return
	}
	if newIdx, ok := engine.RerankCategory(a.Doc, ci, dir); ok {
		a.SettingsCursor = newIdx + 1 // theme row offset
		a.Dirty = true
		a.RefreshAgenda()
		a.RebuildTree()
	}
}

// RerankFocused moves the focused backlog entity one step. A project at its
// category's edge crosses into the neighboring category: upward to its end,
// downward to its start.
func (a *App) RerankFocused(dir int) {
	node, ok := a.CurrentTreeNode()
	if !ok {
		return
	}
	var target model.TreeNode
	moved := false

	switch node.Kind {
	case model.NodeTask:
		if newIdx, ok := engine.RerankTask(a.Doc, node.CategoryIdx, node.ProjectIdx, node.TaskIdx, dir); ok {
			target = model.TreeNode{Kind: model.NodeTask, CategoryIdx: node.CategoryIdx, ProjectIdx: node.ProjectIdx, TaskIdx: newIdx}
			moved = true
		}
	case model.NodeProject:
		if newIdx, ok := engine.RerankProject(a.Doc, node.CategoryIdx, node.ProjectIdx, dir); ok {
			target = model.TreeNode{Kind: model.NodeProject, CategoryIdx: node.CategoryIdx, ProjectIdx: newIdx}
			moved = true
			break
		}
		ci, pi := node.CategoryIdx, node.ProjectIdx
		if dir < 0 && ci > 0 {
			destLen := len(a.Doc.Categories[ci-1].Projects)
			if nc, np, ok := engine.MoveProjectToCategory(a.Doc, ci, pi, ci-1, destLen); ok {
				target = model.TreeNode{Kind: model.NodeProject, CategoryIdx: nc, ProjectIdx: np}
				moved = true
			}
		} else if dir > 0 && ci+1 < len(a.Doc.Categories) {
			if nc, np, ok := engine.MoveProjectToCategory(a.Doc, ci, pi, ci+1, 0); ok {
				target = model.TreeNode{Kind: model.NodeProject, CategoryIdx: nc, ProjectIdx: np}
				moved = true
			}
		}
	}

	if !moved {
		return
	}
	a.Dirty = true
	a.RefreshAgenda()
	a.RebuildTree()
	a.restoreCursor(target)
}

func projectAt(doc *model.Document, ci, pi int) *model.Project {
	if ci < 0 || ci >= len(doc.Categories) {
		return nil
	}
	c := &doc.Categories[ci]
	if pi < 0 || pi >= len(c.Projects) {
		return nil
	}
	return &c.Projects[pi]
}

func taskAt(doc *model.Document, ci, pi, ti int) *model.Task {
	p := projectAt(doc, ci, pi)
	if p == nil || ti < 0 || ti >= len(p.Tasks) {
		return nil
	}
	return &p.Tasks[ti]
}
