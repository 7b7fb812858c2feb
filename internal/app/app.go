// Package app is the stateful controller behind the TUI. It owns the
// document plus everything derived from it: the flat agenda, the flattened
// backlog tree, collapse state, per-view cursors and scroll offsets, the
// pending move, and the dialog input buffer. Rendering and key decoding live
// elsewhere; this package only exposes state and operations.
//
// After every document mutation the projections are rebuilt from scratch and
// the previously focused node is re-found by structural identity. Rebuilding
// wholesale instead of patching incrementally removes the entire class of
// projection/document desync bugs, and the documents are small enough that
// the recomputation cost never matters.
package app

import (
	"tend-cli/internal/engine"
	"tend-cli/internal/model"
	"tend-cli/internal/taskfile"
)

// View selects the top-level screen.
type View int

const (
	ViewAgenda View = iota
	ViewBacklog
	ViewSettings
)

// Dialog selects the modal dialog, if any.
type Dialog int

const (
	DialogNone Dialog = iota
	DialogAddTask
	DialogAddProject
	DialogAddCategory
	DialogAddNote
	DialogEditTask
	DialogEditProject
	DialogEditCategory
	DialogEditNote
	DialogConfirmDelete
	DialogConfirmDeleteCategory
	DialogConfirmArchive
)

// App holds all interactive state for one open document.
type App struct {
	Doc      *model.Document
	FilePath string

	View   View
	Dialog Dialog
	Dirty  bool
	Status string

	AgendaItems  []model.AgendaItem
	AgendaCursor int
	AgendaScroll int

	TreeNodes     []model.TreeNode
	BacklogCursor int
	BacklogScroll int
	Collapse      *model.CollapseState

	SettingsCursor int
	SettingsScroll int

	ThemeIndex int
	ThemeCount int

	// VisibleHeight is the last row count the renderer reported; cursor
	// centering uses it between frames.
	VisibleHeight int

	moving *moveOrigin

	Input       []rune
	InputCursor int
}

// New builds a controller around a parsed document. Auto-promote runs first
// so every active project has a current task before the agenda is built.
func New(doc *model.Document, filePath string) *App {
	engine.AutoPromote(doc)
	a := &App{
		Doc:        doc,
		FilePath:   filePath,
		View:       ViewAgenda,
		Collapse:   model.NewCollapseState(),
		ThemeCount: 1,
	}
	a.AgendaItems = engine.BuildAgenda(doc)
	a.RebuildTree()
	return a
}

// RefreshAgenda re-runs auto-promote and rebuilds the agenda projection,
// clamping the cursor into range.
func (a *App) RefreshAgenda() {
	engine.AutoPromote(a.Doc)
	a.AgendaItems = engine.BuildAgenda(a.Doc)
	if len(a.AgendaItems) == 0 {
		a.AgendaCursor = 0
	} else if a.AgendaCursor >= len(a.AgendaItems) {
		a.AgendaCursor = len(a.AgendaItems) - 1
	}
}

// SettingsTotal is the row count of the settings view: the theme selector
// row plus one row per category.
func (a *App) SettingsTotal() int {
	return 1 + len(a.Doc.Categories)
}

// SettingsCategoryIdx maps the settings cursor to a category index, or false
// when the cursor is on the theme row.
func (a *App) SettingsCategoryIdx() (int, bool) {
	if a.SettingsCursor == 0 {
		return 0, false
	}
	return a.SettingsCursor - 1, true
}

func (a *App) viewLen() int {
	switch a.View {
	case ViewAgenda:
		return len(a.AgendaItems)
	case ViewBacklog:
		return len(a.TreeNodes)
	default:
		return a.SettingsTotal()
	}
}

func (a *App) cursor() *int {
	switch a.View {
	case ViewAgenda:
		return &a.AgendaCursor
	case ViewBacklog:
		return &a.BacklogCursor
	default:
		return &a.SettingsCursor
	}
}

func (a *App) scroll() *int {
	switch a.View {
	case ViewAgenda:
		return &a.AgendaScroll
	case ViewBacklog:
		return &a.BacklogScroll
	default:
		return &a.SettingsScroll
	}
}

// MoveDown advances the cursor, wrapping at the end of the list.
func (a *App) MoveDown() {
	n := a.viewLen()
	if n == 0 {
		return
	}
	c := a.cursor()
	if *c < n-1 {
		*c++
	} else {
		*c = 0
	}
}

// MoveUp retreats the cursor, wrapping at the top.
func (a *App) MoveUp() {
	n := a.viewLen()
	if n == 0 {
		return
	}
	c := a.cursor()
	if *c > 0 {
		*c--
	} else {
		*c = n - 1
	}
}

func (a *App) MoveTop() {
	*a.cursor() = 0
}

func (a *App) MoveBottom() {
	if n := a.viewLen(); n > 0 {
		*a.cursor() = n - 1
	}
}

// UpdateScroll keeps the cursor inside the viewport of the given height.
// Called once per frame before rendering.
func (a *App) UpdateScroll(visibleHeight int) {
	a.VisibleHeight = visibleHeight
	cursor, scroll := *a.cursor(), a.scroll()
	if a.viewLen() == 0 || visibleHeight == 0 {
		*scroll = 0
		return
	}
	if cursor >= *scroll+visibleHeight {
		*scroll = cursor - visibleHeight + 1
	} else if cursor < *scroll {
		*scroll = cursor
	}
}

// CenterCursor scrolls so the cursor sits mid-viewport.
func (a *App) CenterCursor(visibleHeight int) {
	cursor, scroll := *a.cursor(), a.scroll()
	half := visibleHeight / 2
	if cursor > half {
		*scroll = cursor - half
	} else {
		*scroll = 0
	}
}

// CycleView rotates Agenda → Backlog → Settings → Agenda.
func (a *App) CycleView() {
	switch a.View {
	case ViewAgenda:
		a.View = ViewBacklog
	case ViewBacklog:
		a.View = ViewSettings
	default:
		a.View = ViewAgenda
	}
}

// Serialize renders the document for saving.
func (a *App) Serialize() string {
	return taskfile.Serialize(a.Doc)
}

// Reload replaces the document wholesale (external change or explicit
// reload), discarding derived state and local edits.
func (a *App) Reload(content string) {
	a.Doc = taskfile.Parse(content)
	a.Dirty = false
	a.moving = nil
	a.Status = "Reloaded from disk"
	a.RefreshAgenda()
	a.RebuildTree()
}

// NextTheme and PrevTheme cycle the settings theme row.
func (a *App) NextTheme() {
	if a.ThemeCount > 0 {
		a.ThemeIndex = (a.ThemeIndex + 1) % a.ThemeCount
	}
}

func (a *App) PrevTheme() {
	if a.ThemeCount > 0 {
		a.ThemeIndex = (a.ThemeIndex + a.ThemeCount - 1) % a.ThemeCount
	}
}
