package app

import "strings"

// The dialog input buffer is a single line of runes with its own cursor. The
// controller owns it so the core stays free of any terminal toolkit; the
// renderer only draws Input and InputCursor.

// OpenDialog opens a dialog with an empty input buffer.
func (a *App) OpenDialog(d Dialog) {
	a.Dialog = d
	a.Input = a.Input[:0]
	a.InputCursor = 0
}

// OpenDialogWithText opens a dialog pre-filled with text, cursor at the end.
func (a *App) OpenDialogWithText(d Dialog, text string) {
	a.Dialog = d
	a.Input = []rune(text)
	a.InputCursor = len(a.Input)
}

// CloseDialog discards the dialog and its buffer unconditionally.
func (a *App) CloseDialog() {
	a.Dialog = DialogNone
	a.Input = a.Input[:0]
	a.InputCursor = 0
}

// InputText is the trimmed buffer content.
func (a *App) InputText() string {
	return strings.TrimSpace(string(a.Input))
}

// InputRune inserts a rune at the cursor.
func (a *App) InputRune(r rune) {
	a.Input = append(a.Input[:a.InputCursor], append([]rune{r}, a.Input[a.InputCursor:]...)...)
	a.InputCursor++
}

// InputBackspace deletes the rune before the cursor.
func (a *App) InputBackspace() {
	if a.InputCursor > 0 {
		a.InputCursor--
		a.Input = append(a.Input[:a.InputCursor], a.Input[a.InputCursor+1:]...)
	}
}

// InputDelete deletes the rune under the cursor.
func (a *App) InputDelete() {
	if a.InputCursor < len(a.Input) {
		a.Input = append(a.Input[:a.InputCursor], a.Input[a.InputCursor+1:]...)
	}
}

func (a *App) InputMoveLeft() {
	if a.InputCursor > 0 {
		a.InputCursor--
	}
}

func (a *App) InputMoveRight() {
	if a.InputCursor < len(a.Input) {
		a.InputCursor++
	}
}

// ConfirmDialog runs the engine call selected by the open dialog and the
// current focus, then closes the dialog. Exactly one mutation per confirm.
func (a *App) ConfirmDialog() {
	switch a.Dialog {
	case DialogAddTask:
		a.AddTaskFromInput()
	case DialogAddProject:
		a.AddProjectFromInput()
	case DialogAddNote:
		a.AddNoteFromInput()
	case DialogAddCategory:
		a.AddCategoryFromInput()
	case DialogEditTask, DialogEditProject, DialogEditNote:
		a.ApplyEdit()
	case DialogEditCategory:
		// The same dialog renames from either view; settings addresses the
		// category by settings cursor, backlog by tree node.
		if a.View == ViewSettings {
			a.RenameSelectedCategory()
		} else {
			a.ApplyEdit()
		}
	case DialogConfirmDelete:
		a.DeleteFocused()
	case DialogConfirmDeleteCategory:
		a.DeleteSelectedCategory()
	case DialogConfirmArchive:
		a.ArchiveDone()
	}
	a.CloseDialog()
}
