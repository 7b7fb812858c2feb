package app

import (
	"testing"

	"tend-cli/internal/model"
)

func typeText(a *App, s string) {
	for _, r := range s {
		a.InputRune(r)
	}
}

func TestPromoteSelectedAgendaPatchesItemInPlace(t *testing.T) {
	a := newTestApp(t)
	a.AgendaCursor = 0 // Draft page, in progress

	a.PromoteSelectedAgenda()

	if !a.Dirty {
		t.Fatalf("promote did not mark dirty")
	}
	// The row stays where it was; only its snapshot changes.
	if a.AgendaItems[0].Task.Text != "Draft page" || a.AgendaItems[0].Task.State != model.Done {
		t.Fatalf("agenda[0] = %#v", a.AgendaItems[0].Task)
	}
	if a.Doc.Categories[0].Projects[0].Tasks[1].State != model.Done {
		t.Fatalf("document not updated")
	}
	// A refresh regroups: the now-done task leaves the top slot.
	a.RefreshAgenda()
	if a.AgendaItems[0].Task.Text == "Draft page" {
		t.Fatalf("refresh kept the done task in the in-progress slot")
	}
}

func TestDemoteSelectedAgenda(t *testing.T) {
	a := newTestApp(t)
	a.AgendaCursor = 0
	a.DemoteSelectedAgenda()
	if a.AgendaItems[0].Task.State != model.OnDeck {
		t.Fatalf("state = %v", a.AgendaItems[0].Task.State)
	}
}

func TestBacklogPromoteOnProjectTogglesActive(t *testing.T) {
	a := newTestApp(t)
	focusProject(t, a, "Someday")

	a.PromoteSelectedBacklog()
	if !a.Doc.Categories[0].Projects[1].Active {
		t.Fatalf("project not activated")
	}
	// Its tasks join the agenda, auto-promoted.
	found := false
	for _, it := range a.AgendaItems {
		if it.ProjectName == "Someday" {
			found = true
		}
	}
	if !found {
		t.Fatalf("activated project missing from agenda")
	}

	focusProject(t, a, "Someday")
	a.DemoteSelectedBacklog()
	if a.Doc.Categories[0].Projects[1].Active {
		t.Fatalf("project not deactivated")
	}
}

func TestBacklogPromoteOnTask(t *testing.T) {
	a := newTestApp(t)
	focusTask(t, a, "Review")
	a.PromoteSelectedBacklog()
	if a.Doc.Categories[0].Projects[0].Tasks[2].State != model.OnDeck {
		t.Fatalf("state = %v", a.Doc.Categories[0].Projects[0].Tasks[2].State)
	}
}

func TestAddTaskDialogFlow(t *testing.T) {
	a := newTestApp(t)
	focusTask(t, a, "Review")

	a.OpenDialog(DialogAddTask)
	typeText(a, "  Ship it  ")
	a.ConfirmDialog()

	if a.Dialog != DialogNone {
		t.Fatalf("dialog still open")
	}
	tasks := a.Doc.Categories[0].Projects[0].Tasks
	added := tasks[len(tasks)-1]
	if added.Text != "Ship it" || added.State != model.Todo {
		t.Fatalf("added = %#v", added)
	}
}

func TestAddTaskRejectedOnCategoryRow(t *testing.T) {
	a := newTestApp(t)
	a.View = ViewBacklog
	a.BacklogCursor = 0

	a.OpenDialog(DialogAddTask)
	typeText(a, "nope")
	a.ConfirmDialog()

	for _, c := range a.Doc.Categories {
		for _, p := range c.Projects {
			for _, tk := range p.Tasks {
				if tk.Text == "nope" {
					t.Fatalf("task added from a category row")
				}
			}
		}
	}
}

func TestEmptyInputIsIgnored(t *testing.T) {
	a := newTestApp(t)
	focusTask(t, a, "Review")
	before := len(a.Doc.Categories[0].Projects[0].Tasks)

	a.OpenDialog(DialogAddTask)
	typeText(a, "   ")
	a.ConfirmDialog()

	if len(a.Doc.Categories[0].Projects[0].Tasks) != before {
		t.Fatalf("whitespace-only input added a task")
	}
	if a.Dirty {
		t.Fatalf("no-op confirm marked dirty")
	}
}

func TestAddProjectFromCategoryRow(t *testing.T) {
	a := newTestApp(t)
	a.View = ViewBacklog
	a.BacklogCursor = 0 // Work

	a.OpenDialog(DialogAddProject)
	typeText(a, "New thing")
	a.ConfirmDialog()

	projs := a.Doc.Categories[0].Projects
	added := projs[len(projs)-1]
	if added.Name != "New thing" || !added.Active {
		t.Fatalf("added = %#v", added)
	}
}

func TestAddNoteStoresIndentedAndDisplaysTrimmed(t *testing.T) {
	a := newTestApp(t)
	focusTask(t, a, "Review")

	a.OpenDialog(DialogAddNote)
	typeText(a, "check the margins")
	a.ConfirmDialog()

	tk := a.Doc.Categories[0].Projects[0].Tasks[2]
	if len(tk.Notes) != 1 || tk.Notes[0] != "  check the margins" {
		t.Fatalf("notes = %#v", tk.Notes)
	}
	found := false
	for _, n := range a.TreeNodes {
		if n.Kind == model.NodeNote && n.Display == "check the margins" {
			found = true
		}
	}
	if !found {
		t.Fatalf("note node missing from tree")
	}
}

func TestEditDialogRenamesFocusedEntity(t *testing.T) {
	a := newTestApp(t)
	focusTask(t, a, "Review")

	if got := a.FocusedEditText(); got != "Review" {
		t.Fatalf("prefill = %q", got)
	}
	a.OpenDialogWithText(DialogEditTask, a.FocusedEditText())
	a.InputBackspace()
	a.InputBackspace()
	typeText(a, "write")
	a.ConfirmDialog()

	if a.Doc.Categories[0].Projects[0].Tasks[2].Text != "Reviwrite" {
		t.Fatalf("text = %q", a.Doc.Categories[0].Projects[0].Tasks[2].Text)
	}
}

func TestEditNoteRewritesWithIndent(t *testing.T) {
	a := newTestApp(t)
	a.View = ViewBacklog
	a.BacklogCursor = 4 // the note under Draft page

	if got := a.FocusedEditText(); got != "layout sketch attached" {
		t.Fatalf("prefill = %q", got)
	}
	a.OpenDialog(DialogEditNote)
	typeText(a, "new text")
	a.ConfirmDialog()

	if got := a.Doc.Categories[0].Projects[0].Tasks[1].Notes[0]; got != "  new text" {
		t.Fatalf("note = %q", got)
	}
}

func TestDeleteFocusedSkipsCategories(t *testing.T) {
	a := newTestApp(t)
	a.View = ViewBacklog
	a.BacklogCursor = 0
	a.DeleteFocused()
	if len(a.Doc.Categories) != 2 {
		t.Fatalf("category deleted from backlog")
	}

	focusTask(t, a, "Idea")
	a.OpenDialog(DialogConfirmDelete)
	a.ConfirmDialog()
	if len(a.Doc.Categories[0].Projects[1].Tasks) != 0 {
		t.Fatalf("task not deleted")
	}
}

func TestCategoryLifecycleFromSettings(t *testing.T) {
	a := newTestApp(t)
	a.View = ViewSettings

	a.OpenDialog(DialogAddCategory)
	typeText(a, "Errands")
	a.ConfirmDialog()
	if len(a.Doc.Categories) != 3 || a.Doc.Categories[2].Name != "Errands" {
		t.Fatalf("categories = %#v", a.Doc.Categories)
	}

	a.SettingsCursor = 3
	a.OpenDialog(DialogEditCategory)
	typeText(a, "Out and about")
	a.ConfirmDialog()
	if a.Doc.Categories[2].Name != "Out and about" {
		t.Fatalf("rename failed: %#v", a.Doc.Categories[2])
	}

	a.OpenDialog(DialogConfirmDeleteCategory)
	a.ConfirmDialog()
	if len(a.Doc.Categories) != 2 {
		t.Fatalf("delete failed")
	}
	if a.SettingsCursor >= a.SettingsTotal() {
		t.Fatalf("settings cursor out of range: %d", a.SettingsCursor)
	}
}

func TestArchiveDoneFromController(t *testing.T) {
	a := newTestApp(t)
	a.OpenDialog(DialogConfirmArchive)
	a.ConfirmDialog()

	if len(a.Doc.Archive) != 1 || a.Doc.Archive[0] != "- ✅ Kickoff" {
		t.Fatalf("archive = %#v", a.Doc.Archive)
	}
	for _, it := range a.AgendaItems {
		if it.Task.State == model.Done {
			t.Fatalf("done task survived in agenda")
		}
	}
}

func TestRerankFocusedFollowsCursor(t *testing.T) {
	a := newTestApp(t)
	focusTask(t, a, "Draft page")

	a.RerankFocused(1)
	node, ok := a.CurrentTreeNode()
	if !ok || node.Kind != model.NodeTask || node.TaskIdx != 2 {
		t.Fatalf("cursor = %#v", node)
	}
	if a.Doc.Categories[0].Projects[0].Tasks[2].Text != "Draft page" {
		t.Fatalf("task not moved")
	}
}
