package engine

import (
	"testing"

	"tend-cli/internal/model"
)

func fixtureDoc() *model.Document {
	return &model.Document{
		Categories: []model.Category{
			{
				Name: "Work",
				Projects: []model.Project{
					{
						Name:   "Website",
						Active: true,
						Tasks: []model.Task{
							{State: model.Done, Text: "Kickoff"},
							{State: model.Todo, Text: "Draft page"},
							{State: model.Todo, Text: "Review"},
						},
					},
					{
						Name: "Someday",
						Tasks: []model.Task{
							{State: model.Todo, Text: "Idea"},
						},
					},
				},
			},
			{
				Name: "Home",
				Projects: []model.Project{
					{
						Name:   "Chores",
						Active: true,
						Tasks: []model.Task{
							{State: model.InProgress, Text: "Mow lawn"},
							{State: model.Todo, Text: "Clean gutters"},
						},
					},
				},
			},
		},
	}
}

func TestAutoPromoteSkipsDoneAndPromotesFirstTodo(t *testing.T) {
	doc := fixtureDoc()
	AutoPromote(doc)

	site := doc.Categories[0].Projects[0]
	if site.Tasks[0].State != model.Done {
		t.Fatalf("done task changed: %v", site.Tasks[0].State)
	}
	if site.Tasks[1].State != model.OnDeck {
		t.Fatalf("first todo = %v, want OnDeck", site.Tasks[1].State)
	}
	if site.Tasks[2].State != model.Todo {
		t.Fatalf("second todo changed: %v", site.Tasks[2].State)
	}
}

func TestAutoPromoteLeavesInactiveAndSatisfiedProjectsAlone(t *testing.T) {
	doc := fixtureDoc()
	AutoPromote(doc)

	if doc.Categories[0].Projects[1].Tasks[0].State != model.Todo {
		t.Fatalf("inactive project was promoted")
	}
	// Chores already has an in-progress task; its todo must stay todo.
	if doc.Categories[1].Projects[0].Tasks[1].State != model.Todo {
		t.Fatalf("satisfied project was promoted")
	}
}

func TestAutoPromoteIsIdempotent(t *testing.T) {
	doc := fixtureDoc()
	AutoPromote(doc)
	before := *doc
	snapshot := make([]model.TaskState, 0)
	for _, c := range before.Categories {
		for _, p := range c.Projects {
			for _, tk := range p.Tasks {
				snapshot = append(snapshot, tk.State)
			}
		}
	}

	AutoPromote(doc)
	i := 0
	for _, c := range doc.Categories {
		for _, p := range c.Projects {
			for _, tk := range p.Tasks {
				if tk.State != snapshot[i] {
					t.Fatalf("second run changed task %q to %v", tk.Text, tk.State)
				}
				i++
			}
		}
	}
}

func TestArchiveDonePrependsInDocumentOrder(t *testing.T) {
	doc := fixtureDoc()
	doc.Categories[1].Projects[0].Tasks[0].State = model.Done
	doc.Archive = []string{"- ✅ ancient"}

	ArchiveDone(doc)

	want := []string{"- ✅ Kickoff", "- ✅ Mow lawn", "- ✅ ancient"}
	if len(doc.Archive) != len(want) {
		t.Fatalf("archive = %#v", doc.Archive)
	}
	for i, l := range want {
		if doc.Archive[i] != l {
			t.Fatalf("archive[%d] = %q, want %q", i, doc.Archive[i], l)
		}
	}
	if len(doc.Categories[0].Projects[0].Tasks) != 2 {
		t.Fatalf("done task not removed from Website")
	}
	if len(doc.Categories[1].Projects[0].Tasks) != 1 {
		t.Fatalf("done task not removed from Chores")
	}
}

func TestBuildAgendaGroupsBySectionKeepingDocumentOrder(t *testing.T) {
	doc := fixtureDoc()
	items := BuildAgenda(doc)

	// Active projects only: Website (3 tasks) + Chores (2 tasks).
	if len(items) != 5 {
		t.Fatalf("items = %d, want 5", len(items))
	}
	wantOrder := []string{"Mow lawn", "Kickoff", "Draft page", "Review", "Clean gutters"}
	for i, w := range wantOrder {
		if items[i].Task.Text != w {
			t.Fatalf("items[%d] = %q, want %q", i, items[i].Task.Text, w)
		}
	}
	for _, it := range items {
		if it.ProjectName == "Someday" {
			t.Fatalf("inactive project leaked into agenda")
		}
	}
}

func TestBuildAgendaCarriesStructuralAddress(t *testing.T) {
	doc := fixtureDoc()
	items := BuildAgenda(doc)
	for _, it := range items {
		got := doc.Categories[it.CategoryIdx].Projects[it.ProjectIdx].Tasks[it.TaskIdx]
		if got.Text != it.Task.Text {
			t.Fatalf("address of %q resolves to %q", it.Task.Text, got.Text)
		}
	}
}

func TestPromoteDemoteTask(t *testing.T) {
	doc := fixtureDoc()
	if !PromoteTask(doc, 0, 0, 1) {
		t.Fatalf("promote failed")
	}
	if doc.Categories[0].Projects[0].Tasks[1].State != model.OnDeck {
		t.Fatalf("state = %v", doc.Categories[0].Projects[0].Tasks[1].State)
	}
	if !DemoteTask(doc, 0, 0, 1) {
		t.Fatalf("demote failed")
	}
	if doc.Categories[0].Projects[0].Tasks[1].State != model.Todo {
		t.Fatalf("state = %v", doc.Categories[0].Projects[0].Tasks[1].State)
	}
	if PromoteTask(doc, 0, 0, 99) {
		t.Fatalf("promote accepted a bad address")
	}
	if DemoteTask(doc, 5, 0, 0) {
		t.Fatalf("demote accepted a bad address")
	}
}

func TestRerankTaskSwapsAndFailsAtBoundaries(t *testing.T) {
	doc := fixtureDoc()
	if _, ok := RerankTask(doc, 0, 0, 0, -1); ok {
		t.Fatalf("rerank above top succeeded")
	}
	if _, ok := RerankTask(doc, 0, 0, 2, 1); ok {
		t.Fatalf("rerank below bottom succeeded")
	}
	idx, ok := RerankTask(doc, 0, 0, 1, 1)
	if !ok || idx != 2 {
		t.Fatalf("rerank = %d, %v", idx, ok)
	}
	tasks := doc.Categories[0].Projects[0].Tasks
	if tasks[1].Text != "Review" || tasks[2].Text != "Draft page" {
		t.Fatalf("tasks not swapped: %#v", tasks)
	}
}

func TestRerankProjectAndCategory(t *testing.T) {
	doc := fixtureDoc()
	if _, ok := RerankProject(doc, 0, 0, -1); ok {
		t.Fatalf("project rerank above top succeeded")
	}
	idx, ok := RerankProject(doc, 0, 0, 1)
	if !ok || idx != 1 {
		t.Fatalf("project rerank = %d, %v", idx, ok)
	}
	if doc.Categories[0].Projects[0].Name != "Someday" {
		t.Fatalf("projects not swapped")
	}

	if _, ok := RerankCategory(doc, 1, 1); ok {
		t.Fatalf("category rerank below bottom succeeded")
	}
	cidx, ok := RerankCategory(doc, 0, 1)
	if !ok || cidx != 1 {
		t.Fatalf("category rerank = %d, %v", cidx, ok)
	}
	if doc.Categories[0].Name != "Home" {
		t.Fatalf("categories not swapped")
	}
}

func TestMoveProjectToCategoryClampsInsert(t *testing.T) {
	doc := fixtureDoc()
	cat, proj, ok := MoveProjectToCategory(doc, 0, 1, 1, 99)
	if !ok || cat != 1 || proj != 1 {
		t.Fatalf("move = %d, %d, %v", cat, proj, ok)
	}
	if len(doc.Categories[0].Projects) != 1 {
		t.Fatalf("source still has project")
	}
	if doc.Categories[1].Projects[1].Name != "Someday" {
		t.Fatalf("destination = %#v", doc.Categories[1].Projects)
	}

	cat, proj, ok = MoveProjectToCategory(doc, 1, 1, 0, 0)
	if !ok || cat != 0 || proj != 0 {
		t.Fatalf("move back = %d, %d, %v", cat, proj, ok)
	}
	if doc.Categories[0].Projects[0].Name != "Someday" {
		t.Fatalf("insert at head failed: %#v", doc.Categories[0].Projects)
	}
}

func TestTaskProjectCategoryCRUD(t *testing.T) {
	doc := fixtureDoc()

	if !AddTask(doc, 0, 0, "New item") {
		t.Fatalf("add task failed")
	}
	site := &doc.Categories[0].Projects[0]
	added := site.Tasks[len(site.Tasks)-1]
	if added.Text != "New item" || added.State != model.Todo {
		t.Fatalf("added = %#v", added)
	}
	if !RenameTask(doc, 0, 0, 0, "Renamed") {
		t.Fatalf("rename task failed")
	}
	if site.Tasks[0].Text != "Renamed" {
		t.Fatalf("rename did not apply")
	}
	if !DeleteTask(doc, 0, 0, 0) {
		t.Fatalf("delete task failed")
	}
	if site.Tasks[0].Text == "Renamed" {
		t.Fatalf("delete did not apply")
	}

	if !AddProject(doc, 1, "Garden", true) {
		t.Fatalf("add project failed")
	}
	if !ToggleProjectActive(doc, 1, 1) {
		t.Fatalf("toggle failed")
	}
	if doc.Categories[1].Projects[1].Active {
		t.Fatalf("toggle did not deactivate")
	}
	if !RenameProject(doc, 1, 1, "Yard") {
		t.Fatalf("rename project failed")
	}
	if !DeleteProject(doc, 1, 1) {
		t.Fatalf("delete project failed")
	}

	AddCategory(doc, "Errands")
	if doc.Categories[len(doc.Categories)-1].Name != "Errands" {
		t.Fatalf("category not added")
	}
	if !RenameCategory(doc, 2, "Out and about") {
		t.Fatalf("rename category failed")
	}
	if !RemoveCategory(doc, 2) {
		t.Fatalf("remove category failed")
	}
	if len(doc.Categories) != 2 {
		t.Fatalf("categories = %d", len(doc.Categories))
	}
}

func TestTaskNotes(t *testing.T) {
	doc := fixtureDoc()
	if !AddTaskNote(doc, 0, 0, 1, "remember the footer") {
		t.Fatalf("add note failed")
	}
	tk := &doc.Categories[0].Projects[0].Tasks[1]
	if len(tk.Notes) != 1 || tk.Notes[0] != "  remember the footer" {
		t.Fatalf("notes = %#v", tk.Notes)
	}
	if !EditTaskNote(doc, 0, 0, 1, 0, "footer and header") {
		t.Fatalf("edit note failed")
	}
	if tk.Notes[0] != "  footer and header" {
		t.Fatalf("notes = %#v", tk.Notes)
	}
	if !DeleteTaskNote(doc, 0, 0, 1, 0) {
		t.Fatalf("delete note failed")
	}
	if len(tk.Notes) != 0 {
		t.Fatalf("notes = %#v", tk.Notes)
	}
	if EditTaskNote(doc, 0, 0, 1, 0, "x") {
		t.Fatalf("edit accepted a bad note index")
	}
}
