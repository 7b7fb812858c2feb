// Package engine holds the pure operations over a document. Every operation
// addresses entities by structural index and treats an out-of-range address
// as a failed no-op; nothing here panics on bad input.
package engine

import (
	"sort"

	"tend-cli/internal/model"
)

func category(doc *model.Document, cat int) *model.Category {
	if cat < 0 || cat >= len(doc.Categories) {
		return nil
	}
	return &doc.Categories[cat]
}

func project(doc *model.Document, cat, proj int) *model.Project {
	c := category(doc, cat)
	if c == nil || proj < 0 || proj >= len(c.Projects) {
		return nil
	}
	return &c.Projects[proj]
}

func task(doc *model.Document, cat, proj, idx int) *model.Task {
	p := project(doc, cat, proj)
	if p == nil || idx < 0 || idx >= len(p.Tasks) {
		return nil
	}
	return &p.Tasks[idx]
}

// AutoPromote gives every active project a current task: scanning top-down,
// done tasks are skipped, an existing on-deck or in-progress task satisfies
// the project, and otherwise the first todo is promoted to on-deck. At most
// one task changes per project, and a second call changes nothing.
func AutoPromote(doc *model.Document) {
	for ci := range doc.Categories {
		for pi := range doc.Categories[ci].Projects {
			proj := &doc.Categories[ci].Projects[pi]
			if !proj.Active {
				continue
			}
			for ti := range proj.Tasks {
				switch proj.Tasks[ti].State {
				case model.Done:
					continue
				case model.OnDeck, model.InProgress:
				case model.Todo:
					proj.Tasks[ti].State = model.OnDeck
				}
				break
			}
		}
	}
}

// ArchiveDone removes every done task from every project and prepends them,
// rendered as `- ✅ <text>` lines in document order, to the archive.
func ArchiveDone(doc *model.Document) {
	var archived []string
	for ci := range doc.Categories {
		for pi := range doc.Categories[ci].Projects {
			proj := &doc.Categories[ci].Projects[pi]
			kept := proj.Tasks[:0]
			for _, t := range proj.Tasks {
				if t.State == model.Done {
					archived = append(archived, "- ✅ "+t.Text)
					continue
				}
				kept = append(kept, t)
			}
			proj.Tasks = kept
		}
	}
	doc.Archive = append(archived, doc.Archive...)
}

// PromoteTask cycles one task's state forward. False only for a bad address.
func PromoteTask(doc *model.Document, cat, proj, idx int) bool {
	t := task(doc, cat, proj, idx)
	if t == nil {
		return false
	}
	next := t.State.Promote()
	if next == t.State {
		return false
	}
	t.State = next
	return true
}

// DemoteTask cycles one task's state backward.
func DemoteTask(doc *model.Document, cat, proj, idx int) bool {
	t := task(doc, cat, proj, idx)
	if t == nil {
		return false
	}
	next := t.State.Demote()
	if next == t.State {
		return false
	}
	t.State = next
	return true
}

// BuildAgenda snapshots every task of every active project and groups them by
// section (in progress, on deck, done, todo). The sort is stable, so ties
// keep document order: category-major, then project, then task position.
func BuildAgenda(doc *model.Document) []model.AgendaItem {
	var items []model.AgendaItem
	for ci, cat := range doc.Categories {
		for pi, proj := range cat.Projects {
			if !proj.Active {
				continue
			}
			for ti, t := range proj.Tasks {
				items = append(items, model.AgendaItem{
					ProjectName: proj.Name,
					Task:        t,
					CategoryIdx: ci,
					ProjectIdx:  pi,
					TaskIdx:     ti,
				})
			}
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Task.State.SectionOrder() < items[j].Task.State.SectionOrder()
	})
	return items
}

// AddTask appends a new todo task to a project.
func AddTask(doc *model.Document, cat, proj int, text string) bool {
	p := project(doc, cat, proj)
	if p == nil {
		return false
	}
	p.Tasks = append(p.Tasks, model.NewTask(model.Todo, text))
	return true
}

func DeleteTask(doc *model.Document, cat, proj, idx int) bool {
	p := project(doc, cat, proj)
	if p == nil || idx < 0 || idx >= len(p.Tasks) {
		return false
	}
	p.Tasks = append(p.Tasks[:idx], p.Tasks[idx+1:]...)
	return true
}

func RenameTask(doc *model.Document, cat, proj, idx int, text string) bool {
	t := task(doc, cat, proj, idx)
	if t == nil {
		return false
	}
	t.Text = text
	return true
}

// RerankTask swaps a task with its neighbor (dir -1 up, +1 down) and returns
// the new index. Fails at sequence boundaries, leaving order unchanged.
func RerankTask(doc *model.Document, cat, proj, idx, dir int) (int, bool) {
	p := project(doc, cat, proj)
	if p == nil || idx < 0 || idx >= len(p.Tasks) {
		return 0, false
	}
	next := idx + dir
	if next < 0 || next >= len(p.Tasks) {
		return 0, false
	}
	p.Tasks[idx], p.Tasks[next] = p.Tasks[next], p.Tasks[idx]
	return next, true
}

// AddProject appends a project to a category.
func AddProject(doc *model.Document, cat int, name string, active bool) bool {
	c := category(doc, cat)
	if c == nil {
		return false
	}
	c.Projects = append(c.Projects, model.NewProject(name, active))
	return true
}

func DeleteProject(doc *model.Document, cat, proj int) bool {
	c := category(doc, cat)
	if c == nil || proj < 0 || proj >= len(c.Projects) {
		return false
	}
	c.Projects = append(c.Projects[:proj], c.Projects[proj+1:]...)
	return true
}

func RenameProject(doc *model.Document, cat, proj int, name string) bool {
	p := project(doc, cat, proj)
	if p == nil {
		return false
	}
	p.Name = name
	return true
}

func ToggleProjectActive(doc *model.Document, cat, proj int) bool {
	p := project(doc, cat, proj)
	if p == nil {
		return false
	}
	p.Active = !p.Active
	return true
}

// RerankProject swaps a project with its neighbor within its category.
func RerankProject(doc *model.Document, cat, proj, dir int) (int, bool) {
	c := category(doc, cat)
	if c == nil || proj < 0 || proj >= len(c.Projects) {
		return 0, false
	}
	next := proj + dir
	if next < 0 || next >= len(c.Projects) {
		return 0, false
	}
	c.Projects[proj], c.Projects[next] = c.Projects[next], c.Projects[proj]
	return next, true
}

// MoveProjectToCategory relocates a project into another category at the
// given position (clamped to the destination's length). Returns the new
// (category, project) address.
func MoveProjectToCategory(doc *model.Document, fromCat, proj, toCat, insertIdx int) (int, int, bool) {
	src := category(doc, fromCat)
	dst := category(doc, toCat)
	if src == nil || dst == nil || proj < 0 || proj >= len(src.Projects) {
		return 0, 0, false
	}
	moved := src.Projects[proj]
	src.Projects = append(src.Projects[:proj], src.Projects[proj+1:]...)
	// src and dst may alias after the removal shifted indices only when
	// fromCat == toCat; the controller never asks for that, but clamp anyway.
	if insertIdx < 0 {
		insertIdx = 0
	}
	if insertIdx > len(dst.Projects) {
		insertIdx = len(dst.Projects)
	}
	dst.Projects = append(dst.Projects[:insertIdx], append([]model.Project{moved}, dst.Projects[insertIdx:]...)...)
	return toCat, insertIdx, true
}

// AddCategory appends a new empty category.
func AddCategory(doc *model.Document, name string) {
	doc.Categories = append(doc.Categories, model.NewCategory(name))
}

func RemoveCategory(doc *model.Document, cat int) bool {
	if cat < 0 || cat >= len(doc.Categories) {
		return false
	}
	doc.Categories = append(doc.Categories[:cat], doc.Categories[cat+1:]...)
	return true
}

func RenameCategory(doc *model.Document, cat int, name string) bool {
	c := category(doc, cat)
	if c == nil {
		return false
	}
	c.Name = name
	return true
}

// RerankCategory swaps a category with its neighbor.
func RerankCategory(doc *model.Document, cat, dir int) (int, bool) {
	if cat < 0 || cat >= len(doc.Categories) {
		return 0, false
	}
	next := cat + dir
	if next < 0 || next >= len(doc.Categories) {
		return 0, false
	}
	doc.Categories[cat], doc.Categories[next] = doc.Categories[next], doc.Categories[cat]
	return next, true
}

// AddTaskNote appends an annotation line to a task, stored with the two-space
// indent it will carry in the file.
func AddTaskNote(doc *model.Document, cat, proj, idx int, note string) bool {
	t := task(doc, cat, proj, idx)
	if t == nil {
		return false
	}
	t.Notes = append(t.Notes, "  "+note)
	return true
}

func EditTaskNote(doc *model.Document, cat, proj, idx, note int, text string) bool {
	t := task(doc, cat, proj, idx)
	if t == nil || note < 0 || note >= len(t.Notes) {
		return false
	}
	t.Notes[note] = "  " + text
	return true
}

func DeleteTaskNote(doc *model.Document, cat, proj, idx, note int) bool {
	t := task(doc, cat, proj, idx)
	if t == nil || note < 0 || note >= len(t.Notes) {
		return false
	}
	t.Notes = append(t.Notes[:note], t.Notes[note+1:]...)
	return true
}
