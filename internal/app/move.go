package app

import "tend-cli/internal/model"

// Move mode is a two-state machine: idle, or moving with a captured origin.
// Each step mutates the document immediately (agenda moves excepted, which
// only reorder the transient projection), so cancel must relocate the entity
// back to its origin address rather than discard a buffer.

type moveKind int

const (
	moveTask moveKind = iota
	moveProject
	moveCategory
	moveAgendaItem
)

type moveOrigin struct {
	kind moveKind

	// moveTask: catIdx/projIdx locate the project, origIdx the task slot.
	// moveProject: catIdx is the original category, origIdx the project slot.
	// moveCategory / moveAgendaItem: origIdx only.
	catIdx  int
	projIdx int
	origIdx int
}

const movingStatus = "Moving... j/k to reorder, Enter to accept, Esc to cancel"

// IsMoving reports whether a move is in flight.
func (a *App) IsMoving() bool {
	return a.moving != nil
}

// StartMove captures the focused entity's address and enters move mode. The
// focused kind depends on the view: agenda rows, backlog tasks/projects, or
// settings categories.
func (a *App) StartMove() {
	switch a.View {
	case ViewBacklog:
		node, ok := a.CurrentTreeNode()
		if !ok {
			return
		}
		switch node.Kind {
		case model.NodeTask:
			a.moving = &moveOrigin{kind: moveTask, catIdx: node.CategoryIdx, projIdx: node.ProjectIdx, origIdx: node.TaskIdx}
		case model.NodeProject:
			a.moving = &moveOrigin{kind: moveProject, catIdx: node.CategoryIdx, origIdx: node.ProjectIdx}
		default:
			return
		}
	case ViewSettings:
		ci, ok := a.SettingsCategoryIdx()
		if !ok || ci >= len(a.Doc.Categories) {
			return
		}
		a.moving = &moveOrigin{kind: moveCategory, origIdx: ci}
	case ViewAgenda:
		if len(a.AgendaItems) == 0 {
			return
		}
		a.moving = &moveOrigin{kind: moveAgendaItem, origIdx: a.AgendaCursor}
	}
	a.Status = movingStatus
}

// MoveStep applies one reorder step in the current view. Steps reuse the
// same rerank operations as normal editing and take effect immediately.
func (a *App) MoveStep(dir int) {
	switch a.View {
	case ViewAgenda:
		a.rerankAgenda(dir)
	case ViewBacklog:
		a.RerankFocused(dir)
	case ViewSettings:
		a.RerankSelectedCategory(dir)
	}
}

// rerankAgenda swaps two agenda rows. This reorders only the projection; the
// next agenda rebuild from the document discards it.
func (a *App) rerankAgenda(dir int) {
	cur := a.AgendaCursor
	next := cur + dir
	if cur < 0 || cur >= len(a.AgendaItems) || next < 0 || next >= len(a.AgendaItems) {
		return
	}
	a.AgendaItems[cur], a.AgendaItems[next] = a.AgendaItems[next], a.AgendaItems[cur]
	a.AgendaCursor = next
}

// AcceptMove leaves move mode. The document already reflects every step.
func (a *App) AcceptMove() {
	if a.moving == nil {
		return
	}
	isAgenda := a.moving.kind == moveAgendaItem
	a.moving = nil
	a.Dirty = true
	a.Status = "Moved"
	if !isAgenda {
		a.RefreshAgenda()
	}
}

// CancelMove leaves move mode and relocates the moved entity back to its
// captured origin address.
func (a *App) CancelMove() {
	m := a.moving
	if m == nil {
		return
	}
	a.moving = nil

	switch m.kind {
	case moveTask:
		if node, ok := a.CurrentTreeNode(); ok && node.Kind == model.NodeTask {
			cur := node.TaskIdx
			if cur != m.origIdx {
				if p := projectAt(a.Doc, m.catIdx, m.projIdx); p != nil && cur < len(p.Tasks) {
					t := p.Tasks[cur]
					p.Tasks = append(p.Tasks[:cur], p.Tasks[cur+1:]...)
					idx := m.origIdx
					if idx > len(p.Tasks) {
						idx = len(p.Tasks)
					}
					p.Tasks = append(p.Tasks[:idx], append([]model.Task{t}, p.Tasks[idx:]...)...)
				}
			}
		}
	case moveProject:
		if node, ok := a.CurrentTreeNode(); ok && node.Kind == model.NodeProject {
			curCat, curProj := node.CategoryIdx, node.ProjectIdx
			if curCat != m.catIdx || curProj != m.origIdx {
				if src := projectAt(a.Doc, curCat, curProj); src != nil {
					moved := *src
					cat := &a.Doc.Categories[curCat]
					cat.Projects = append(cat.Projects[:curProj], cat.Projects[curProj+1:]...)
					if m.catIdx < len(a.Doc.Categories) {
						dest := &a.Doc.Categories[m.catIdx]
						idx := m.origIdx
						if idx > len(dest.Projects) {
							idx = len(dest.Projects)
						}
						dest.Projects = append(dest.Projects[:idx], append([]model.Project{moved}, dest.Projects[idx:]...)...)
					}
				}
			}
		}
	case moveCategory:
		if cur, ok := a.SettingsCategoryIdx(); ok && cur < len(a.Doc.Categories) {
			if cur != m.origIdx {
				cat := a.Doc.Categories[cur]
				a.Doc.Categories = append(a.Doc.Categories[:cur], a.Doc.Categories[cur+1:]...)
				idx := m.origIdx
				if idx > len(a.Doc.Categories) {
					idx = len(a.Doc.Categories)
				}
				a.Doc.Categories = append(a.Doc.Categories[:idx], append([]model.Category{cat}, a.Doc.Categories[idx:]...)...)
			}
		}
		a.SettingsCursor = m.origIdx + 1 // theme row offset
	case moveAgendaItem:
		// RefreshAgenda below rebuilds from the document, discarding the
		// transient reordering.
		a.AgendaCursor = m.origIdx
	}

	a.Status = "Move cancelled"
	a.RefreshAgenda()
	a.RebuildTree()
}
