package app

import (
	"strings"

	"tend-cli/internal/model"
)

const (
	glyphExpanded     = "▼"
	glyphCollapsed    = "►"
	glyphActiveMarker = "🔶 "
)

// RebuildTree recomputes the backlog projection: a depth-first walk of
// categories, projects, tasks and notes that skips collapsed subtrees. Each
// node carries its display label so renderers never reach back into the
// document for text.
func (a *App) RebuildTree() {
	var nodes []model.TreeNode

	for ci, cat := range a.Doc.Categories {
		catCollapsed := a.Collapse.Categories[ci]
		indicator := glyphExpanded
		if catCollapsed {
			indicator = glyphCollapsed
		}
		nodes = append(nodes, model.TreeNode{
			Kind:        model.NodeCategory,
			CategoryIdx: ci,
			Depth:       0,
			Display:     indicator + " " + cat.Name,
		})
		if catCollapsed {
			continue
		}

		for pi, proj := range cat.Projects {
			projCollapsed := a.Collapse.Projects[model.ProjectKey{Cat: ci, Proj: pi}]
			indicator := glyphExpanded
			if projCollapsed {
				indicator = glyphCollapsed
			}
			marker := ""
			if proj.Active {
				marker = glyphActiveMarker
			}
			nodes = append(nodes, model.TreeNode{
				Kind:        model.NodeProject,
				CategoryIdx: ci,
				ProjectIdx:  pi,
				Depth:       1,
				Display:     indicator + " " + marker + proj.Name,
			})
			if projCollapsed {
				continue
			}

			for ti, task := range proj.Tasks {
				nodes = append(nodes, model.TreeNode{
					Kind:        model.NodeTask,
					CategoryIdx: ci,
					ProjectIdx:  pi,
					TaskIdx:     ti,
					Depth:       2,
					Display:     task.Text,
				})
				if a.Collapse.Tasks[model.TaskKey{Cat: ci, Proj: pi, Task: ti}] {
					continue
				}
				for ni, note := range task.Notes {
					nodes = append(nodes, model.TreeNode{
						Kind:        model.NodeNote,
						CategoryIdx: ci,
						ProjectIdx:  pi,
						TaskIdx:     ti,
						NoteIdx:     ni,
						Depth:       3,
						Display:     strings.TrimSpace(note),
					})
				}
			}
		}
	}

	a.TreeNodes = nodes

	if len(a.TreeNodes) == 0 {
		a.BacklogCursor = 0
	} else if a.BacklogCursor >= len(a.TreeNodes) {
		a.BacklogCursor = len(a.TreeNodes) - 1
	}
}

// CurrentTreeNode returns the focused backlog node, if any.
func (a *App) CurrentTreeNode() (model.TreeNode, bool) {
	if a.BacklogCursor < 0 || a.BacklogCursor >= len(a.TreeNodes) {
		return model.TreeNode{}, false
	}
	return a.TreeNodes[a.BacklogCursor], true
}

// restoreCursor re-finds a node by structural identity after a rebuild,
// falling back to clamping when the node no longer exists.
func (a *App) restoreCursor(target model.TreeNode) {
	for i, node := range a.TreeNodes {
		if node.SameNode(target) {
			a.BacklogCursor = i
			return
		}
	}
	if len(a.TreeNodes) > 0 && a.BacklogCursor >= len(a.TreeNodes) {
		a.BacklogCursor = len(a.TreeNodes) - 1
	}
}

// ToggleCollapse folds or unfolds the focused subtree. Notes have no
// children and are ignored.
func (a *App) ToggleCollapse() {
	node, ok := a.CurrentTreeNode()
	if !ok {
		return
	}
	switch node.Kind {
	case model.NodeCategory:
		a.Collapse.ToggleCategory(node.CategoryIdx)
	case model.NodeProject:
		a.Collapse.ToggleProject(node.CategoryIdx, node.ProjectIdx)
	case model.NodeTask:
		a.Collapse.ToggleTask(node.CategoryIdx, node.ProjectIdx, node.TaskIdx)
	default:
		return
	}
	a.RebuildTree()
	a.restoreCursor(node)
}

// JumpToBacklogTask switches from the agenda to the backlog view focused on
// the selected task, expanding its ancestors so it is visible.
func (a *App) JumpToBacklogTask() {
	if a.AgendaCursor < 0 || a.AgendaCursor >= len(a.AgendaItems) {
		return
	}
	item := a.AgendaItems[a.AgendaCursor]

	delete(a.Collapse.Categories, item.CategoryIdx)
	delete(a.Collapse.Projects, model.ProjectKey{Cat: item.CategoryIdx, Proj: item.ProjectIdx})
	a.RebuildTree()

	target := model.TreeNode{
		Kind:        model.NodeTask,
		CategoryIdx: item.CategoryIdx,
		ProjectIdx:  item.ProjectIdx,
		TaskIdx:     item.TaskIdx,
	}
	for i, node := range a.TreeNodes {
		if node.SameNode(target) {
			a.BacklogCursor = i
			break
		}
	}

	a.View = ViewBacklog
	a.UpdateScroll(a.VisibleHeight)
}
