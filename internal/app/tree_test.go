package app

import (
	"strings"
	"testing"

	"tend-cli/internal/model"
)

func TestRebuildTreeFlattensDepthFirst(t *testing.T) {
	a := newTestApp(t)

	wantKinds := []model.NodeKind{
		model.NodeCategory, // Work
		model.NodeProject,  // Website
		model.NodeTask,     // Kickoff
		model.NodeTask,     // Draft page
		model.NodeNote,     //   layout sketch attached
		model.NodeTask,     // Review
		model.NodeProject,  // Someday
		model.NodeTask,     // Idea
		model.NodeCategory, // Home
		model.NodeProject,  // Chores
		model.NodeTask,     // Mow lawn
		model.NodeTask,     // Clean gutters
	}
	if len(a.TreeNodes) != len(wantKinds) {
		t.Fatalf("tree = %d nodes, want %d", len(a.TreeNodes), len(wantKinds))
	}
	for i, k := range wantKinds {
		if a.TreeNodes[i].Kind != k {
			t.Fatalf("node[%d].Kind = %v, want %v", i, a.TreeNodes[i].Kind, k)
		}
	}

	note := a.TreeNodes[4]
	if note.Display != "layout sketch attached" {
		t.Fatalf("note display not trimmed: %q", note.Display)
	}
	if note.Depth != 3 {
		t.Fatalf("note depth = %d", note.Depth)
	}
}

func TestTreeDisplayCarriesFoldAndActiveMarkers(t *testing.T) {
	a := newTestApp(t)

	if !strings.HasPrefix(a.TreeNodes[0].Display, "▼ ") {
		t.Fatalf("expanded category display = %q", a.TreeNodes[0].Display)
	}
	if !strings.Contains(a.TreeNodes[1].Display, "🔶 Website") {
		t.Fatalf("active project display = %q", a.TreeNodes[1].Display)
	}
	if strings.Contains(a.TreeNodes[6].Display, "🔶") {
		t.Fatalf("inactive project display = %q", a.TreeNodes[6].Display)
	}
}

func TestToggleCollapseHidesChildrenAndKeepsCursor(t *testing.T) {
	a := newTestApp(t)
	a.View = ViewBacklog
	a.BacklogCursor = 1 // Website project

	a.ToggleCollapse()
	if len(a.TreeNodes) != 12-4 {
		t.Fatalf("collapsed tree = %d nodes", len(a.TreeNodes))
	}
	node, ok := a.CurrentTreeNode()
	if !ok || node.Kind != model.NodeProject || node.ProjectIdx != 0 {
		t.Fatalf("cursor drifted to %#v", node)
	}
	if !strings.HasPrefix(node.Display, "► ") {
		t.Fatalf("collapsed display = %q", node.Display)
	}

	a.ToggleCollapse()
	if len(a.TreeNodes) != 12 {
		t.Fatalf("expanded tree = %d nodes", len(a.TreeNodes))
	}
}

func TestToggleCollapseOnNoteIsNoop(t *testing.T) {
	a := newTestApp(t)
	a.View = ViewBacklog
	a.BacklogCursor = 4 // the note
	a.ToggleCollapse()
	if len(a.TreeNodes) != 12 {
		t.Fatalf("note toggle changed the tree")
	}
}

func TestCollapsedTaskHidesItsNotes(t *testing.T) {
	a := newTestApp(t)
	a.View = ViewBacklog
	a.BacklogCursor = 3 // Draft page
	a.ToggleCollapse()
	for _, n := range a.TreeNodes {
		if n.Kind == model.NodeNote {
			t.Fatalf("note visible under collapsed task")
		}
	}
}

func TestJumpToBacklogTaskExpandsAncestors(t *testing.T) {
	a := newTestApp(t)

	// Collapse everything the target lives under.
	a.Collapse.ToggleCategory(1)
	a.Collapse.ToggleProject(1, 0)
	a.RebuildTree()

	// Focus the agenda row for Clean gutters.
	for i, item := range a.AgendaItems {
		if item.Task.Text == "Clean gutters" {
			a.AgendaCursor = i
		}
	}
	a.JumpToBacklogTask()

	if a.View != ViewBacklog {
		t.Fatalf("view = %v", a.View)
	}
	node, ok := a.CurrentTreeNode()
	if !ok || node.Kind != model.NodeTask {
		t.Fatalf("cursor on %#v", node)
	}
	if a.Doc.Categories[node.CategoryIdx].Projects[node.ProjectIdx].Tasks[node.TaskIdx].Text != "Clean gutters" {
		t.Fatalf("cursor not on the jumped-to task")
	}
}

func TestRestoreCursorClampsWhenNodeGone(t *testing.T) {
	a := newTestApp(t)
	a.View = ViewBacklog
	a.MoveBottom()
	// Delete the focused task; the old node address no longer exists.
	a.DeleteFocused()
	if a.BacklogCursor >= len(a.TreeNodes) {
		t.Fatalf("cursor out of range: %d of %d", a.BacklogCursor, len(a.TreeNodes))
	}
}
