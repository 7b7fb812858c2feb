package model

// TaskState is the lifecycle state of a task. The zero value is Todo.
type TaskState int

const (
	Todo TaskState = iota
	OnDeck
	InProgress
	Done
)

// Symbol is the one-glyph serialization of a state in the task file.
func (s TaskState) Symbol() string {
	switch s {
	case OnDeck:
		return "🔵"
	case InProgress:
		return "🔶"
	case Done:
		return "✅"
	default:
		return "🔴"
	}
}

func (s TaskState) Label() string {
	switch s {
	case OnDeck:
		return "On Deck"
	case InProgress:
		return "In Progress"
	case Done:
		return "Done"
	default:
		return "Todo"
	}
}

// Promote advances the lifecycle one step. Cyclic: Done wraps back to Todo.
func (s TaskState) Promote() TaskState {
	switch s {
	case Todo:
		return OnDeck
	case OnDeck:
		return InProgress
	case InProgress:
		return Done
	default:
		return Todo
	}
}

// Demote is the exact inverse of Promote.
func (s TaskState) Demote() TaskState {
	switch s {
	case Todo:
		return Done
	case OnDeck:
		return Todo
	case InProgress:
		return OnDeck
	default:
		return InProgress
	}
}

// SectionOrder is the agenda grouping order: InProgress, OnDeck, Done, Todo.
func (s TaskState) SectionOrder() int {
	switch s {
	case InProgress:
		return 0
	case OnDeck:
		return 1
	case Done:
		return 2
	default:
		return 3
	}
}

func (s TaskState) String() string {
	return s.Symbol() + " " + s.Label()
}

// StateFromSymbol maps a task glyph back to its state.
func StateFromSymbol(sym string) (TaskState, bool) {
	switch sym {
	case "🔴":
		return Todo, true
	case "🔵":
		return OnDeck, true
	case "🔶":
		return InProgress, true
	case "✅":
		return Done, true
	}
	return Todo, false
}

// TaskSymbols lists every task glyph, in state order.
var TaskSymbols = []string{"🔴", "🔵", "🔶", "✅"}

// Task is a single actionable item. Notes are stored as raw file lines
// (indentation included) so they round-trip byte-for-byte; display code
// trims them.
type Task struct {
	State TaskState
	Text  string
	Notes []string
}

func NewTask(state TaskState, text string) Task {
	return Task{State: state, Text: text}
}

// Project is a named unit of work. Notes hold free text that appeared before
// the first task. Active projects contribute their tasks to the agenda.
type Project struct {
	Name   string
	Active bool
	Notes  []string
	Tasks  []Task
}

func NewProject(name string, active bool) Project {
	return Project{Name: name, Active: active}
}

// Category is the top-level grouping of projects.
type Category struct {
	Name     string
	Projects []Project
}

func NewCategory(name string) Category {
	return Category{Name: name}
}

// Document is the parsed task file. Archive lines are opaque: the done log is
// less strict than the active sections, so it is never parsed into tasks.
type Document struct {
	Preamble   []string
	Categories []Category
	Archive    []string
	Trailing   []string
}

func NewDocument() *Document {
	return &Document{}
}

// Template is the starter document written on first run.
func Template() *Document {
	return &Document{
		Categories: []Category{{
			Name: "Inbox",
			Projects: []Project{{
				Name:   "Tasks",
				Active: true,
				Tasks:  []Task{NewTask(Todo, "Your first task")},
			}},
		}},
	}
}

// AgendaItem is a snapshot of one task from an active project, carrying the
// structural address it was taken from. Mutating the document does not update
// a materialized item; callers rebuild the agenda instead.
type AgendaItem struct {
	ProjectName string
	Task        Task
	CategoryIdx int
	ProjectIdx  int
	TaskIdx     int
}

// NodeKind discriminates tree node variants.
type NodeKind int

const (
	NodeCategory NodeKind = iota
	NodeProject
	NodeTask
	NodeNote
)

// TreeNode is one row of the flattened backlog tree. Identity for cursor
// restoration is Kind plus the index tuple, never the display text.
type TreeNode struct {
	Kind        NodeKind
	CategoryIdx int
	ProjectIdx  int
	TaskIdx     int
	NoteIdx     int
	Depth       int
	Display     string
}

// SameNode reports whether two nodes address the same entity.
func (n TreeNode) SameNode(o TreeNode) bool {
	if n.Kind != o.Kind {
		return false
	}
	switch n.Kind {
	case NodeCategory:
		return n.CategoryIdx == o.CategoryIdx
	case NodeProject:
		return n.CategoryIdx == o.CategoryIdx && n.ProjectIdx == o.ProjectIdx
	case NodeTask:
		return n.CategoryIdx == o.CategoryIdx && n.ProjectIdx == o.ProjectIdx && n.TaskIdx == o.TaskIdx
	default:
		return n.CategoryIdx == o.CategoryIdx && n.ProjectIdx == o.ProjectIdx &&
			n.TaskIdx == o.TaskIdx && n.NoteIdx == o.NoteIdx
	}
}
