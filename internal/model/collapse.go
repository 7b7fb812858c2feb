package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ProjectKey addresses a project; TaskKey addresses a task.
type ProjectKey struct {
	Cat  int
	Proj int
}

type TaskKey struct {
	Cat  int
	Proj int
	Task int
}

// CollapseState records which subtrees of the backlog tree are hidden, plus
// the persisted theme name. It lives in a sidecar file next to the task file:
// line-oriented key-value records, order-independent, unknown lines ignored.
type CollapseState struct {
	Categories map[int]bool
	Projects   map[ProjectKey]bool
	Tasks      map[TaskKey]bool
	ThemeName  string
}

func NewCollapseState() *CollapseState {
	return &CollapseState{
		Categories: make(map[int]bool),
		Projects:   make(map[ProjectKey]bool),
		Tasks:      make(map[TaskKey]bool),
	}
}

// ToggleCategory flips the collapsed flag and reports the new value.
func (c *CollapseState) ToggleCategory(cat int) bool {
	if c.Categories[cat] {
		delete(c.Categories, cat)
		return false
	}
	c.Categories[cat] = true
	return true
}

func (c *CollapseState) ToggleProject(cat, proj int) bool {
	k := ProjectKey{cat, proj}
	if c.Projects[k] {
		delete(c.Projects, k)
		return false
	}
	c.Projects[k] = true
	return true
}

func (c *CollapseState) ToggleTask(cat, proj, task int) bool {
	k := TaskKey{cat, proj, task}
	if c.Tasks[k] {
		delete(c.Tasks, k)
		return false
	}
	c.Tasks[k] = true
	return true
}

// Encode renders the sidecar file content. Records are emitted in sorted
// order so the file is stable across runs.
func (c *CollapseState) Encode() string {
	var lines []string
	if c.ThemeName != "" {
		lines = append(lines, "theme:"+c.ThemeName)
	}

	cats := make([]int, 0, len(c.Categories))
	for ci := range c.Categories {
		cats = append(cats, ci)
	}
	sort.Ints(cats)
	for _, ci := range cats {
		lines = append(lines, fmt.Sprintf("cat:%d", ci))
	}

	projs := make([]ProjectKey, 0, len(c.Projects))
	for k := range c.Projects {
		projs = append(projs, k)
	}
	sort.Slice(projs, func(i, j int) bool {
		if projs[i].Cat != projs[j].Cat {
			return projs[i].Cat < projs[j].Cat
		}
		return projs[i].Proj < projs[j].Proj
	})
	for _, k := range projs {
		lines = append(lines, fmt.Sprintf("proj:%d,%d", k.Cat, k.Proj))
	}

	tasks := make([]TaskKey, 0, len(c.Tasks))
	for k := range c.Tasks {
		tasks = append(tasks, k)
	}
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].Cat != tasks[j].Cat {
			return tasks[i].Cat < tasks[j].Cat
		}
		if tasks[i].Proj != tasks[j].Proj {
			return tasks[i].Proj < tasks[j].Proj
		}
		return tasks[i].Task < tasks[j].Task
	})
	for _, k := range tasks {
		lines = append(lines, fmt.Sprintf("task:%d,%d,%d", k.Cat, k.Proj, k.Task))
	}

	return strings.Join(lines, "\n")
}

// DecodeCollapseState parses sidecar content. Malformed records are skipped;
// the result is always usable.
func DecodeCollapseState(content string) *CollapseState {
	c := NewCollapseState()
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "theme:"):
			c.ThemeName = strings.TrimPrefix(line, "theme:")
		case strings.HasPrefix(line, "cat:"):
			if ci, err := strconv.Atoi(strings.TrimPrefix(line, "cat:")); err == nil {
				c.Categories[ci] = true
			}
		case strings.HasPrefix(line, "proj:"):
			if nums, ok := parseInts(strings.TrimPrefix(line, "proj:"), 2); ok {
				c.Projects[ProjectKey{nums[0], nums[1]}] = true
			}
		case strings.HasPrefix(line, "task:"):
			if nums, ok := parseInts(strings.TrimPrefix(line, "task:"), 3); ok {
				c.Tasks[TaskKey{nums[0], nums[1], nums[2]}] = true
			}
		}
	}
	return c
}

func parseInts(s string, n int) ([]int, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, false
	}
	out := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}
