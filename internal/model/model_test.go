package model

import "testing"

func TestStatePromoteCycle(t *testing.T) {
	cases := []struct {
		from, to TaskState
	}{
		{Todo, OnDeck},
		{OnDeck, InProgress},
		{InProgress, Done},
		{Done, Todo},
	}
	for _, c := range cases {
		if got := c.from.Promote(); got != c.to {
			t.Fatalf("Promote(%v) = %v, want %v", c.from, got, c.to)
		}
		if got := c.to.Demote(); got != c.from {
			t.Fatalf("Demote(%v) = %v, want %v", c.to, got, c.from)
		}
	}
}

func TestPromoteDemoteAreInverse(t *testing.T) {
	for s := Todo; s <= Done; s++ {
		if got := s.Promote().Demote(); got != s {
			t.Fatalf("Demote(Promote(%v)) = %v", s, got)
		}
		if got := s.Demote().Promote(); got != s {
			t.Fatalf("Promote(Demote(%v)) = %v", s, got)
		}
	}
}

func TestStateSymbolRoundTrip(t *testing.T) {
	for s := Todo; s <= Done; s++ {
		got, ok := StateFromSymbol(s.Symbol())
		if !ok || got != s {
			t.Fatalf("StateFromSymbol(%q) = %v, %v", s.Symbol(), got, ok)
		}
	}
	if _, ok := StateFromSymbol("x"); ok {
		t.Fatalf("StateFromSymbol accepted an unknown symbol")
	}
}

func TestSectionOrderRanksInProgressFirst(t *testing.T) {
	want := map[TaskState]int{
		InProgress: 0,
		OnDeck:     1,
		Done:       2,
		Todo:       3,
	}
	for s, ord := range want {
		if got := s.SectionOrder(); got != ord {
			t.Fatalf("SectionOrder(%v) = %d, want %d", s, got, ord)
		}
	}
}

func TestTemplateHasActiveStarterProject(t *testing.T) {
	doc := Template()
	if len(doc.Categories) == 0 {
		t.Fatalf("template has no categories")
	}
	found := false
	for _, c := range doc.Categories {
		for _, p := range c.Projects {
			if p.Active && len(p.Tasks) > 0 {
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("template has no active project with a task")
	}
}

func TestSameNodeComparesStructuralIdentity(t *testing.T) {
	a := TreeNode{Kind: NodeTask, CategoryIdx: 0, ProjectIdx: 1, TaskIdx: 2, Depth: 2, Display: "x"}
	b := TreeNode{Kind: NodeTask, CategoryIdx: 0, ProjectIdx: 1, TaskIdx: 2, Depth: 9, Display: "y"}
	if !a.SameNode(b) {
		t.Fatalf("nodes with equal kind and indices should match")
	}
	b.TaskIdx = 3
	if a.SameNode(b) {
		t.Fatalf("nodes with different task index should not match")
	}
	c := TreeNode{Kind: NodeProject, CategoryIdx: 0, ProjectIdx: 1}
	if a.SameNode(c) {
		t.Fatalf("nodes of different kind should not match")
	}
}
