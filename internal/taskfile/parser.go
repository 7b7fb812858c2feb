// Package taskfile reads and writes the plain-text task file format.
//
// The format is line-oriented markdown-flavored text: `## Name` category
// headings, `### 🔶 Name` project headings (the in-progress glyph marks the
// project active), `- <glyph> <text>` task lines with indented note lines,
// and a terminal `## Done` section whose lines are kept verbatim. Parsing is
// total: unrecognized input degrades into preamble or notes, never an error,
// so a hand-edited file always loads.
package taskfile

import (
	"strings"

	"tend-cli/internal/model"
)

// ParseTaskLine parses `- <glyph> <text>` into a task. Leading whitespace is
// tolerated so task lines survive accidental indentation.
func ParseTaskLine(line string) (model.Task, bool) {
	content, ok := strings.CutPrefix(strings.TrimSpace(line), "- ")
	if !ok {
		return model.Task{}, false
	}
	for _, sym := range model.TaskSymbols {
		if rest, ok := strings.CutPrefix(content, sym); ok {
			state, _ := model.StateFromSymbol(sym)
			return model.NewTask(state, strings.TrimLeft(rest, " \t")), true
		}
	}
	return model.Task{}, false
}

// ParseCategoryHeading parses `## Name`. The archive heading `## Done` is not
// a category; the match is exact, not case-insensitive.
func ParseCategoryHeading(line string) (string, bool) {
	content, ok := strings.CutPrefix(strings.TrimSpace(line), "## ")
	if !ok {
		return "", false
	}
	name := strings.TrimSpace(content)
	if strings.EqualFold(name, "Done") {
		return "", false
	}
	return name, true
}

// ParseProjectHeading parses `### [glyph ]Name`. Only the in-progress glyph
// marks the project active. Legacy files prefixed project names with any task
// glyph; those are stripped and every glyph except 🔶 reads as inactive.
func ParseProjectHeading(line string) (name string, active bool, ok bool) {
	content, found := strings.CutPrefix(strings.TrimSpace(line), "### ")
	if !found {
		return "", false, false
	}
	for _, sym := range model.TaskSymbols {
		if rest, found := strings.CutPrefix(content, sym); found {
			return strings.TrimLeft(rest, " \t"), sym == "🔶", true
		}
	}
	return strings.TrimSpace(content), false, true
}

func isDoneHeading(line string) bool {
	return strings.TrimSpace(line) == "## Done"
}

// isNoteLine reports whether a line is indented annotation text: two or more
// leading spaces (or a tab) and not itself a task line.
func isNoteLine(line string) bool {
	if line == "" {
		return false
	}
	if !strings.HasPrefix(line, "  ") && !strings.HasPrefix(line, "\t") {
		return false
	}
	_, isTask := ParseTaskLine(line)
	return !isTask
}

// Parse reads the task file text into a document. It never fails.
func Parse(input string) *model.Document {
	doc := model.NewDocument()

	var curCat *model.Category
	var curProj *model.Project
	inArchive := false

	flushProject := func() {
		if curProj != nil && curCat != nil {
			curCat.Projects = append(curCat.Projects, *curProj)
		}
		curProj = nil
	}
	flushCategory := func() {
		flushProject()
		if curCat != nil {
			doc.Categories = append(doc.Categories, *curCat)
		}
		curCat = nil
	}

	for _, line := range splitLines(input) {
		if inArchive {
			doc.Archive = append(doc.Archive, line)
			continue
		}

		if isDoneHeading(line) {
			flushCategory()
			inArchive = true
			continue
		}

		if name, ok := ParseCategoryHeading(line); ok {
			flushCategory()
			cat := model.NewCategory(name)
			curCat = &cat
			continue
		}

		if name, active, ok := ParseProjectHeading(line); ok {
			flushProject()
			if curCat == nil {
				// Headerless legacy files: open a synthetic category that
				// collects projects until a real heading appears.
				cat := model.NewCategory("Uncategorized")
				curCat = &cat
			}
			proj := model.NewProject(name, active)
			curProj = &proj
			continue
		}

		if curProj != nil {
			blank := strings.TrimSpace(line) == ""
			if task, ok := ParseTaskLine(line); ok {
				curProj.Tasks = append(curProj.Tasks, task)
			} else if len(curProj.Tasks) > 0 && !blank {
				// Indented lines annotate the last task. Non-indented text
				// after tasks is malformed input; attach it there too rather
				// than dropping it.
				last := &curProj.Tasks[len(curProj.Tasks)-1]
				last.Notes = append(last.Notes, line)
			} else if len(curProj.Tasks) == 0 && !blank {
				curProj.Notes = append(curProj.Notes, line)
			}
			// Blank lines inside a project are separators.
			continue
		}

		if curCat != nil {
			// Stray text between a category heading and its first project is
			// dropped; only blank separators are expected here.
			continue
		}

		doc.Preamble = append(doc.Preamble, line)
	}

	flushCategory()

	// Blank lines at the end of the archive become the trailing block so the
	// serializer reproduces end-of-file spacing exactly.
	for len(doc.Archive) > 0 && strings.TrimSpace(doc.Archive[len(doc.Archive)-1]) == "" {
		last := doc.Archive[len(doc.Archive)-1]
		doc.Archive = doc.Archive[:len(doc.Archive)-1]
		doc.Trailing = append([]string{last}, doc.Trailing...)
	}

	return doc
}

// splitLines splits on newlines without manufacturing a final empty line for
// newline-terminated input.
func splitLines(input string) []string {
	if input == "" {
		return nil
	}
	input = strings.TrimSuffix(input, "\n")
	return strings.Split(input, "\n")
}
