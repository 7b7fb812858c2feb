package taskfile

import (
	"strings"

	"tend-cli/internal/model"
)

// Serialize renders a document back to task file text. For any document
// produced by Parse, Parse(Serialize(doc)) yields an equal document, and a
// file already in canonical form is reproduced byte for byte.
func Serialize(doc *model.Document) string {
	var lines []string

	lines = append(lines, doc.Preamble...)

	for _, cat := range doc.Categories {
		// One blank separator before the heading, unless the previous line
		// already is one.
		if len(lines) > 0 && lines[len(lines)-1] != "" {
			lines = append(lines, "")
		}
		lines = append(lines, "## "+cat.Name)

		for _, proj := range cat.Projects {
			lines = append(lines, "")
			if proj.Active {
				lines = append(lines, "### 🔶 "+proj.Name)
			} else {
				lines = append(lines, "### "+proj.Name)
			}
			lines = append(lines, proj.Notes...)
			for _, task := range proj.Tasks {
				lines = append(lines, "- "+task.State.Symbol()+" "+task.Text)
				lines = append(lines, task.Notes...)
			}
		}
	}

	if len(doc.Archive) > 0 {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, "## Done")
		lines = append(lines, doc.Archive...)
	}

	lines = append(lines, doc.Trailing...)

	// Parsing strips exactly one final newline, so emitting exactly one here
	// keeps trailing blank lines byte-stable across a round trip.
	return strings.Join(lines, "\n") + "\n"
}
