package service

import (
	"fmt"
	"strings"

	"github.com/bianlab/landscape/internal/core/model"
)

const combinedTitle = "Combined Landscape View"

// Combine merges multiple diagram documents into a single well-formed
// document: exactly one opening and one closing marker wrap the cleaned
// bodies, in the given order. Documents reduced to nothing after cleaning
// contribute neither a header nor a body.
func Combine(documents []*model.Document) string {
	var b strings.Builder

	b.WriteString("@startuml\n")
	fmt.Fprintf(&b, "title %s\n\n", combinedTitle)

	for _, doc := range documents {
		cleaned := stripStructuralLines(doc.Body())
		if cleaned == "" {
			continue
		}

		fmt.Fprintf(&b, "' === %s ===\n", doc.Label())
		b.WriteString(cleaned)
		b.WriteString("\n\n")
	}

	b.WriteString("@enduml\n")

	return b.String()
}

// stripStructuralLines removes the opening marker, closing marker and
// title line of a diagram document, then trims blank lines from both
// ends. Matching is line-anchored and tolerant of case, surrounding
// whitespace and trailing content after the marker keyword; marker-like
// text in the middle of a line is left alone.
func stripStructuralLines(body string) string {
	lines := strings.Split(body, "\n")

	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if isStructuralLine(line) {
			continue
		}

		kept = append(kept, line)
	}

	kept = trimBlankEdges(kept)

	return strings.Join(kept, "\n")
}

var structuralKeywords = []string{"@startuml", "@enduml", "title"}

func isStructuralLine(line string) bool {
	trimmed := strings.TrimSpace(line)

	for _, keyword := range structuralKeywords {
		if len(trimmed) < len(keyword) {
			continue
		}

		if !strings.EqualFold(trimmed[:len(keyword)], keyword) {
			continue
		}

		rest := trimmed[len(keyword):]
		if rest == "" || rest[0] == ' ' || rest[0] == '\t' {
			return true
		}
	}

	return false
}

func trimBlankEdges(lines []string) []string {
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}

	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}

	return lines[start:end]
}
