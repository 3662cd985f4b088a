package service

import (
	"strings"
	"testing"

	"github.com/bianlab/landscape/internal/core/model"
)

func TestCombineSingleMarkerPair(t *testing.T) {
	documents := []*model.Document{
		model.NewDocument("a", "Domain A", model.CollectionDiagram, "@startuml\ntitle A\nFoo\n@enduml"),
		model.NewDocument("b", "Domain B", model.CollectionDiagram, "@STARTUML extra\n  title B\nBar\n  @enduml  "),
		model.NewDocument("c", "Domain C", model.CollectionDiagram, "@startuml\n@startuml\nBaz\n@enduml\n@enduml"),
	}

	combined := Combine(documents)

	if e, g := 1, strings.Count(strings.ToLower(combined), "@startuml"); e != g {
		t.Errorf("opening markers: expected %d, got %d\n%s", e, g, combined)
	}

	if e, g := 1, strings.Count(strings.ToLower(combined), "@enduml"); e != g {
		t.Errorf("closing markers: expected %d, got %d\n%s", e, g, combined)
	}

	if !strings.HasPrefix(combined, "@startuml\n") {
		t.Errorf("combined document does not start with opening marker:\n%s", combined)
	}

	if !strings.HasSuffix(combined, "@enduml\n") {
		t.Errorf("combined document does not end with closing marker:\n%s", combined)
	}
}

func TestCombinePreservesSelectionOrder(t *testing.T) {
	documents := []*model.Document{
		model.NewDocument("a", "Domain A", model.CollectionDiagram, "@startuml\ntitle A\nFoo\n@enduml"),
		model.NewDocument("b", "Domain B", model.CollectionDiagram, "@startuml\ntitle B\nBar\n@enduml"),
	}

	combined := Combine(documents)

	headerA := strings.Index(combined, "' === Domain A ===")
	headerB := strings.Index(combined, "' === Domain B ===")
	bodyA := strings.Index(combined, "Foo")
	bodyB := strings.Index(combined, "Bar")

	for name, idx := range map[string]int{"header A": headerA, "header B": headerB, "body A": bodyA, "body B": bodyB} {
		if idx == -1 {
			t.Fatalf("missing %s in combined output:\n%s", name, combined)
		}
	}

	if !(headerA < bodyA && bodyA < headerB && headerB < bodyB) {
		t.Errorf("combined output not in selection order:\n%s", combined)
	}
}

func TestCombineSkipsEmptyDocuments(t *testing.T) {
	documents := []*model.Document{
		model.NewDocument("a", "Domain A", model.CollectionDiagram, "@startuml\ntitle A\nFoo\n@enduml"),
		model.NewDocument("empty", "Empty Domain", model.CollectionDiagram, "@startuml\ntitle Empty\n\n\n@enduml"),
		model.NewDocument("b", "Domain B", model.CollectionDiagram, "@startuml\nBar\n@enduml"),
	}

	combined := Combine(documents)

	if strings.Contains(combined, "Empty Domain") {
		t.Errorf("empty document contributed a header:\n%s", combined)
	}

	for _, expected := range []string{"' === Domain A ===", "Foo", "' === Domain B ===", "Bar"} {
		if !strings.Contains(combined, expected) {
			t.Errorf("missing '%s' in combined output:\n%s", expected, combined)
		}
	}
}

func TestStripStructuralLines(t *testing.T) {
	type testCase struct {
		Name     string
		Body     string
		Expected string
	}

	testCases := []testCase{
		{
			Name:     "plain",
			Body:     "@startuml\ntitle X\nA -> B\n@enduml",
			Expected: "A -> B",
		},
		{
			Name:     "markers absent",
			Body:     "A -> B\nB -> C",
			Expected: "A -> B\nB -> C",
		},
		{
			Name:     "case and whitespace tolerant",
			Body:     "  @StartUML  \n\tTITLE Whatever\nA -> B\n@ENDUML",
			Expected: "A -> B",
		},
		{
			Name:     "marker keyword mid-line is content",
			Body:     "@startuml\nnote \"see @enduml for details\" as n\n@enduml",
			Expected: "note \"see @enduml for details\" as n",
		},
		{
			Name:     "title prefix word is content",
			Body:     "@startuml\ntitlebar -> menu\n@enduml",
			Expected: "titlebar -> menu",
		},
		{
			Name:     "blank edges trimmed",
			Body:     "@startuml\n\n\nA -> B\n\n@enduml\n",
			Expected: "A -> B",
		},
		{
			Name:     "reduces to empty",
			Body:     "@startuml\ntitle X\n\n@enduml",
			Expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if e, g := tc.Expected, stripStructuralLines(tc.Body); e != g {
				t.Errorf("stripStructuralLines: expected %q, got %q", e, g)
			}
		})
	}
}
