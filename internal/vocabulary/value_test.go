package vocabulary

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

const testDocument = `{
	"name": "BIAN Service Landscape",
	"version": 12,
	"deprecated": false,
	"domains": [
		{
			"name": "Business Support",
			"capabilities": ["Buildings", "Fixed Asset Register"]
		},
		{
			"name": "Risk and Compliance",
			"capabilities": null
		}
	]
}`

func TestDecode(t *testing.T) {
	value, err := Decode(strings.NewReader(testDocument))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := KindObject, value.Kind(); e != g {
		t.Fatalf("value.Kind(): expected %v, got %v", e, g)
	}

	if e, g := []string{"name", "version", "deprecated", "domains"}, value.Keys(); len(e) != len(g) {
		t.Fatalf("value.Keys(): expected %v, got %v", e, g)
	} else {
		for i := range e {
			if e[i] != g[i] {
				t.Errorf("value.Keys()[%d]: expected %q, got %q (key order not preserved)", i, e[i], g[i])
			}
		}
	}

	if e, g := "BIAN Service Landscape", value.Field("name").Text(); e != g {
		t.Errorf("name: expected %q, got %q", e, g)
	}

	if e, g := "12", value.Field("version").Number().String(); e != g {
		t.Errorf("version: expected %q, got %q", e, g)
	}

	domains := value.Field("domains")
	if e, g := KindArray, domains.Kind(); e != g {
		t.Fatalf("domains.Kind(): expected %v, got %v", e, g)
	}

	if e, g := 2, len(domains.Items()); e != g {
		t.Fatalf("len(domains.Items()): expected %d, got %d", e, g)
	}

	if e, g := KindNull, domains.Items()[1].Field("capabilities").Kind(); e != g {
		t.Errorf("null capability: expected %v, got %v", e, g)
	}
}

func TestTerms(t *testing.T) {
	value, err := Decode(strings.NewReader(testDocument))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	terms := Terms(value)

	byPath := map[string]string{}
	for _, term := range terms {
		byPath[term.Path] = term.Text
	}

	expected := map[string]string{
		"name":                     "BIAN Service Landscape",
		"version":                  "12",
		"deprecated":               "false",
		"domains.0.name":           "Business Support",
		"domains.0.capabilities.0": "Buildings",
		"domains.0.capabilities.1": "Fixed Asset Register",
		"domains.1.name":           "Risk and Compliance",
	}

	for path, text := range expected {
		if e, g := text, byPath[path]; e != g {
			t.Errorf("term '%s': expected %q, got %q", path, e, g)
		}
	}

	// null leaves contribute no term
	if _, exists := byPath["domains.1.capabilities"]; exists {
		t.Error("null value produced a term")
	}
}
