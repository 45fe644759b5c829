package dicts

import (
	"encoding/json"
	"testing"
)

func TestRead(t *testing.T) {
	for _, name := range append(DefaultTerminologyFiles, DefaultAnatomicContextFiles...) {
		t.Run(name, func(t *testing.T) {
			data, err := Read(name)
			if err != nil {
				t.Fatalf("Read(%s) error = %v", name, err)
			}
			if !json.Valid(data) {
				t.Errorf("bundled file %s is not valid JSON", name)
			}
		})
	}

	t.Run("unknown file", func(t *testing.T) {
		if _, err := Read("no-such-dictionary.json"); err == nil {
			t.Error("expected error for unknown file")
		}
	})
}

func TestList(t *testing.T) {
	names, err := List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	listed := make(map[string]bool, len(names))
	for _, name := range names {
		listed[name] = true
	}
	for _, name := range append(DefaultTerminologyFiles, DefaultAnatomicContextFiles...) {
		if !listed[name] {
			t.Errorf("default file %s missing from List()", name)
		}
	}
}
