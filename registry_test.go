package terminology

import (
	"os"
	"path/filepath"
	"testing"
)

const (
	testTerminologyName = "Test terminology - thoracic"
	testAnatomicName    = "Test anatomic context - thoracic"
)

// newTestRegistry returns a registry without the bundled dictionaries,
// loaded with the test fixtures.
func newTestRegistry(t *testing.T, opts ...Option) *Registry {
	t.Helper()
	reg, err := NewRegistry(append([]Option{WithoutDefaultContexts()}, opts...)...)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	if _, err := reg.LoadTerminologyFromFile("testdata/terminology-test.json"); err != nil {
		t.Fatalf("loading test terminology: %v", err)
	}
	if _, err := reg.LoadAnatomicContextFromFile("testdata/anatomic-context-test.json"); err != nil {
		t.Fatalf("loading test anatomic context: %v", err)
	}
	return reg
}

func TestNewRegistryDefaults(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	t.Run("bundled terminology is loaded", func(t *testing.T) {
		names := reg.LoadedTerminologyNames()
		if len(names) == 0 {
			t.Fatal("expected bundled terminologies")
		}
		if names[0] != "Segmentation category and type - 3D Slicer General Anatomy" {
			t.Errorf("first terminology = %q", names[0])
		}
	})

	t.Run("bundled anatomic context is loaded", func(t *testing.T) {
		names := reg.LoadedAnatomicContextNames()
		if len(names) == 0 {
			t.Fatal("expected bundled anatomic contexts")
		}
		if names[0] != "Anatomic codes - DICOM master list" {
			t.Errorf("first anatomic context = %q", names[0])
		}
	})

	t.Run("liver type resolves", func(t *testing.T) {
		typ, ok := reg.GetTypeInTerminologyCategory(
			"Segmentation category and type - 3D Slicer General Anatomy",
			NewCodeIdentifier("SCT", "123037004", ""),
			NewCodeIdentifier("SCT", "10200004", ""))
		if !ok {
			t.Fatal("expected liver type to resolve")
		}
		if typ.CodeMeaning != "Liver" {
			t.Errorf("CodeMeaning = %q; want %q", typ.CodeMeaning, "Liver")
		}
	})
}

func TestLoadTerminologyFromFile(t *testing.T) {
	reg := newTestRegistry(t)

	t.Run("returns the name from the file", func(t *testing.T) {
		name, err := reg.LoadTerminologyFromFile("testdata/terminology-test.json")
		if err != nil {
			t.Fatalf("LoadTerminologyFromFile() error = %v", err)
		}
		if name != testTerminologyName {
			t.Errorf("name = %q; want %q", name, testTerminologyName)
		}
	})

	t.Run("unreadable path fails", func(t *testing.T) {
		if _, err := reg.LoadTerminologyFromFile("testdata/does-not-exist.json"); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("anatomic file is not a terminology", func(t *testing.T) {
		if _, err := reg.LoadTerminologyFromFile("testdata/anatomic-context-test.json"); err == nil {
			t.Error("expected error loading anatomic context as terminology")
		}
	})

	t.Run("malformed children are skipped", func(t *testing.T) {
		name, err := reg.LoadTerminologyFromFile("testdata/terminology-partial.json")
		if err != nil {
			t.Fatalf("LoadTerminologyFromFile() error = %v", err)
		}
		if got := reg.GetNumberOfCategoriesInTerminology(name); got != 1 {
			t.Errorf("categories = %d; want 1 (malformed category skipped)", got)
		}
		if got := reg.GetNumberOfTypesInTerminologyCategory(name, NewCodeIdentifier("TST", "C1", "")); got != 2 {
			t.Errorf("types = %d; want 2 (malformed type skipped)", got)
		}
	})
}

func TestLoadContextFromFileAutoDetect(t *testing.T) {
	reg, err := NewRegistry(WithoutDefaultContexts())
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	t.Run("terminology file", func(t *testing.T) {
		if err := reg.LoadContextFromFile("testdata/terminology-test.json"); err != nil {
			t.Fatalf("LoadContextFromFile() error = %v", err)
		}
		if _, ok := reg.Terminology(testTerminologyName); !ok {
			t.Error("terminology not registered")
		}
	})

	t.Run("anatomic context file", func(t *testing.T) {
		if err := reg.LoadContextFromFile("testdata/anatomic-context-test.json"); err != nil {
			t.Fatalf("LoadContextFromFile() error = %v", err)
		}
		if _, ok := reg.AnatomicContext(testAnatomicName); !ok {
			t.Error("anatomic context not registered")
		}
	})

	t.Run("unrecognized shape fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "junk.json")
		if err := os.WriteFile(path, []byte(`{"foo": 1}`), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := reg.LoadContextFromFile(path); err == nil {
			t.Error("expected error for unrecognized file")
		}
	})
}

func TestReloadReplacesContext(t *testing.T) {
	reg := newTestRegistry(t)

	updated := []byte(`{
		"SegmentationCategoryTypeContextName": "Test terminology - thoracic",
		"SegmentationCodes": {
			"Category": [
				{
					"CodingSchemeDesignator": "TST",
					"CodeValue": "C9",
					"CodeMeaning": "Replacement category",
					"Type": []
				}
			]
		}
	}`)
	path := filepath.Join(t.TempDir(), "updated.json")
	if err := os.WriteFile(path, updated, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := reg.LoadTerminologyFromFile(path); err != nil {
		t.Fatalf("reload error = %v", err)
	}

	if _, ok := reg.GetCategoryInTerminology(testTerminologyName, NewCodeIdentifier("TST", "C1", "")); ok {
		t.Error("old category still present after reload")
	}
	if _, ok := reg.GetCategoryInTerminology(testTerminologyName, NewCodeIdentifier("TST", "C9", "")); !ok {
		t.Error("new category missing after reload")
	}

	names := reg.LoadedTerminologyNames()
	count := 0
	for _, name := range names {
		if name == testTerminologyName {
			count++
		}
	}
	if count != 1 {
		t.Errorf("name listed %d times after reload; want 1", count)
	}
}

func TestLoadFromSegmentDescriptorFile(t *testing.T) {
	reg, err := NewRegistry(WithoutDefaultContexts())
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	if err := reg.LoadTerminologyFromSegmentDescriptorFile("Imported descriptor", "testdata/segment-descriptor-test.json"); err != nil {
		t.Fatalf("LoadTerminologyFromSegmentDescriptorFile() error = %v", err)
	}

	t.Run("shared codes are merged", func(t *testing.T) {
		// Two liver descriptors and one kidney descriptor share one category.
		if got := reg.GetNumberOfCategoriesInTerminology("Imported descriptor"); got != 1 {
			t.Fatalf("categories = %d; want 1", got)
		}
		categoryID := NewCodeIdentifier("SCT", "123037004", "")
		if got := reg.GetNumberOfTypesInTerminologyCategory("Imported descriptor", categoryID); got != 2 {
			t.Errorf("types = %d; want 2 (duplicate liver merged)", got)
		}
		mods, ok := reg.GetTypeModifiersInTerminologyType("Imported descriptor", categoryID, NewCodeIdentifier("SCT", "64033007", ""))
		if !ok || len(mods) != 1 {
			t.Errorf("kidney modifiers = %v, ok = %v; want one modifier", mods, ok)
		}
	})

	t.Run("anatomic regions come from the same file", func(t *testing.T) {
		if err := reg.LoadAnatomicContextFromSegmentDescriptorFile("Imported descriptor anatomy", "testdata/segment-descriptor-test.json"); err != nil {
			t.Fatalf("LoadAnatomicContextFromSegmentDescriptorFile() error = %v", err)
		}
		if got := reg.GetNumberOfRegionsInAnatomicContext("Imported descriptor anatomy"); got != 2 {
			t.Errorf("regions = %d; want 2", got)
		}
	})
}

func TestLoadUserContexts(t *testing.T) {
	dir := t.TempDir()

	good, err := os.ReadFile("testdata/terminology-test.json")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "good.json"), good, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	reg, err := NewRegistry(WithoutDefaultContexts(), WithUserContextsPath(dir))
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	if _, ok := reg.Terminology(testTerminologyName); !ok {
		t.Error("user context not loaded")
	}
	if got := len(reg.LoadedTerminologyNames()); got != 1 {
		t.Errorf("loaded terminologies = %d; want 1 (bad file skipped)", got)
	}

	t.Run("missing directory fails", func(t *testing.T) {
		reg, err := NewRegistry(WithoutDefaultContexts())
		if err != nil {
			t.Fatal(err)
		}
		reg.SetUserContextsPath(filepath.Join(dir, "missing"))
		if err := reg.LoadUserContexts(); err == nil {
			t.Error("expected error for missing directory")
		}
	})
}

func TestLoadedNamesOrder(t *testing.T) {
	reg := newTestRegistry(t)

	if _, err := reg.LoadTerminologyFromFile("testdata/terminology-partial.json"); err != nil {
		t.Fatal(err)
	}

	names := reg.LoadedTerminologyNames()
	want := []string{testTerminologyName, "Test terminology - partial"}
	if len(names) != len(want) {
		t.Fatalf("names = %v; want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q; want %q", i, names[i], want[i])
		}
	}
}
