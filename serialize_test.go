package terminology

import (
	"errors"
	"strings"
	"testing"
)

func fullEntry() *TerminologyEntry {
	category := NewCodeIdentifier("SCT", "123037004", "Anatomical Structure")
	typ := NewCodeIdentifier("SCT", "64033007", "Kidney")
	modifier := NewCodeIdentifier("SCT", "7771000", "Left")
	region := NewCodeIdentifier("SCT", "64033007", "Kidney")
	regionModifier := NewCodeIdentifier("SCT", "7771000", "Left")
	return &TerminologyEntry{
		TerminologyContextName: "Segmentation category and type - 3D Slicer General Anatomy",
		Category:               &category,
		Type:                   &typ,
		TypeModifier:           &modifier,
		AnatomicContextName:    "Anatomic codes - DICOM master list",
		Region:                 &region,
		RegionModifier:         &regionModifier,
	}
}

func TestSerializeTerminologyEntry(t *testing.T) {
	t.Run("full entry layout", func(t *testing.T) {
		s := SerializeTerminologyEntry(fullEntry())
		want := "Segmentation category and type - 3D Slicer General Anatomy" +
			"~SCT^123037004^Anatomical Structure" +
			"~SCT^64033007^Kidney" +
			"~SCT^7771000^Left" +
			"~Anatomic codes - DICOM master list" +
			"~SCT^64033007^Kidney" +
			"~SCT^7771000^Left"
		if s != want {
			t.Errorf("serialized = %q\nwant %q", s, want)
		}
	})

	t.Run("absent components serialize as empty fields", func(t *testing.T) {
		category := NewCodeIdentifier("S", "1", "C")
		s := SerializeTerminologyEntry(&TerminologyEntry{
			TerminologyContextName: "T1",
			Category:               &category,
		})
		if s != "T1~S^1^C~^^~^^~~^^~^^" {
			t.Errorf("serialized = %q", s)
		}
		if got := strings.Count(s, "~"); got != 6 {
			t.Errorf("separators = %d; want 6 (fixed field count)", got)
		}
	})

	t.Run("nil entry serializes as all empty", func(t *testing.T) {
		if s := SerializeTerminologyEntry(nil); s != "~^^~^^~^^~~^^~^^" {
			t.Errorf("serialized = %q", s)
		}
	})
}

func TestDeserializeTerminologyEntry(t *testing.T) {
	t.Run("round trip full entry", func(t *testing.T) {
		orig := fullEntry()
		back, err := DeserializeTerminologyEntry(SerializeTerminologyEntry(orig))
		if err != nil {
			t.Fatalf("Deserialize error = %v", err)
		}
		if !AreTerminologyEntriesEqual(orig, back) {
			t.Errorf("round trip mismatch: %+v", back)
		}
		// Meanings are preserved, not just identity.
		if back.Category.CodeMeaning != "Anatomical Structure" {
			t.Errorf("category meaning = %q", back.Category.CodeMeaning)
		}
	})

	t.Run("round trip all absent", func(t *testing.T) {
		orig := &TerminologyEntry{}
		back, err := DeserializeTerminologyEntry(SerializeTerminologyEntry(orig))
		if err != nil {
			t.Fatalf("Deserialize error = %v", err)
		}
		if !AreTerminologyEntriesEqual(orig, back) {
			t.Errorf("round trip mismatch: %+v", back)
		}
		if !back.IsEmpty() {
			t.Errorf("entry = %+v; want empty", back)
		}
	})

	t.Run("round trip partial entry maps empty fields to absent", func(t *testing.T) {
		category := NewCodeIdentifier("S", "1", "C")
		orig := &TerminologyEntry{TerminologyContextName: "T1", Category: &category}
		back, err := DeserializeTerminologyEntry(SerializeTerminologyEntry(orig))
		if err != nil {
			t.Fatalf("Deserialize error = %v", err)
		}
		if back.Type != nil || back.TypeModifier != nil {
			t.Errorf("type = %v, modifier = %v; want absent", back.Type, back.TypeModifier)
		}
		if back.AnatomicContextName != "" || back.Region != nil || back.RegionModifier != nil {
			t.Error("anatomic components must be absent")
		}
		if !AreTerminologyEntriesEqual(orig, back) {
			t.Errorf("round trip mismatch: %+v", back)
		}
	})

	t.Run("wrong field count fails", func(t *testing.T) {
		for _, s := range []string{"", "plain text", "a~b~c", "a~b~c~d~e~f~g~h"} {
			if _, err := DeserializeTerminologyEntry(s); !errors.Is(err, ErrMalformedEntry) {
				t.Errorf("Deserialize(%q) error = %v; want ErrMalformedEntry", s, err)
			}
		}
	})

	t.Run("wrong code part count fails", func(t *testing.T) {
		if _, err := DeserializeTerminologyEntry("T1~S^1~^^~^^~~^^~^^"); !errors.Is(err, ErrMalformedEntry) {
			t.Error("expected ErrMalformedEntry for malformed coded field")
		}
	})
}

func TestSerializeTerminologyEntryComponents(t *testing.T) {
	// The flat form takes value before scheme but must produce the same
	// scheme-first encoding as the entry form.
	s := SerializeTerminologyEntryComponents(
		"Segmentation category and type - 3D Slicer General Anatomy",
		"123037004", "SCT", "Anatomical Structure",
		"64033007", "SCT", "Kidney",
		"7771000", "SCT", "Left",
		"Anatomic codes - DICOM master list",
		"64033007", "SCT", "Kidney",
		"7771000", "SCT", "Left",
	)
	if want := SerializeTerminologyEntry(fullEntry()); s != want {
		t.Errorf("components form = %q\nentry form      = %q", s, want)
	}
}

func TestGetInfoStringFromTerminologyEntry(t *testing.T) {
	t.Run("full entry", func(t *testing.T) {
		got := GetInfoStringFromTerminologyEntry(fullEntry())
		want := "Anatomical Structure: Kidney (Left) in Kidney (Left)"
		if got != want {
			t.Errorf("info = %q; want %q", got, want)
		}
	})

	t.Run("type only", func(t *testing.T) {
		typ := NewCodeIdentifier("SCT", "10200004", "Liver")
		entry := &TerminologyEntry{Type: &typ}
		if got := GetInfoStringFromTerminologyEntry(entry); got != "Liver" {
			t.Errorf("info = %q; want %q", got, "Liver")
		}
	})

	t.Run("empty entry", func(t *testing.T) {
		if got := GetInfoStringFromTerminologyEntry(&TerminologyEntry{}); got != "" {
			t.Errorf("info = %q; want empty", got)
		}
	})
}
