package terminology

// SegmentTerminologyEntryTagName is the name of the free-text attribute
// under which a serialized terminology entry is attached to a host segment.
const SegmentTerminologyEntryTagName = "TerminologyEntry"

// Segment is the minimal surface this package needs from a host data object
// carrying a serialized terminology entry attribute.
type Segment interface {
	// Tag returns the value of the named free-text attribute and whether
	// it is set.
	Tag(name string) (string, bool)
}

// AreTerminologyEntriesEqual compares two entries component by component:
// the five coded components via AreCodedEntriesEqual and the two context
// names by exact string equality. A nil entry equals an empty entry.
func AreTerminologyEntriesEqual(e1, e2 *TerminologyEntry) bool {
	if e1 == nil {
		e1 = &TerminologyEntry{}
	}
	if e2 == nil {
		e2 = &TerminologyEntry{}
	}
	return e1.TerminologyContextName == e2.TerminologyContextName &&
		e1.AnatomicContextName == e2.AnatomicContextName &&
		AreCodedEntriesEqual(e1.Category, e2.Category) &&
		AreCodedEntriesEqual(e1.Type, e2.Type) &&
		AreCodedEntriesEqual(e1.TypeModifier, e2.TypeModifier) &&
		AreCodedEntriesEqual(e1.Region, e2.Region) &&
		AreCodedEntriesEqual(e1.RegionModifier, e2.RegionModifier)
}

// AreTerminologyEntryStringsEqual compares two serialized entries by
// deserializing both sides and delegating to AreTerminologyEntriesEqual.
//
// When only one side fails to deserialize the entries are not equal. When
// both sides fail the strings are compared byte for byte: in particular two
// empty strings (segments that never carried an entry) are equal, and two
// identically corrupt attributes compare equal rather than spuriously
// different.
func AreTerminologyEntryStringsEqual(s1, s2 string) bool {
	e1, err1 := DeserializeTerminologyEntry(s1)
	e2, err2 := DeserializeTerminologyEntry(s2)
	if err1 != nil || err2 != nil {
		if err1 != nil && err2 != nil {
			return s1 == s2
		}
		return false
	}
	return AreTerminologyEntriesEqual(e1, e2)
}

// AreSegmentTerminologyEntriesEqual compares the serialized terminology
// entries attached to two segments. A missing attribute is treated as an
// absent entry, so two segments with no terminology attribute at all are
// equal. This rule exists for backward compatibility with data created
// before terminology attributes were introduced; it is not a general
// equality of unset segments.
func AreSegmentTerminologyEntriesEqual(segment1, segment2 Segment) bool {
	return AreTerminologyEntryStringsEqual(segmentEntryString(segment1), segmentEntryString(segment2))
}

func segmentEntryString(segment Segment) string {
	if segment == nil {
		return ""
	}
	value, ok := segment.Tag(SegmentTerminologyEntryTagName)
	if !ok {
		return ""
	}
	return value
}
