package terminology

// TerminologyEntry is a complete classification record: a selection from a
// terminology context and an optional selection from an anatomic context.
// A nil coded field means that component is absent; absence is a valid
// state, not an error. An empty AnatomicContextName implies Region and
// RegionModifier are absent as well.
type TerminologyEntry struct {
	TerminologyContextName string
	Category               *CodeIdentifier
	Type                   *CodeIdentifier
	TypeModifier           *CodeIdentifier

	AnatomicContextName string
	Region              *CodeIdentifier
	RegionModifier      *CodeIdentifier
}

// IsEmpty reports whether no component of the entry is set.
func (e *TerminologyEntry) IsEmpty() bool {
	if e == nil {
		return true
	}
	return e.TerminologyContextName == "" &&
		e.Category == nil && e.Type == nil && e.TypeModifier == nil &&
		e.AnatomicContextName == "" &&
		e.Region == nil && e.RegionModifier == nil
}

// Copy returns a deep copy of the entry.
func (e *TerminologyEntry) Copy() *TerminologyEntry {
	if e == nil {
		return nil
	}
	out := &TerminologyEntry{
		TerminologyContextName: e.TerminologyContextName,
		AnatomicContextName:    e.AnatomicContextName,
	}
	out.Category = copyIdentifier(e.Category)
	out.Type = copyIdentifier(e.Type)
	out.TypeModifier = copyIdentifier(e.TypeModifier)
	out.Region = copyIdentifier(e.Region)
	out.RegionModifier = copyIdentifier(e.RegionModifier)
	return out
}

func copyIdentifier(id *CodeIdentifier) *CodeIdentifier {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
