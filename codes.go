package terminology

// CodeIdentifier uniquely identifies a coded concept within a coding scheme.
// Identity is the (CodingSchemeDesignator, CodeValue) pair; CodeMeaning is the
// human readable name and never participates in identity.
type CodeIdentifier struct {
	CodingSchemeDesignator string
	CodeValue              string
	CodeMeaning            string
}

// NewCodeIdentifier creates a code identifier from its three components.
func NewCodeIdentifier(schemeDesignator, value, meaning string) CodeIdentifier {
	return CodeIdentifier{
		CodingSchemeDesignator: schemeDesignator,
		CodeValue:              value,
		CodeMeaning:            meaning,
	}
}

// IsEmpty reports whether the identifier carries no code identity.
func (c CodeIdentifier) IsEmpty() bool {
	return c.CodingSchemeDesignator == "" && c.CodeValue == ""
}

// SameCode reports whether two identifiers name the same code.
// Meanings may differ between dictionaries carrying the same code.
func (c CodeIdentifier) SameCode(other CodeIdentifier) bool {
	return c.CodingSchemeDesignator == other.CodingSchemeDesignator &&
		c.CodeValue == other.CodeValue
}

// AreCodedEntriesEqual compares two optional coded entries.
// Both absent counts as equal; present entries are equal when they name the
// same code, regardless of meaning. An empty identifier is absent.
func AreCodedEntriesEqual(a, b *CodeIdentifier) bool {
	aAbsent := a == nil || a.IsEmpty()
	bAbsent := b == nil || b.IsEmpty()
	if aAbsent || bAbsent {
		return aAbsent == bAbsent
	}
	return a.SameCode(*b)
}
