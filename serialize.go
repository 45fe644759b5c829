package terminology

import (
	"errors"
	"fmt"
	"strings"
)

// Serialized terminology entry layout. The encoding is positional: seven
// component fields separated by "~", with coded components encoded as
// "scheme^value^meaning". Absent components serialize as empty fields, so
// the field count is fixed regardless of which components are present. This
// is a persisted wire format and must stay byte-for-byte stable.
const (
	entrySeparator = "~"
	codeSeparator  = "^"

	entryFieldCount = 7
	codePartCount   = 3
)

// ErrMalformedEntry is returned when a serialized entry cannot be decoded.
var ErrMalformedEntry = errors.New("malformed serialized terminology entry")

// SerializeTerminologyEntry encodes an entry as one delimited string:
// terminology context name, category, type, type modifier, anatomic context
// name, region, region modifier.
func SerializeTerminologyEntry(entry *TerminologyEntry) string {
	if entry == nil {
		entry = &TerminologyEntry{}
	}
	fields := []string{
		entry.TerminologyContextName,
		serializeCode(entry.Category),
		serializeCode(entry.Type),
		serializeCode(entry.TypeModifier),
		entry.AnatomicContextName,
		serializeCode(entry.Region),
		serializeCode(entry.RegionModifier),
	}
	return strings.Join(fields, entrySeparator)
}

// SerializeTerminologyEntryComponents builds the same encoding directly from
// individual field values.
//
// The arguments take the code value before the scheme designator, while the
// encoded string always stores the scheme designator first. The mismatch is
// deliberate: the argument order matches a legacy caller and cannot change
// without breaking it.
func SerializeTerminologyEntryComponents(
	terminologyContextName string,
	categoryValue, categorySchemeDesignator, categoryMeaning string,
	typeValue, typeSchemeDesignator, typeMeaning string,
	modifierValue, modifierSchemeDesignator, modifierMeaning string,
	anatomicContextName string,
	regionValue, regionSchemeDesignator, regionMeaning string,
	regionModifierValue, regionModifierSchemeDesignator, regionModifierMeaning string,
) string {
	fields := []string{
		terminologyContextName,
		joinCode(categorySchemeDesignator, categoryValue, categoryMeaning),
		joinCode(typeSchemeDesignator, typeValue, typeMeaning),
		joinCode(modifierSchemeDesignator, modifierValue, modifierMeaning),
		anatomicContextName,
		joinCode(regionSchemeDesignator, regionValue, regionMeaning),
		joinCode(regionModifierSchemeDesignator, regionModifierValue, regionModifierMeaning),
	}
	return strings.Join(fields, entrySeparator)
}

// DeserializeTerminologyEntry decodes a serialized entry. It returns
// ErrMalformedEntry when the field count does not match the fixed layout.
// Empty fields decode as absent components, so
// DeserializeTerminologyEntry(SerializeTerminologyEntry(e)) reproduces e.
func DeserializeTerminologyEntry(serialized string) (*TerminologyEntry, error) {
	fields := strings.Split(serialized, entrySeparator)
	if len(fields) != entryFieldCount {
		return nil, fmt.Errorf("%w: got %d fields, want %d", ErrMalformedEntry, len(fields), entryFieldCount)
	}

	entry := &TerminologyEntry{
		TerminologyContextName: fields[0],
		AnatomicContextName:    fields[4],
	}
	var err error
	if entry.Category, err = deserializeCode(fields[1]); err != nil {
		return nil, err
	}
	if entry.Type, err = deserializeCode(fields[2]); err != nil {
		return nil, err
	}
	if entry.TypeModifier, err = deserializeCode(fields[3]); err != nil {
		return nil, err
	}
	if entry.Region, err = deserializeCode(fields[5]); err != nil {
		return nil, err
	}
	if entry.RegionModifier, err = deserializeCode(fields[6]); err != nil {
		return nil, err
	}
	return entry, nil
}

func serializeCode(id *CodeIdentifier) string {
	if id == nil {
		return joinCode("", "", "")
	}
	return joinCode(id.CodingSchemeDesignator, id.CodeValue, id.CodeMeaning)
}

func joinCode(schemeDesignator, value, meaning string) string {
	return schemeDesignator + codeSeparator + value + codeSeparator + meaning
}

func deserializeCode(field string) (*CodeIdentifier, error) {
	parts := strings.Split(field, codeSeparator)
	if len(parts) != codePartCount {
		return nil, fmt.Errorf("%w: coded field %q has %d parts, want %d", ErrMalformedEntry, field, len(parts), codePartCount)
	}
	id := NewCodeIdentifier(parts[0], parts[1], parts[2])
	if id.IsEmpty() {
		return nil, nil
	}
	return &id, nil
}

// GetInfoStringFromTerminologyEntry assembles a human readable description of
// an entry, such as "Anatomical Structure: Kidney (Left) in Kidney (Left)".
// It is for display only and does not round-trip.
func GetInfoStringFromTerminologyEntry(entry *TerminologyEntry) string {
	if entry.IsEmpty() {
		return ""
	}

	var b strings.Builder
	if entry.Category != nil && entry.Category.CodeMeaning != "" {
		b.WriteString(entry.Category.CodeMeaning)
		b.WriteString(": ")
	}
	if entry.Type != nil {
		b.WriteString(entry.Type.CodeMeaning)
	}
	if entry.TypeModifier != nil && entry.TypeModifier.CodeMeaning != "" {
		fmt.Fprintf(&b, " (%s)", entry.TypeModifier.CodeMeaning)
	}
	if entry.Region != nil {
		if b.Len() > 0 {
			b.WriteString(" in ")
		}
		b.WriteString(entry.Region.CodeMeaning)
		if entry.RegionModifier != nil && entry.RegionModifier.CodeMeaning != "" {
			fmt.Fprintf(&b, " (%s)", entry.RegionModifier.CodeMeaning)
		}
	}
	return b.String()
}
