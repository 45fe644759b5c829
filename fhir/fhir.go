// Package fhir converts between terminology engine records and FHIR R4
// terminology resources, so entries attached to segmentations can be
// exchanged with FHIR-speaking systems.
package fhir

import (
	"fmt"

	"github.com/gofhir/fhir/r4"

	"github.com/segterm/terminology"
)

// schemeSystems maps DICOM coding scheme designators to FHIR system URIs.
var schemeSystems = map[string]string{
	"SCT":    "http://snomed.info/sct",
	"DCM":    "http://dicom.nema.org/resources/ontology/DCM",
	"LN":     "http://loinc.org",
	"FMA":    "http://purl.org/sig/ont/fma",
	"UMLS":   "http://terminology.hl7.org/CodeSystem/umls",
	"RADLEX": "http://radlex.org",
}

var systemSchemes = invert(schemeSystems)

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// SystemFromSchemeDesignator returns the FHIR system URI for a coding scheme
// designator. Unknown designators are passed through unchanged.
func SystemFromSchemeDesignator(schemeDesignator string) string {
	if system, ok := schemeSystems[schemeDesignator]; ok {
		return system
	}
	return schemeDesignator
}

// SchemeDesignatorFromSystem returns the coding scheme designator for a FHIR
// system URI. Unknown systems are passed through unchanged.
func SchemeDesignatorFromSystem(system string) string {
	if scheme, ok := systemSchemes[system]; ok {
		return scheme
	}
	return system
}

// CodingFromIdentifier converts a code identifier to an R4 Coding.
func CodingFromIdentifier(id terminology.CodeIdentifier) r4.Coding {
	coding := r4.Coding{
		System: strPtr(SystemFromSchemeDesignator(id.CodingSchemeDesignator)),
		Code:   strPtr(id.CodeValue),
	}
	if id.CodeMeaning != "" {
		coding.Display = strPtr(id.CodeMeaning)
	}
	return coding
}

// IdentifierFromCoding converts an R4 Coding to a code identifier. It fails
// when the coding carries no system or no code.
func IdentifierFromCoding(coding *r4.Coding) (terminology.CodeIdentifier, bool) {
	if coding == nil || coding.System == nil || *coding.System == "" ||
		coding.Code == nil || *coding.Code == "" {
		return terminology.CodeIdentifier{}, false
	}
	display := ""
	if coding.Display != nil {
		display = *coding.Display
	}
	return terminology.NewCodeIdentifier(SchemeDesignatorFromSystem(*coding.System), *coding.Code, display), true
}

// CodeableConceptFromEntry converts the type selection of a terminology
// entry to an R4 CodeableConcept. The type is the primary coding, followed
// by the type modifier when present; the concept text is the entry's human
// readable description.
func CodeableConceptFromEntry(entry *terminology.TerminologyEntry) (r4.CodeableConcept, bool) {
	if entry == nil || entry.Type == nil {
		return r4.CodeableConcept{}, false
	}
	concept := r4.CodeableConcept{
		Coding: []r4.Coding{CodingFromIdentifier(*entry.Type)},
	}
	if entry.TypeModifier != nil {
		concept.Coding = append(concept.Coding, CodingFromIdentifier(*entry.TypeModifier))
	}
	if info := terminology.GetInfoStringFromTerminologyEntry(entry); info != "" {
		concept.Text = strPtr(info)
	}
	return concept, true
}

// RegionCodeableConceptFromEntry converts the anatomic region selection of a
// terminology entry to an R4 CodeableConcept, for use as a body site.
func RegionCodeableConceptFromEntry(entry *terminology.TerminologyEntry) (r4.CodeableConcept, bool) {
	if entry == nil || entry.Region == nil {
		return r4.CodeableConcept{}, false
	}
	concept := r4.CodeableConcept{
		Coding: []r4.Coding{CodingFromIdentifier(*entry.Region)},
	}
	if entry.RegionModifier != nil {
		concept.Coding = append(concept.Coding, CodingFromIdentifier(*entry.RegionModifier))
	}
	return concept, true
}

// ContextFromCodeSystem builds a terminology context from an R4 CodeSystem
// concept hierarchy: top-level concepts become categories, their children
// types, and grandchildren type modifiers. Concepts without a code are
// skipped. The context is named contextName, falling back to the code
// system's name.
func ContextFromCodeSystem(cs *r4.CodeSystem, contextName string) (*terminology.Context, error) {
	if cs == nil {
		return nil, fmt.Errorf("code system is nil")
	}
	if contextName == "" && cs.Name != nil {
		contextName = *cs.Name
	}
	if contextName == "" {
		return nil, fmt.Errorf("code system has no name and no context name was supplied")
	}

	scheme := ""
	if cs.Url != nil {
		scheme = SchemeDesignatorFromSystem(*cs.Url)
	}
	if scheme == "" {
		return nil, fmt.Errorf("code system %q has no url", contextName)
	}

	ctx := &terminology.Context{Name: contextName}
	for i := range cs.Concept {
		id, ok := conceptIdentifier(&cs.Concept[i], scheme)
		if !ok {
			continue
		}
		category := terminology.Category{CodeIdentifier: id}
		for j := range cs.Concept[i].Concept {
			typ, ok := typeFromConcept(&cs.Concept[i].Concept[j], scheme)
			if !ok {
				continue
			}
			category.Types = append(category.Types, typ)
		}
		ctx.Categories = append(ctx.Categories, category)
	}
	if len(ctx.Categories) == 0 {
		return nil, fmt.Errorf("code system %q has no usable concepts", contextName)
	}
	return ctx, nil
}

func typeFromConcept(concept *r4.CodeSystemConcept, scheme string) (terminology.Type, bool) {
	id, ok := conceptIdentifier(concept, scheme)
	if !ok {
		return terminology.Type{}, false
	}
	typ := terminology.Type{CodeIdentifier: id}
	for i := range concept.Concept {
		if modID, ok := conceptIdentifier(&concept.Concept[i], scheme); ok {
			typ.Modifiers = append(typ.Modifiers, terminology.Type{CodeIdentifier: modID})
		}
	}
	return typ, true
}

func conceptIdentifier(concept *r4.CodeSystemConcept, scheme string) (terminology.CodeIdentifier, bool) {
	if concept.Code == nil || *concept.Code == "" {
		return terminology.CodeIdentifier{}, false
	}
	display := ""
	if concept.Display != nil {
		display = *concept.Display
	}
	return terminology.NewCodeIdentifier(scheme, *concept.Code, display), true
}

func strPtr(s string) *string {
	return &s
}
