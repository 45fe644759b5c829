package terminology

import "strings"

// Query surface over the loaded contexts.
//
// Lookup operations return a copy of the found node and a success flag; a
// false flag means the context name is unknown or no child matched. The
// Get...s enumerations return code identifiers only, which is enough to
// populate a selector; the Find... searches accept an empty search string
// (matching everything) and their full-object variants return resolved nodes
// so callers rendering many rows do not need a second lookup per result.

// matchMeaning reports whether a code meaning matches the search substring
// under the registry's case sensitivity policy.
func (r *Registry) matchMeaning(meaning, search string) bool {
	if search == "" {
		return true
	}
	if r.searchCaseSensitive {
		return strings.Contains(meaning, search)
	}
	return strings.Contains(strings.ToLower(meaning), strings.ToLower(search))
}

func identifiers(types []Type) []CodeIdentifier {
	ids := make([]CodeIdentifier, len(types))
	for i := range types {
		ids[i] = types[i].CodeIdentifier
	}
	return ids
}

// --- Categories ---

// GetCategoriesInTerminology returns the code identifiers of every category
// in a terminology, in file order.
func (r *Registry) GetCategoriesInTerminology(terminologyName string) ([]CodeIdentifier, bool) {
	ctx, ok := r.terminologies[terminologyName]
	if !ok {
		return nil, false
	}
	ids := make([]CodeIdentifier, len(ctx.Categories))
	for i := range ctx.Categories {
		ids[i] = ctx.Categories[i].CodeIdentifier
	}
	return ids, true
}

// FindCategoriesInTerminology returns the categories whose meaning contains
// the search string. An empty search returns every category.
func (r *Registry) FindCategoriesInTerminology(terminologyName, search string) ([]CodeIdentifier, bool) {
	ctx, ok := r.terminologies[terminologyName]
	if !ok {
		return nil, false
	}
	var ids []CodeIdentifier
	for i := range ctx.Categories {
		if r.matchMeaning(ctx.Categories[i].CodeMeaning, search) {
			ids = append(ids, ctx.Categories[i].CodeIdentifier)
		}
	}
	return ids, true
}

// GetCategoryInTerminology returns the category with the given code identity.
func (r *Registry) GetCategoryInTerminology(terminologyName string, categoryID CodeIdentifier) (Category, bool) {
	ctx, ok := r.terminologies[terminologyName]
	if !ok {
		return Category{}, false
	}
	category, ok := ctx.Category(categoryID)
	if !ok {
		return Category{}, false
	}
	return *category, true
}

// GetNumberOfCategoriesInTerminology returns the category count, or 0 when
// the terminology is unknown.
func (r *Registry) GetNumberOfCategoriesInTerminology(terminologyName string) int {
	ctx, ok := r.terminologies[terminologyName]
	if !ok {
		return 0
	}
	return len(ctx.Categories)
}

// GetNthCategoryInTerminology returns the category at the given position in
// file order. The index must be in [0, count).
func (r *Registry) GetNthCategoryInTerminology(terminologyName string, index int) (Category, bool) {
	ctx, ok := r.terminologies[terminologyName]
	if !ok || index < 0 || index >= len(ctx.Categories) {
		return Category{}, false
	}
	return ctx.Categories[index], true
}

// --- Types ---

func (r *Registry) categoryIn(terminologyName string, categoryID CodeIdentifier) (*Category, bool) {
	ctx, ok := r.terminologies[terminologyName]
	if !ok {
		return nil, false
	}
	return ctx.Category(categoryID)
}

// GetTypesInTerminologyCategory returns the code identifiers of every type
// in a category, in file order.
func (r *Registry) GetTypesInTerminologyCategory(terminologyName string, categoryID CodeIdentifier) ([]CodeIdentifier, bool) {
	category, ok := r.categoryIn(terminologyName, categoryID)
	if !ok {
		return nil, false
	}
	return identifiers(category.Types), true
}

// FindTypesInTerminologyCategory returns the identifiers of the types whose
// meaning contains the search string. An empty search returns every type.
func (r *Registry) FindTypesInTerminologyCategory(terminologyName string, categoryID CodeIdentifier, search string) ([]CodeIdentifier, bool) {
	types, ok := r.FindTypeObjectsInTerminologyCategory(terminologyName, categoryID, search)
	if !ok {
		return nil, false
	}
	return identifiers(types), true
}

// FindTypeObjectsInTerminologyCategory is the full-object variant of
// FindTypesInTerminologyCategory: it returns resolved type nodes with their
// display attributes, sparing callers a per-result lookup.
func (r *Registry) FindTypeObjectsInTerminologyCategory(terminologyName string, categoryID CodeIdentifier, search string) ([]Type, bool) {
	category, ok := r.categoryIn(terminologyName, categoryID)
	if !ok {
		return nil, false
	}
	var types []Type
	for i := range category.Types {
		if r.matchMeaning(category.Types[i].CodeMeaning, search) {
			types = append(types, category.Types[i])
		}
	}
	return types, true
}

// GetTypeInTerminologyCategory returns the type with the given code identity.
func (r *Registry) GetTypeInTerminologyCategory(terminologyName string, categoryID, typeID CodeIdentifier) (Type, bool) {
	category, ok := r.categoryIn(terminologyName, categoryID)
	if !ok {
		return Type{}, false
	}
	typ, ok := category.Type(typeID)
	if !ok {
		return Type{}, false
	}
	return *typ, true
}

// GetNumberOfTypesInTerminologyCategory returns the type count, or 0 when
// the terminology or category is unknown.
func (r *Registry) GetNumberOfTypesInTerminologyCategory(terminologyName string, categoryID CodeIdentifier) int {
	category, ok := r.categoryIn(terminologyName, categoryID)
	if !ok {
		return 0
	}
	return len(category.Types)
}

// GetNthTypeInTerminologyCategory returns the type at the given position in
// file order. The index must be in [0, count).
func (r *Registry) GetNthTypeInTerminologyCategory(terminologyName string, categoryID CodeIdentifier, index int) (Type, bool) {
	category, ok := r.categoryIn(terminologyName, categoryID)
	if !ok || index < 0 || index >= len(category.Types) {
		return Type{}, false
	}
	return category.Types[index], true
}

// --- Type modifiers ---

func (r *Registry) typeIn(terminologyName string, categoryID, typeID CodeIdentifier) (*Type, bool) {
	category, ok := r.categoryIn(terminologyName, categoryID)
	if !ok {
		return nil, false
	}
	return category.Type(typeID)
}

// GetTypeModifiersInTerminologyType returns the code identifiers of every
// modifier of a type, in file order.
func (r *Registry) GetTypeModifiersInTerminologyType(terminologyName string, categoryID, typeID CodeIdentifier) ([]CodeIdentifier, bool) {
	typ, ok := r.typeIn(terminologyName, categoryID, typeID)
	if !ok {
		return nil, false
	}
	return identifiers(typ.Modifiers), true
}

// FindTypeModifiersInTerminologyType returns the modifiers whose meaning
// contains the search string. An empty search returns every modifier.
func (r *Registry) FindTypeModifiersInTerminologyType(terminologyName string, categoryID, typeID CodeIdentifier, search string) ([]CodeIdentifier, bool) {
	typ, ok := r.typeIn(terminologyName, categoryID, typeID)
	if !ok {
		return nil, false
	}
	var ids []CodeIdentifier
	for i := range typ.Modifiers {
		if r.matchMeaning(typ.Modifiers[i].CodeMeaning, search) {
			ids = append(ids, typ.Modifiers[i].CodeIdentifier)
		}
	}
	return ids, true
}

// GetTypeModifierInTerminologyType returns the modifier with the given code
// identity.
func (r *Registry) GetTypeModifierInTerminologyType(terminologyName string, categoryID, typeID, modifierID CodeIdentifier) (Type, bool) {
	typ, ok := r.typeIn(terminologyName, categoryID, typeID)
	if !ok {
		return Type{}, false
	}
	return typ.Modifier(modifierID)
}

// GetNumberOfTypeModifiersInTerminologyType returns the modifier count, or 0
// when the terminology, category, or type is unknown.
func (r *Registry) GetNumberOfTypeModifiersInTerminologyType(terminologyName string, categoryID, typeID CodeIdentifier) int {
	typ, ok := r.typeIn(terminologyName, categoryID, typeID)
	if !ok {
		return 0
	}
	return len(typ.Modifiers)
}

// GetNthTypeModifierInTerminologyType returns the modifier at the given
// position in file order. The index must be in [0, count).
func (r *Registry) GetNthTypeModifierInTerminologyType(terminologyName string, categoryID, typeID CodeIdentifier, index int) (Type, bool) {
	typ, ok := r.typeIn(terminologyName, categoryID, typeID)
	if !ok || index < 0 || index >= len(typ.Modifiers) {
		return Type{}, false
	}
	return typ.Modifiers[index], true
}

// --- Anatomic regions ---

// GetRegionsInAnatomicContext returns the code identifiers of every region
// in an anatomic context, in file order.
func (r *Registry) GetRegionsInAnatomicContext(anatomicContextName string) ([]CodeIdentifier, bool) {
	ctx, ok := r.anatomicContexts[anatomicContextName]
	if !ok {
		return nil, false
	}
	return identifiers(ctx.Regions), true
}

// FindRegionsInAnatomicContext returns the regions whose meaning contains
// the search string. An empty search returns every region.
func (r *Registry) FindRegionsInAnatomicContext(anatomicContextName, search string) ([]CodeIdentifier, bool) {
	ctx, ok := r.anatomicContexts[anatomicContextName]
	if !ok {
		return nil, false
	}
	var ids []CodeIdentifier
	for i := range ctx.Regions {
		if r.matchMeaning(ctx.Regions[i].CodeMeaning, search) {
			ids = append(ids, ctx.Regions[i].CodeIdentifier)
		}
	}
	return ids, true
}

// GetRegionInAnatomicContext returns the region with the given code identity.
func (r *Registry) GetRegionInAnatomicContext(anatomicContextName string, regionID CodeIdentifier) (Type, bool) {
	ctx, ok := r.anatomicContexts[anatomicContextName]
	if !ok {
		return Type{}, false
	}
	region, ok := ctx.Region(regionID)
	if !ok {
		return Type{}, false
	}
	return *region, true
}

// GetNumberOfRegionsInAnatomicContext returns the region count, or 0 when
// the anatomic context is unknown.
func (r *Registry) GetNumberOfRegionsInAnatomicContext(anatomicContextName string) int {
	ctx, ok := r.anatomicContexts[anatomicContextName]
	if !ok {
		return 0
	}
	return len(ctx.Regions)
}

// GetNthRegionInAnatomicContext returns the region at the given position in
// file order. The index must be in [0, count).
func (r *Registry) GetNthRegionInAnatomicContext(anatomicContextName string, index int) (Type, bool) {
	ctx, ok := r.anatomicContexts[anatomicContextName]
	if !ok || index < 0 || index >= len(ctx.Regions) {
		return Type{}, false
	}
	return ctx.Regions[index], true
}

// --- Region modifiers ---

func (r *Registry) regionIn(anatomicContextName string, regionID CodeIdentifier) (*Type, bool) {
	ctx, ok := r.anatomicContexts[anatomicContextName]
	if !ok {
		return nil, false
	}
	return ctx.Region(regionID)
}

// GetRegionModifiersInAnatomicRegion returns the code identifiers of every
// modifier of a region, in file order.
func (r *Registry) GetRegionModifiersInAnatomicRegion(anatomicContextName string, regionID CodeIdentifier) ([]CodeIdentifier, bool) {
	region, ok := r.regionIn(anatomicContextName, regionID)
	if !ok {
		return nil, false
	}
	return identifiers(region.Modifiers), true
}

// FindRegionModifiersInAnatomicRegion returns the modifiers whose meaning
// contains the search string. An empty search returns every modifier.
func (r *Registry) FindRegionModifiersInAnatomicRegion(anatomicContextName string, regionID CodeIdentifier, search string) ([]CodeIdentifier, bool) {
	region, ok := r.regionIn(anatomicContextName, regionID)
	if !ok {
		return nil, false
	}
	var ids []CodeIdentifier
	for i := range region.Modifiers {
		if r.matchMeaning(region.Modifiers[i].CodeMeaning, search) {
			ids = append(ids, region.Modifiers[i].CodeIdentifier)
		}
	}
	return ids, true
}

// GetRegionModifierInAnatomicRegion returns the modifier with the given code
// identity.
func (r *Registry) GetRegionModifierInAnatomicRegion(anatomicContextName string, regionID, modifierID CodeIdentifier) (Type, bool) {
	region, ok := r.regionIn(anatomicContextName, regionID)
	if !ok {
		return Type{}, false
	}
	return region.Modifier(modifierID)
}

// GetNumberOfRegionModifiersInAnatomicRegion returns the modifier count, or
// 0 when the anatomic context or region is unknown.
func (r *Registry) GetNumberOfRegionModifiersInAnatomicRegion(anatomicContextName string, regionID CodeIdentifier) int {
	region, ok := r.regionIn(anatomicContextName, regionID)
	if !ok {
		return 0
	}
	return len(region.Modifiers)
}

// GetNthRegionModifierInAnatomicRegion returns the modifier at the given
// position in file order. The index must be in [0, count).
func (r *Registry) GetNthRegionModifierInAnatomicRegion(anatomicContextName string, regionID CodeIdentifier, index int) (Type, bool) {
	region, ok := r.regionIn(anatomicContextName, regionID)
	if !ok || index < 0 || index >= len(region.Modifiers) {
		return Type{}, false
	}
	return region.Modifiers[index], true
}
