package terminology

// FindTerminologyNames returns the names of every loaded terminology context
// containing the given type (with the given modifier, when one is set) under
// the given category. An empty categoryID matches a type in any category; an
// empty modifierID matches regardless of modifiers.
//
// Contexts listed in preferredNames are returned first, in preferred order,
// followed by any other matching contexts in registry order. An empty
// preferredNames searches all contexts in registry order.
func (r *Registry) FindTerminologyNames(categoryID, typeID, modifierID CodeIdentifier, preferredNames []string) []string {
	var found []string
	seen := make(map[string]bool)

	for _, name := range preferredNames {
		ctx, ok := r.terminologies[name]
		if !ok || seen[name] {
			continue
		}
		if terminologyContains(ctx, categoryID, typeID, modifierID) {
			found = append(found, name)
		}
		seen[name] = true
	}
	for _, name := range r.terminologyNames {
		if seen[name] {
			continue
		}
		if terminologyContains(r.terminologies[name], categoryID, typeID, modifierID) {
			found = append(found, name)
		}
	}
	return found
}

func terminologyContains(ctx *Context, categoryID, typeID, modifierID CodeIdentifier) bool {
	for i := range ctx.Categories {
		category := &ctx.Categories[i]
		if !categoryID.IsEmpty() && !category.SameCode(categoryID) {
			continue
		}
		typ, ok := category.Type(typeID)
		if !ok {
			continue
		}
		if modifierID.IsEmpty() {
			return true
		}
		if _, ok := typ.Modifier(modifierID); ok {
			return true
		}
	}
	return false
}

// FindAnatomicContextNames returns the names of every loaded anatomic
// context containing the given region (with the given modifier, when one is
// set). Ordering follows the same preferred-then-registry rule as
// FindTerminologyNames.
func (r *Registry) FindAnatomicContextNames(regionID, modifierID CodeIdentifier, preferredNames []string) []string {
	var found []string
	seen := make(map[string]bool)

	for _, name := range preferredNames {
		ctx, ok := r.anatomicContexts[name]
		if !ok || seen[name] {
			continue
		}
		if anatomicContextContains(ctx, regionID, modifierID) {
			found = append(found, name)
		}
		seen[name] = true
	}
	for _, name := range r.anatomicNames {
		if seen[name] {
			continue
		}
		if anatomicContextContains(r.anatomicContexts[name], regionID, modifierID) {
			found = append(found, name)
		}
	}
	return found
}

func anatomicContextContains(ctx *AnatomicContext, regionID, modifierID CodeIdentifier) bool {
	region, ok := ctx.Region(regionID)
	if !ok {
		return false
	}
	if modifierID.IsEmpty() {
		return true
	}
	_, ok = region.Modifier(modifierID)
	return ok
}

// FindTypeInTerminologyBy3dSlicerLabel looks for an exact match of the
// deprecated 3dSlicerLabel attribute on every type and type modifier of the
// named terminology. The first match populates a terminology entry with the
// full category/type/(modifier) chain.
//
// The scan is linear in the size of the context; it exists for one-time
// import and migration paths, not steady-state queries.
func (r *Registry) FindTypeInTerminologyBy3dSlicerLabel(terminologyName, label string) (TerminologyEntry, bool) {
	ctx, ok := r.terminologies[terminologyName]
	if !ok || label == "" {
		return TerminologyEntry{}, false
	}

	for i := range ctx.Categories {
		category := &ctx.Categories[i]
		for j := range category.Types {
			typ := &category.Types[j]
			if typ.SlicerLabel == label {
				return TerminologyEntry{
					TerminologyContextName: ctx.Name,
					Category:               copyIdentifier(&category.CodeIdentifier),
					Type:                   copyIdentifier(&typ.CodeIdentifier),
				}, true
			}
			for k := range typ.Modifiers {
				if typ.Modifiers[k].SlicerLabel == label {
					return TerminologyEntry{
						TerminologyContextName: ctx.Name,
						Category:               copyIdentifier(&category.CodeIdentifier),
						Type:                   copyIdentifier(&typ.CodeIdentifier),
						TypeModifier:           copyIdentifier(&typ.Modifiers[k].CodeIdentifier),
					}, true
				}
			}
		}
	}
	return TerminologyEntry{}, false
}
