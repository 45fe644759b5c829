package terminology

// RGB is a recommended display color for a type or region.
type RGB struct {
	R, G, B uint8
}

// Type is a second-level node of a terminology context, or a top-level
// region of an anatomic context. Its Modifiers are terminal nodes of the
// same shape with an always-empty Modifiers slice.
type Type struct {
	CodeIdentifier

	// SlicerLabel is the deprecated free-text label once used to identify
	// a type before structured codes were adopted. Kept for
	// backward-compatible lookup only.
	SlicerLabel string

	RecommendedColor    RGB
	HasRecommendedColor bool

	Modifiers []Type
}

// Modifier returns the modifier with the given code identity, if any.
// The first match wins when a dictionary carries duplicate codes.
func (t *Type) Modifier(id CodeIdentifier) (Type, bool) {
	for i := range t.Modifiers {
		if t.Modifiers[i].SameCode(id) {
			return t.Modifiers[i], true
		}
	}
	return Type{}, false
}

// Category is a top-level node of a terminology context.
type Category struct {
	CodeIdentifier

	// ShowAnatomy indicates whether an anatomic region selector should be
	// offered for findings classified under this category.
	ShowAnatomy bool

	Types []Type
}

// Type returns the type with the given code identity, if any.
func (c *Category) Type(id CodeIdentifier) (*Type, bool) {
	for i := range c.Types {
		if c.Types[i].SameCode(id) {
			return &c.Types[i], true
		}
	}
	return nil, false
}

// Context is a named terminology dictionary: an ordered list of categories,
// each holding types, each holding modifiers. Child order is the order in
// the source file and is stable for indexed access.
type Context struct {
	Name       string
	Categories []Category
}

// Category returns the category with the given code identity, if any.
func (c *Context) Category(id CodeIdentifier) (*Category, bool) {
	for i := range c.Categories {
		if c.Categories[i].SameCode(id) {
			return &c.Categories[i], true
		}
	}
	return nil, false
}

// AnatomicContext is a named anatomic location dictionary: an ordered list
// of regions, each holding modifiers. Regions share the Type node shape.
type AnatomicContext struct {
	Name    string
	Regions []Type
}

// Region returns the region with the given code identity, if any.
func (a *AnatomicContext) Region(id CodeIdentifier) (*Type, bool) {
	for i := range a.Regions {
		if a.Regions[i].SameCode(id) {
			return &a.Regions[i], true
		}
	}
	return nil, false
}
