package terminology

import (
	"fmt"

	"github.com/segterm/terminology/jsontree"
	"github.com/segterm/terminology/logger"
)

// JSON keys of the native context format.
const (
	keyTerminologyContextName = "SegmentationCategoryTypeContextName"
	keySegmentationCodes      = "SegmentationCodes"
	keyCategoryArray          = "Category"
	keyAnatomicContextName    = "AnatomicContextName"
	keyAnatomicCodes          = "AnatomicCodes"
	keyRegionArray            = "AnatomicRegion"
	keyModifierArray          = "Modifier"

	keyCodingSchemeDesignator = "CodingSchemeDesignator"
	keyCodeValue              = "CodeValue"
	keyCodeMeaning            = "CodeMeaning"
	keyShowAnatomy            = "showAnatomy"
	keyRecommendedColor       = "recommendedDisplayRGBValue"
	keySlicerLabel            = "3dSlicerLabel"
	keyTypeArray              = "Type"
)

// JSON keys of the legacy segment descriptor format.
const (
	keySegmentAttributes = "segmentAttributes"
	keyCategorySequence  = "SegmentedPropertyCategoryCodeSequence"
	keyTypeSequence      = "SegmentedPropertyTypeCodeSequence"
	keyTypeModSequence   = "SegmentedPropertyTypeModifierCodeSequence"
	keyRegionSequence    = "AnatomicRegionSequence"
	keyRegionModSequence = "AnatomicRegionModifierSequence"
)

// buildTerminology builds a terminology context from a native format tree.
// Malformed categories, types, and modifiers are skipped; the build fails
// only when the root shape itself is not a terminology context.
func buildTerminology(root jsontree.Element, log *logger.Logger) (*Context, error) {
	name, ok := childString(root, keyTerminologyContextName)
	if !ok || name == "" {
		return nil, fmt.Errorf("missing %s", keyTerminologyContextName)
	}

	codes, ok := root.Child(keySegmentationCodes)
	if !ok {
		return nil, fmt.Errorf("terminology %q: missing %s", name, keySegmentationCodes)
	}
	catEl, ok := codes.Child(keyCategoryArray)
	if !ok {
		return nil, fmt.Errorf("terminology %q: missing category array", name)
	}
	items, ok := catEl.Array()
	if !ok {
		return nil, fmt.Errorf("terminology %q: category list is not an array", name)
	}

	ctx := &Context{Name: name}
	for _, item := range items {
		category, ok := buildCategory(item)
		if !ok {
			log.Warn("terminology %q: skipping malformed category", name)
			continue
		}
		ctx.Categories = append(ctx.Categories, category)
	}
	return ctx, nil
}

// buildAnatomicContext builds an anatomic context from a native format tree.
func buildAnatomicContext(root jsontree.Element, log *logger.Logger) (*AnatomicContext, error) {
	name, ok := childString(root, keyAnatomicContextName)
	if !ok || name == "" {
		return nil, fmt.Errorf("missing %s", keyAnatomicContextName)
	}

	codes, ok := root.Child(keyAnatomicCodes)
	if !ok {
		return nil, fmt.Errorf("anatomic context %q: missing %s", name, keyAnatomicCodes)
	}
	regEl, ok := codes.Child(keyRegionArray)
	if !ok {
		return nil, fmt.Errorf("anatomic context %q: missing region array", name)
	}
	items, ok := regEl.Array()
	if !ok {
		return nil, fmt.Errorf("anatomic context %q: region list is not an array", name)
	}

	ctx := &AnatomicContext{Name: name}
	for _, item := range items {
		region, ok := buildType(item)
		if !ok {
			log.Warn("anatomic context %q: skipping malformed region", name)
			continue
		}
		ctx.Regions = append(ctx.Regions, region)
	}
	return ctx, nil
}

// buildCategory builds one category node, skipping malformed child types.
func buildCategory(el jsontree.Element) (Category, bool) {
	id, ok := codeFromElement(el)
	if !ok {
		return Category{}, false
	}
	category := Category{CodeIdentifier: id}
	if show, ok := el.Child(keyShowAnatomy); ok {
		category.ShowAnatomy, _ = show.Bool()
	}
	if typesEl, ok := el.Child(keyTypeArray); ok {
		if items, ok := typesEl.Array(); ok {
			for _, item := range items {
				if typ, ok := buildType(item); ok {
					category.Types = append(category.Types, typ)
				}
			}
		}
	}
	return category, true
}

// buildType builds one type or region node, skipping malformed modifiers.
func buildType(el jsontree.Element) (Type, bool) {
	typ, ok := buildModifier(el)
	if !ok {
		return Type{}, false
	}
	if modsEl, ok := el.Child(keyModifierArray); ok {
		if items, ok := modsEl.Array(); ok {
			for _, item := range items {
				if mod, ok := buildModifier(item); ok {
					typ.Modifiers = append(typ.Modifiers, mod)
				}
			}
		}
	}
	return typ, true
}

// buildModifier builds a terminal node: code identity plus display attributes.
func buildModifier(el jsontree.Element) (Type, bool) {
	id, ok := codeFromElement(el)
	if !ok {
		return Type{}, false
	}
	typ := Type{CodeIdentifier: id}
	typ.SlicerLabel, _ = childString(el, keySlicerLabel)
	if color, ok := colorFromElement(el); ok {
		typ.RecommendedColor = color
		typ.HasRecommendedColor = true
	}
	return typ, true
}

// codeFromElement reads a code identifier triple from an object element.
// The scheme designator and code value are required; the meaning is not.
func codeFromElement(el jsontree.Element) (CodeIdentifier, bool) {
	scheme, ok := childString(el, keyCodingSchemeDesignator)
	if !ok || scheme == "" {
		return CodeIdentifier{}, false
	}
	value, ok := childString(el, keyCodeValue)
	if !ok || value == "" {
		return CodeIdentifier{}, false
	}
	meaning, _ := childString(el, keyCodeMeaning)
	return NewCodeIdentifier(scheme, value, meaning), true
}

// colorFromElement reads a recommendedDisplayRGBValue triple.
func colorFromElement(el jsontree.Element) (RGB, bool) {
	colorEl, ok := el.Child(keyRecommendedColor)
	if !ok {
		return RGB{}, false
	}
	items, ok := colorEl.Array()
	if !ok || len(items) != 3 {
		return RGB{}, false
	}
	var channels [3]uint8
	for i, item := range items {
		n, ok := item.Number()
		if !ok || n < 0 || n > 255 {
			return RGB{}, false
		}
		channels[i] = uint8(n)
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}, true
}

func childString(el jsontree.Element, key string) (string, bool) {
	child, ok := el.Child(key)
	if !ok {
		return "", false
	}
	return child.String()
}

// descriptorSegments flattens the segmentAttributes array-of-arrays of a
// legacy segment descriptor file into one ordered segment list.
func descriptorSegments(root jsontree.Element) ([]jsontree.Element, error) {
	attrEl, ok := root.Child(keySegmentAttributes)
	if !ok {
		return nil, fmt.Errorf("missing %s", keySegmentAttributes)
	}
	groups, ok := attrEl.Array()
	if !ok {
		return nil, fmt.Errorf("%s is not an array", keySegmentAttributes)
	}
	var segments []jsontree.Element
	for _, group := range groups {
		// Each group holds the segments of one source instance.
		items, ok := group.Array()
		if !ok {
			// Tolerate a flat list of segments.
			segments = append(segments, group)
			continue
		}
		segments = append(segments, items...)
	}
	return segments, nil
}

// buildTerminologyFromDescriptor reconstructs a category/type/modifier tree
// from a flat segment descriptor list. Descriptors sharing a code identity
// are merged into one node; the caller supplies the context name because the
// file carries none.
func buildTerminologyFromDescriptor(contextName string, root jsontree.Element, log *logger.Logger) (*Context, error) {
	segments, err := descriptorSegments(root)
	if err != nil {
		return nil, err
	}

	ctx := &Context{Name: contextName}
	for _, segment := range segments {
		catEl, ok := segment.Child(keyCategorySequence)
		if !ok {
			log.Warn("descriptor terminology %q: segment without category, skipping", contextName)
			continue
		}
		catID, ok := codeFromElement(catEl)
		if !ok {
			log.Warn("descriptor terminology %q: malformed category code, skipping segment", contextName)
			continue
		}
		typeEl, ok := segment.Child(keyTypeSequence)
		if !ok {
			log.Warn("descriptor terminology %q: segment without type, skipping", contextName)
			continue
		}
		typeID, ok := codeFromElement(typeEl)
		if !ok {
			log.Warn("descriptor terminology %q: malformed type code, skipping segment", contextName)
			continue
		}

		category := findOrAddCategory(ctx, catID)
		typ := findOrAddType(category, typeID)
		if !typ.HasRecommendedColor {
			if color, ok := colorFromElement(segment); ok {
				typ.RecommendedColor = color
				typ.HasRecommendedColor = true
			}
		}

		if modEl, ok := segment.Child(keyTypeModSequence); ok {
			if modID, ok := codeFromElement(modEl); ok {
				if _, exists := typ.Modifier(modID); !exists {
					typ.Modifiers = append(typ.Modifiers, Type{CodeIdentifier: modID})
				}
			}
		}
	}
	return ctx, nil
}

// buildAnatomicFromDescriptor reconstructs a region/modifier tree from the
// anatomic region fields of a segment descriptor list. Segments without an
// anatomic region are skipped; a descriptor file is allowed to carry none at
// all, yielding an empty context.
func buildAnatomicFromDescriptor(contextName string, root jsontree.Element, log *logger.Logger) (*AnatomicContext, error) {
	segments, err := descriptorSegments(root)
	if err != nil {
		return nil, err
	}

	ctx := &AnatomicContext{Name: contextName}
	for _, segment := range segments {
		regEl, ok := segment.Child(keyRegionSequence)
		if !ok {
			continue
		}
		regID, ok := codeFromElement(regEl)
		if !ok {
			log.Warn("descriptor anatomic context %q: malformed region code, skipping segment", contextName)
			continue
		}

		region := findOrAddRegion(ctx, regID)
		if modEl, ok := segment.Child(keyRegionModSequence); ok {
			if modID, ok := codeFromElement(modEl); ok {
				if _, exists := region.Modifier(modID); !exists {
					region.Modifiers = append(region.Modifiers, Type{CodeIdentifier: modID})
				}
			}
		}
	}
	return ctx, nil
}

func findOrAddCategory(ctx *Context, id CodeIdentifier) *Category {
	if category, ok := ctx.Category(id); ok {
		return category
	}
	ctx.Categories = append(ctx.Categories, Category{CodeIdentifier: id})
	return &ctx.Categories[len(ctx.Categories)-1]
}

func findOrAddType(category *Category, id CodeIdentifier) *Type {
	if typ, ok := category.Type(id); ok {
		return typ
	}
	category.Types = append(category.Types, Type{CodeIdentifier: id})
	return &category.Types[len(category.Types)-1]
}

func findOrAddRegion(ctx *AnatomicContext, id CodeIdentifier) *Type {
	if region, ok := ctx.Region(id); ok {
		return region
	}
	ctx.Regions = append(ctx.Regions, Type{CodeIdentifier: id})
	return &ctx.Regions[len(ctx.Regions)-1]
}
