// Package jsontree parses JSON files into a generic queryable element tree.
//
// Context files are authored externally and loosely typed, so the tree
// builder in the root package works against Element values rather than
// concrete structs: an Element is an object, array, or scalar, and every
// accessor reports presence with a comma-ok result instead of failing.
package jsontree

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/buger/jsonparser"
)

// Element is one node of a parsed JSON document.
// The zero Element is absent: every accessor on it returns false.
type Element struct {
	value any
	valid bool
}

// Parse decodes a JSON document into an element tree.
func Parse(data []byte) (Element, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return Element{}, fmt.Errorf("parsing JSON document: %w", err)
	}
	return Element{value: v, valid: true}, nil
}

// ParseFile reads and parses a JSON file into an element tree.
func ParseFile(path string) (Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Element{}, fmt.Errorf("reading %s: %w", path, err)
	}
	el, err := Parse(data)
	if err != nil {
		return Element{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return el, nil
}

// IsValid reports whether the element refers to a parsed value.
func (e Element) IsValid() bool {
	return e.valid
}

// IsObject reports whether the element is a JSON object.
func (e Element) IsObject() bool {
	_, ok := e.value.(map[string]any)
	return e.valid && ok
}

// IsArray reports whether the element is a JSON array.
func (e Element) IsArray() bool {
	_, ok := e.value.([]any)
	return e.valid && ok
}

// Child returns the named member of an object element.
func (e Element) Child(key string) (Element, bool) {
	obj, ok := e.value.(map[string]any)
	if !e.valid || !ok {
		return Element{}, false
	}
	v, ok := obj[key]
	if !ok {
		return Element{}, false
	}
	return Element{value: v, valid: true}, true
}

// Array returns the items of an array element in document order.
func (e Element) Array() ([]Element, bool) {
	arr, ok := e.value.([]any)
	if !e.valid || !ok {
		return nil, false
	}
	items := make([]Element, len(arr))
	for i, v := range arr {
		items[i] = Element{value: v, valid: true}
	}
	return items, true
}

// String returns the element as a string scalar.
func (e Element) String() (string, bool) {
	s, ok := e.value.(string)
	return s, e.valid && ok
}

// Number returns the element as a numeric scalar.
func (e Element) Number() (float64, bool) {
	n, ok := e.value.(float64)
	return n, e.valid && ok
}

// Bool returns the element as a boolean scalar.
func (e Element) Bool() (bool, bool) {
	b, ok := e.value.(bool)
	return b, e.valid && ok
}

// HasKey reports whether the raw document has a value at the given key path,
// without decoding the whole document. Used to detect the kind of a context
// file before building its tree.
func HasKey(data []byte, keys ...string) bool {
	_, _, _, err := jsonparser.Get(data, keys...)
	return err == nil
}
