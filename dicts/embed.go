// Package dicts provides the bundled default context dictionaries.
//
// The embedded files are JSON context dictionaries in the native format:
// terminology contexts (category/type/modifier) and anatomic contexts
// (region/modifier). They are loaded into a registry at construction time
// unless default loading is disabled.
package dicts

import (
	"embed"
	"fmt"
)

//go:embed *.json
var files embed.FS

// DefaultTerminologyFiles lists the bundled terminology context files.
var DefaultTerminologyFiles = []string{
	"terminology-general-anatomy.json",
}

// DefaultAnatomicContextFiles lists the bundled anatomic context files.
var DefaultAnatomicContextFiles = []string{
	"anatomic-context-dicom-master.json",
}

// Read returns the contents of a bundled dictionary file.
func Read(name string) ([]byte, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading bundled dictionary %s: %w", name, err)
	}
	return data, nil
}

// List returns the names of all bundled dictionary files.
func List() ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("reading bundled dictionaries: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
