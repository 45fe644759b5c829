// Package terminology implements a coded-terminology dictionary engine for
// classifying clinical findings with standardized vocabularies.
//
// A Registry owns named terminology contexts (category/type/modifier
// dictionaries) and anatomic contexts (region/modifier dictionaries), loaded
// from native JSON context files or legacy segment descriptor files. Query
// operations resolve, enumerate, index, and search the loaded trees; a
// compact serialized entry format attaches a classification to a host data
// object and round-trips exactly.
//
// # Quick Start
//
//	reg, err := terminology.NewRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	categoryID := terminology.NewCodeIdentifier("SCT", "123037004", "")
//	typeID := terminology.NewCodeIdentifier("SCT", "10200004", "")
//	typ, ok := reg.GetTypeInTerminologyCategory(
//	    "Segmentation category and type - 3D Slicer General Anatomy",
//	    categoryID, typeID)
//	if ok {
//	    fmt.Println(typ.CodeMeaning) // Liver
//	}
//
//	entry := &terminology.TerminologyEntry{
//	    TerminologyContextName: "Segmentation category and type - 3D Slicer General Anatomy",
//	    Category:               &categoryID,
//	    Type:                   &typeID,
//	}
//	s := terminology.SerializeTerminologyEntry(entry)
//
// # Concurrency
//
// The registry is built for sequential access from one owner. Loading
// mutates the registry; all query, search, serialize, and compare operations
// are read-only and may run in any order against a loaded registry, but not
// concurrently with a load. Callers needing multi-threaded access must
// serialize around the registry as a whole.
package terminology
