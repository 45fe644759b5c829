package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/segterm/terminology"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories <terminology>",
	Short: "List the categories of a terminology",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategories,
}

func runCategories(cmd *cobra.Command, args []string) error {
	reg, err := newRegistry()
	if err != nil {
		return err
	}
	ids, ok := reg.GetCategoriesInTerminology(args[0])
	if !ok {
		return fmt.Errorf("%w: %q", terminology.ErrUnknownContext, args[0])
	}
	for _, id := range ids {
		fmt.Println(formatCode(id))
	}
	return nil
}

var searchCmd = &cobra.Command{
	Use:   "search <terminology> <text>",
	Short: "Search type names across all categories of a terminology",
	Args:  cobra.ExactArgs(2),
	RunE:  runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	reg, err := newRegistry()
	if err != nil {
		return err
	}
	name, text := args[0], args[1]

	categories, ok := reg.GetCategoriesInTerminology(name)
	if !ok {
		return fmt.Errorf("%w: %q", terminology.ErrUnknownContext, name)
	}
	found := 0
	for _, categoryID := range categories {
		types, ok := reg.FindTypeObjectsInTerminologyCategory(name, categoryID, text)
		if !ok {
			continue
		}
		for _, typ := range types {
			line := fmt.Sprintf("%s / %s", categoryID.CodeMeaning, formatCode(typ.CodeIdentifier))
			if typ.SlicerLabel != "" {
				line += fmt.Sprintf(" [label: %s]", typ.SlicerLabel)
			}
			fmt.Println(line)
			found++
		}
	}
	if found == 0 {
		fmt.Printf("no types matching %q in %q\n", text, name)
	}
	return nil
}
