package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List loaded terminology and anatomic context names",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := newRegistry()
	if err != nil {
		return err
	}

	fmt.Println("Terminologies:")
	for _, name := range reg.LoadedTerminologyNames() {
		fmt.Printf("  %s (%d categories)\n", name, reg.GetNumberOfCategoriesInTerminology(name))
	}
	fmt.Println("Anatomic contexts:")
	for _, name := range reg.LoadedAnatomicContextNames() {
		fmt.Printf("  %s (%d regions)\n", name, reg.GetNumberOfRegionsInAnatomicContext(name))
	}
	return nil
}
