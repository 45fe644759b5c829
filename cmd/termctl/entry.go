package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/segterm/terminology"
)

var (
	flagEntryTerminology string
	flagEntryCategory    string
	flagEntryType        string
	flagEntryModifier    string
	flagEntryAnatomicCtx string
	flagEntryRegion      string
	flagEntryRegionMod   string
)

var serializeCmd = &cobra.Command{
	Use:   "serialize",
	Short: "Build a serialized terminology entry from its components",
	Long:  "Builds the canonical delimited entry string. Codes are given as SCHEME:VALUE or SCHEME:VALUE:MEANING; omitted components serialize as empty fields.",
	Args:  cobra.NoArgs,
	RunE:  runSerialize,
}

func init() {
	serializeCmd.Flags().StringVar(&flagEntryTerminology, "terminology", "", "terminology context name")
	serializeCmd.Flags().StringVar(&flagEntryCategory, "category", "", "category code")
	serializeCmd.Flags().StringVar(&flagEntryType, "type", "", "type code")
	serializeCmd.Flags().StringVar(&flagEntryModifier, "modifier", "", "type modifier code")
	serializeCmd.Flags().StringVar(&flagEntryAnatomicCtx, "anatomic-context", "", "anatomic context name")
	serializeCmd.Flags().StringVar(&flagEntryRegion, "region", "", "anatomic region code")
	serializeCmd.Flags().StringVar(&flagEntryRegionMod, "region-modifier", "", "region modifier code")
}

func runSerialize(cmd *cobra.Command, args []string) error {
	entry := &terminology.TerminologyEntry{
		TerminologyContextName: flagEntryTerminology,
		AnatomicContextName:    flagEntryAnatomicCtx,
	}

	var err error
	if entry.Category, err = optionalCode(flagEntryCategory); err != nil {
		return err
	}
	if entry.Type, err = optionalCode(flagEntryType); err != nil {
		return err
	}
	if entry.TypeModifier, err = optionalCode(flagEntryModifier); err != nil {
		return err
	}
	if entry.Region, err = optionalCode(flagEntryRegion); err != nil {
		return err
	}
	if entry.RegionModifier, err = optionalCode(flagEntryRegionMod); err != nil {
		return err
	}

	fmt.Println(terminology.SerializeTerminologyEntry(entry))
	return nil
}

func optionalCode(arg string) (*terminology.CodeIdentifier, error) {
	if arg == "" {
		return nil, nil
	}
	id, err := parseCode(arg)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

var infoCmd = &cobra.Command{
	Use:   "info <serialized-entry>",
	Short: "Describe a serialized terminology entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	entry, err := terminology.DeserializeTerminologyEntry(args[0])
	if err != nil {
		return err
	}
	if info := terminology.GetInfoStringFromTerminologyEntry(entry); info != "" {
		fmt.Println(info)
	}
	fmt.Printf("terminology context: %q\n", entry.TerminologyContextName)
	fmt.Printf("anatomic context:    %q\n", entry.AnatomicContextName)
	return nil
}
