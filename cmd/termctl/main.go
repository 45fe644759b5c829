// Package main implements termctl, a command line tool for inspecting
// terminology and anatomic context dictionaries.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/segterm/terminology"
	"github.com/segterm/terminology/logger"
)

var (
	flagConfig        string
	flagUserDir       string
	flagCaseSensitive bool
	flagLogLevel      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "termctl",
	Short:         "Inspect coded terminology and anatomic context dictionaries",
	Long:          "termctl loads the bundled terminology dictionaries (plus any user context files) and answers lookup, search, and serialization queries against them.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
	// No Run — prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: $HOME/.termctl.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagUserDir, "user-contexts", "", "directory scanned for additional context files")
	rootCmd.PersistentFlags().BoolVar(&flagCaseSensitive, "case-sensitive", false, "make substring searches case sensitive")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "log level: debug|info|warn|error|none")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(serializeCmd)
	rootCmd.AddCommand(infoCmd)
}

// initConfig wires viper: config file and environment override the flag
// defaults, explicit flags override everything.
func initConfig(cmd *cobra.Command) error {
	if flagConfig != "" {
		viper.SetConfigFile(flagConfig)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".termctl")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("TERMCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one is not.
		if flagConfig != "" {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	if err := viper.BindPFlag("user-contexts", cmd.Flags().Lookup("user-contexts")); err != nil {
		return err
	}
	if err := viper.BindPFlag("case-sensitive", cmd.Flags().Lookup("case-sensitive")); err != nil {
		return err
	}
	if err := viper.BindPFlag("log-level", cmd.Flags().Lookup("log-level")); err != nil {
		return err
	}
	return nil
}

// newRegistry builds a registry from the resolved configuration.
func newRegistry() (*terminology.Registry, error) {
	log := logger.New(os.Stderr, logger.ParseLevel(viper.GetString("log-level")))

	opts := []terminology.Option{
		terminology.WithLogger(log),
		terminology.WithCaseSensitiveSearch(viper.GetBool("case-sensitive")),
	}
	if dir := viper.GetString("user-contexts"); dir != "" {
		opts = append(opts, terminology.WithUserContextsPath(dir))
	}
	return terminology.NewRegistry(opts...)
}

// parseCode parses a SCHEME:VALUE or SCHEME:VALUE:MEANING argument.
func parseCode(arg string) (terminology.CodeIdentifier, error) {
	parts := strings.SplitN(arg, ":", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return terminology.CodeIdentifier{}, fmt.Errorf("invalid code %q: want SCHEME:VALUE or SCHEME:VALUE:MEANING", arg)
	}
	meaning := ""
	if len(parts) == 3 {
		meaning = parts[2]
	}
	return terminology.NewCodeIdentifier(parts[0], parts[1], meaning), nil
}

func formatCode(id terminology.CodeIdentifier) string {
	if id.CodeMeaning == "" {
		return fmt.Sprintf("(%s, %s)", id.CodingSchemeDesignator, id.CodeValue)
	}
	return fmt.Sprintf("(%s, %s) %s", id.CodingSchemeDesignator, id.CodeValue, id.CodeMeaning)
}
