package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/astrododge/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or validate game configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the default game config",
	Long: `Print the built-in game config as YAML.

Save it as ~/.astrododge/configs/dodge.yaml or ./configs/dodge.yaml and edit
it to change the arena, speeds, spawn timers and difficulty curve.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), string(config.DefaultYAML()))
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Validate a game config file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
		if _, err := config.Parse(data); err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configCheckCmd)
}
