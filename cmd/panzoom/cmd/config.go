package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/panzoom"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings as JSON",
	Long: `Print the settings the viewer would use after applying the settings
file (--config) and any explicitly set flags. Durations are in milliseconds.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(cmd, panzoom.DefaultConfig())
	if err != nil {
		return err
	}
	// Print what the engine will actually run with.
	cfg = panzoom.NewEngine(cfg, nil).Config()
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
