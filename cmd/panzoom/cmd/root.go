package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/panzoom"
)

var (
	// Global flags
	verbose         bool
	configPath      string
	scaleDefault    float64
	scaleDifference float64
	scaleMin        float64
	scaleMax        float64
	allowScroll     bool
)

var rootCmd = &cobra.Command{
	Use:   "panzoom",
	Short: "panzoom - pan and zoom gestures for images",
	Long: `panzoom drives the pan-and-zoom gesture engine:
  - an interactive image viewer (Ebitengine or Gio backend)
  - a gesture script runner that prints every transform
  - a dump of the effective configuration

Examples:
  panzoom view photo.png               # Open an image
  panzoom gio photo.png                # Same viewer with Gio
  panzoom replay gestures.json         # Replay a gesture script
  panzoom config --scale-max 4         # Show the effective settings`,
	Version:      "0.3.0",
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	pf.StringVarP(&configPath, "config", "c", "", "JSON settings file")
	pf.Float64Var(&scaleDefault, "scale-default", panzoom.DefaultScaleDefault, "scale on double click or double tap")
	pf.Float64Var(&scaleDifference, "scale-difference", panzoom.DefaultScaleDifference, "scale step per wheel notch")
	pf.Float64Var(&scaleMin, "scale-min", panzoom.DefaultScaleMin, "minimum scale")
	pf.Float64Var(&scaleMax, "scale-max", panzoom.DefaultScaleMax, "maximum scale")
	pf.BoolVar(&allowScroll, "allow-scroll", false, "do not suppress page scroll over targets")
}

// effectiveConfig layers the settings file and explicitly set flags over base.
func effectiveConfig(cmd *cobra.Command, base panzoom.Config) (panzoom.Config, error) {
	cfg := base
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if cfg, err = cfg.Merge(data); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("scale-default") {
		cfg.ScaleDefault = scaleDefault
	}
	if flags.Changed("scale-difference") {
		cfg.ScaleDifference = scaleDifference
	}
	if flags.Changed("scale-min") {
		cfg.ScaleMin = scaleMin
	}
	if flags.Changed("scale-max") {
		cfg.ScaleMax = scaleMax
	}
	if flags.Changed("allow-scroll") {
		cfg.AllowScroll = allowScroll
	}
	return cfg, nil
}
