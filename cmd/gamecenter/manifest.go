package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/game-center/internal/manifest"
)

var flagIconsDir string

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Print the web manifest",
	Long: `Validate the embedded manifest and print it as web-manifest JSON.
With --icons, also render the declared icons as PNG files.

Examples:
  gamecenter manifest > manifest.json
  gamecenter manifest --icons ./public`,
	Args: cobra.NoArgs,
	RunE: runManifest,
}

func init() {
	manifestCmd.Flags().StringVar(&flagIconsDir, "icons", "", "Directory to write the icon PNGs into")
}

func runManifest(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	m, err := manifest.Load()
	if err != nil {
		return err
	}
	data, err := m.JSON()
	if err != nil {
		return err
	}
	fmt.Println(string(data))

	if flagIconsDir == "" {
		return nil
	}
	paths, err := m.WriteIcons(flagIconsDir)
	if err != nil {
		return err
	}
	for _, p := range paths {
		logger.Info("icon written", "path", p)
	}
	return nil
}
