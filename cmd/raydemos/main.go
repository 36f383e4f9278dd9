package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avandyck/raydemos/pkg/config"
)

const appName = "raydemos"

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Small parallel compute demos: sphere renderer, grayscale converter, π estimator",
	Long: `raydemos is a collection of small CPU compute demos sharing one execution
model: independent work items distributed across worker goroutines.

  render     ray-cast a sphere scene to an image
  grayscale  convert a color image to grayscale
  pi         estimate π by Monte Carlo sampling`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default raydemos.yaml in working directory)")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(grayscaleCmd)
	rootCmd.AddCommand(piCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
