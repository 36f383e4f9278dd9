package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/avandyck/raydemos/pkg/executor"
	"github.com/avandyck/raydemos/pkg/grayscale"
	"github.com/avandyck/raydemos/pkg/output"
)

var grayscaleFlags struct {
	workers    int
	format     string
	outPath    string
	sequential bool
}

var grayscaleCmd = &cobra.Command{
	Use:   "grayscale <input-image>",
	Short: "Convert a color image (PNG, JPEG or BMP) to grayscale",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("workers") {
			grayscaleFlags.workers = cfg.Grayscale.Workers
		}
		if !cmd.Flags().Changed("format") {
			grayscaleFlags.format = cfg.Grayscale.Format
		}

		format, err := output.ParseFormat(grayscaleFlags.format)
		if err != nil {
			return err
		}
		if format == output.FormatPPM {
			return fmt.Errorf("grayscale output supports png, bmp or tiff")
		}

		in, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening input image: %w", err)
		}
		defer in.Close()

		img, err := output.DecodeImage(in)
		if err != nil {
			return err
		}

		var exec executor.Executor = executor.NewPool(grayscaleFlags.workers)
		if grayscaleFlags.sequential {
			exec = executor.Sequential{}
		}

		start := time.Now()
		gray := grayscale.Convert(img, exec)
		elapsed := time.Since(start)

		bounds := gray.Bounds()
		fmt.Printf("Converted %dx%d in %v\n", bounds.Dx(), bounds.Dy(), elapsed)

		out, err := os.Create(grayscaleFlags.outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer out.Close()

		if err := output.EncodeImage(out, gray, format); err != nil {
			return fmt.Errorf("encoding %s: %w", format, err)
		}

		fmt.Printf("Saved %s\n", grayscaleFlags.outPath)
		return nil
	},
}

func init() {
	grayscaleCmd.Flags().IntVar(&grayscaleFlags.workers, "workers", 0, "worker goroutines (0 = one per CPU)")
	grayscaleCmd.Flags().StringVar(&grayscaleFlags.format, "format", "", "output format: png, bmp, tiff")
	grayscaleCmd.Flags().StringVarP(&grayscaleFlags.outPath, "out", "o", "gray.png", "output file path")
	grayscaleCmd.Flags().BoolVar(&grayscaleFlags.sequential, "sequential", false, "convert on a single goroutine")
}
