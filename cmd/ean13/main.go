// Command ean13 scans images for EAN-13 barcodes and renders them.
package main

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/quietzone/ean13"
	"github.com/quietzone/ean13/binarize"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ean13",
	Short: "EAN-13 barcode scanner and generator",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var scanTryHarder bool

var scanCmd = &cobra.Command{
	Use:   "scan <image-file> [image-file...]",
	Short: "Decode EAN-13 barcodes from image files (PNG, JPEG, GIF)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := ean13.NewReader()
		failed := false
		for _, path := range args {
			result, err := scanFile(reader, path)
			if err != nil {
				logger.Warn("scan failed", zap.String("file", path), zap.Error(err))
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				failed = true
				continue
			}
			logger.Debug("decoded",
				zap.String("file", path),
				zap.String("text", result.Text),
				zap.String("symbology", result.SymbologyID))
			if len(args) > 1 {
				fmt.Printf("%s: ", path)
			}
			fmt.Printf("[%s] %s\n", result.Format, result.Text)
		}
		if failed {
			os.Exit(1)
		}
		return nil
	},
}

var (
	makeOut    string
	makeWidth  int
	makeHeight int
)

var makeCmd = &cobra.Command{
	Use:   "make <digits>",
	Short: "Render an EAN-13 barcode PNG from 12 or 13 digits",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		writer := ean13.NewWriter()
		matrix, err := writer.Encode(args[0], makeWidth, makeHeight)
		if err != nil {
			return err
		}

		img := image.NewGray(image.Rect(0, 0, matrix.Width(), matrix.Height()))
		for y := 0; y < matrix.Height(); y++ {
			for x := 0; x < matrix.Width(); x++ {
				if matrix.Get(x, y) {
					img.SetGray(x, y, color.Gray{Y: 0})
				} else {
					img.SetGray(x, y, color.Gray{Y: 255})
				}
			}
		}

		f, err := os.Create(makeOut)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := png.Encode(f, img); err != nil {
			return fmt.Errorf("write %s: %w", makeOut, err)
		}
		logger.Debug("rendered",
			zap.String("file", makeOut),
			zap.Int("width", matrix.Width()),
			zap.Int("height", matrix.Height()))
		return nil
	},
}

func scanFile(reader *ean13.Reader, path string) (*ean13.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bitmap := binarize.NewBitmap(binarize.NewSource(img))
	opts := &ean13.ScanOptions{TryHarder: scanTryHarder}
	return reader.Decode(bitmap, opts)
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	scanCmd.Flags().BoolVar(&scanTryHarder, "try-harder", false, "scan every row instead of a spread around the middle")
	makeCmd.Flags().StringVarP(&makeOut, "out", "o", "barcode.png", "output PNG path")
	makeCmd.Flags().IntVar(&makeWidth, "width", 0, "minimum output width in pixels")
	makeCmd.Flags().IntVar(&makeHeight, "height", 60, "output height in pixels")
	rootCmd.AddCommand(scanCmd, makeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
