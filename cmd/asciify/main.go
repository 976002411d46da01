package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wbrown/vid2ascii"
	"github.com/wbrown/vid2ascii/export"
	"github.com/wbrown/vid2ascii/imageutil"
)

var (
	inputFile  string
	outputFile string
	paletteKey string
	sizeKey    string
	charAspect float64
	fontPath   string
)

var rootCmd = &cobra.Command{
	Use:   "asciify",
	Short: "Convert an image file to ASCII art",
	Long: "asciify runs a single image through the frame-to-glyph pipeline " +
		"and writes the result as text or, for .png outputs, as a rendered " +
		"image.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := imageutil.LoadImage(inputFile)
		if err != nil {
			return err
		}

		conv := vid2ascii.NewConverter(
			vid2ascii.WithPalette(paletteKey),
			vid2ascii.WithSizeClass(sizeKey),
			vid2ascii.WithCharAspect(charAspect),
		)
		grid := conv.Convert(vid2ascii.FrameBufferFromImage(img.RGBA))
		if grid.Empty() {
			return fmt.Errorf("conversion produced an empty grid for %s",
				inputFile)
		}

		switch {
		case outputFile == "":
			fmt.Print(grid)
		case strings.HasSuffix(strings.ToLower(outputFile), ".png"):
			opts := export.Options{FontPath: fontPath}
			if err := export.SavePNG(grid, outputFile, opts); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "PNG output written to %s\n", outputFile)
		default:
			err := os.WriteFile(outputFile, []byte(grid.String()), 0644)
			if err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Output written to %s\n", outputFile)
		}

		fmt.Fprintf(os.Stderr, "Grid: %dx%d, palette %s, size class %s\n",
			grid.Width, grid.Height,
			conv.Palette().Name, conv.SizeClass().Name)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&inputFile, "input", "i", "",
		"Path to the input image file (required)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "",
		"Output path: .png renders an image, anything else writes text, "+
			"empty prints to stdout")
	rootCmd.Flags().StringVarP(&paletteKey, "palette", "p",
		vid2ascii.DefaultPaletteKey,
		"Glyph palette: "+strings.Join(vid2ascii.PaletteKeys(), ", "))
	rootCmd.Flags().StringVarP(&sizeKey, "size", "s",
		vid2ascii.DefaultSizeClassKey,
		"Size class: "+strings.Join(vid2ascii.SizeClassKeys(), ", "))
	rootCmd.Flags().Float64Var(&charAspect, "charaspect",
		vid2ascii.DefaultCharAspect,
		"Character cell height:width ratio for native sizing")
	rootCmd.Flags().StringVar(&fontPath, "font", "",
		"TTF font for PNG rendering (default: embedded 7x13 face)")
	_ = rootCmd.MarkFlagRequired("input")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
