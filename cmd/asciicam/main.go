package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wbrown/vid2ascii"
	"github.com/wbrown/vid2ascii/capture"
	"github.com/wbrown/vid2ascii/supplier"
)

const (
	ESC         = ""
	clearScreen = ESC + "[2J"
	cursorHome  = ESC + "[H"
)

var (
	deviceID   int
	inputFile  string
	paletteKey string
	sizeKey    string
	charAspect float64
	maxFPS     int
)

var rootCmd = &cobra.Command{
	Use:   "asciicam",
	Short: "Render a webcam or video file as live ASCII art in the terminal",
	Long: "asciicam reads frames from a capture source, hands them through " +
		"a latest-frame-only supplier, and repaints the terminal with the " +
		"converted glyph grid. When conversion falls behind the capture " +
		"rate, stale frames are dropped rather than queued.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		var (
			src *capture.Source
			err error
		)
		if inputFile != "" {
			src, err = capture.OpenFile(inputFile)
		} else {
			src, err = capture.OpenDevice(deviceID)
		}
		if err != nil {
			return err
		}
		defer src.Close()

		srcWidth, srcHeight := src.Size()
		conv := vid2ascii.NewConverter(
			vid2ascii.WithPalette(paletteKey),
			vid2ascii.WithSizeClass(sizeKey),
			vid2ascii.WithCharAspect(charAspect),
		)
		gridWidth, gridHeight := conv.PlanFor(srcWidth, srcHeight)
		fmt.Fprintf(os.Stderr, "source %dx%d -> grid %dx%d, palette %s\n",
			srcWidth, srcHeight, gridWidth, gridHeight, conv.Palette().Name)

		sup := supplier.New()
		go func() {
			defer sup.Close()
			for ctx.Err() == nil {
				frame, ok := src.Read()
				if !ok {
					return
				}
				sup.Publish(frame)
			}
		}()

		var interval time.Duration
		if maxFPS > 0 {
			interval = time.Second / time.Duration(maxFPS)
		}

		rendered := 0
		fmt.Print(clearScreen)
		for {
			frame, ok := sup.Next(ctx)
			if !ok {
				break
			}
			grid := conv.Convert(frame)
			if grid.Empty() {
				continue
			}
			fmt.Print(cursorHome + grid.String())
			rendered++
			if interval > 0 {
				time.Sleep(interval)
			}
		}

		stats := sup.Stats()
		fmt.Fprintf(os.Stderr,
			"\nframes: %d captured, %d dropped, %d rendered\n",
			stats.Published, stats.Dropped, rendered)
		return nil
	},
}

func init() {
	rootCmd.Flags().IntVarP(&deviceID, "device", "d", 0,
		"Webcam device ID")
	rootCmd.Flags().StringVarP(&inputFile, "input", "i", "",
		"Video file or stream URL (overrides --device)")
	rootCmd.Flags().StringVarP(&paletteKey, "palette", "p",
		vid2ascii.DefaultPaletteKey,
		"Glyph palette: "+strings.Join(vid2ascii.PaletteKeys(), ", "))
	rootCmd.Flags().StringVarP(&sizeKey, "size", "s", "low",
		"Size class: "+strings.Join(vid2ascii.SizeClassKeys(), ", "))
	rootCmd.Flags().Float64Var(&charAspect, "charaspect",
		vid2ascii.DefaultCharAspect,
		"Character cell height:width ratio for native sizing")
	rootCmd.Flags().IntVar(&maxFPS, "fps", 30,
		"Cap on render rate, 0 for unlimited")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
