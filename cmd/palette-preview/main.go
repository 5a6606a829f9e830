// Sandbox tool: renders a config's palette as a truecolor ramp so
// interpolation and intensity scaling can be eyeballed before a run
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/beatglow/config"
	"github.com/lixenwraith/beatglow/palette"
)

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	width := flag.Int("width", 64, "ramp width in cells")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	pal, err := cfg.BuildPalette()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build palette: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%d colours:\n", len(pal))
	for i, c := range pal {
		fmt.Printf("  %2d %s #%02x%02x%02x\n", i, swatch(c), c.R, c.G, c.B)
	}

	fmt.Println("\ninterpolated ramp:")
	printRamp(pal, *width, 1.0)

	// The engine scales spawn colours by intensity; show the onset level
	fmt.Println("\nat onset intensity (0.7):")
	printRamp(pal, *width, 0.7)
}

func printRamp(pal palette.Palette, width int, intensity float64) {
	span := float64(len(pal) - 1)
	for i := 0; i < width; i++ {
		pos := span * float64(i) / float64(width-1)
		c := pal.ColourAt(pos).Scaled(intensity).Clamped()
		fmt.Print(swatch(c))
	}
	fmt.Println()
}

// swatch prints one background-coloured cell
func swatch(c palette.Colour) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm \x1b[0m", c.R, c.G, c.B)
}
