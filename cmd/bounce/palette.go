package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lelandbatey/bouncing-block/palette"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the colors a palette draws with",
	Long: `Print every entry of a palette as a swatch followed by its name.

Swatches use raw escape sequences; pipe through cat -v to see the tags
the board stores.`,
	Args: cobra.NoArgs,
	RunE: runPalette,
}

func init() {
	paletteCmd.Flags().String("palette", palette.NameXterm, "Palette: xterm, hcl")
	paletteCmd.Flags().String("glyph", "", "Glyph to draw instead of a block")
	paletteCmd.Flags().Int("size", palette.DefaultHCLSize, "Number of hues for the hcl palette")
	rootCmd.AddCommand(paletteCmd)
}

func runPalette(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("palette")
	glyph, _ := cmd.Flags().GetString("glyph")
	size, _ := cmd.Flags().GetInt("size")

	glyph, err := palette.ParseGlyph(glyph)
	if err != nil {
		return err
	}

	var p *palette.Palette
	if name == palette.NameHCL {
		p = palette.HCL(size, glyph)
	} else if p, err = palette.ByName(name, glyph); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, e := range p.Entries() {
		idx := "rgb"
		if e.Index >= 0 {
			idx = fmt.Sprintf("%3d", e.Index)
		}
		fmt.Fprintf(out, "%2d %s%s%s %s %s\n", i, e.Cell, e.Cell, e.Cell, idx, e.Name)
	}
	return nil
}
