package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/h1romas4/sazan-imgkit/internal/loader"
	"github.com/h1romas4/sazan-imgkit/pkg/sazan"
)

var cropSplitCmd = &cobra.Command{
	Use:   "crop-split [images...]",
	Short: "Cut images into fixed-size tiles packaged as a ZIP archive",
	Long: `Cut a COLSxROWS grid of fixed-size tiles out of every input image,
starting at the given offset, and package all tiles into a single ZIP
archive. Each tile is stored as PNG under the name
PREFIX_II_RR_CC.png (image, row and column index, zero padded).

Input files are processed in lexicographic order regardless of the
order they were given on the command line.

Examples:
  sazan crop-split map.png --tile 50x50 --offset 0,0 --grid 2x2 --prefix t -o tiles.zip`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCropSplit,
}

func init() {
	rootCmd.AddCommand(cropSplitCmd)

	cropSplitCmd.Flags().StringP("output", "o", "tiles.zip", "output archive file")
	cropSplitCmd.Flags().StringP("tile", "t", "", "tile size as WIDTHxHEIGHT (required)")
	cropSplitCmd.Flags().StringP("offset", "s", "0,0", "tiling offset as X,Y")
	cropSplitCmd.Flags().StringP("grid", "g", "", "grid size as COLSxROWS (required)")
	cropSplitCmd.Flags().StringP("prefix", "p", "tile", "tile filename prefix")
	cropSplitCmd.MarkFlagRequired("tile")
	cropSplitCmd.MarkFlagRequired("grid")

	viper.BindPFlag("crop-split.output", cropSplitCmd.Flags().Lookup("output"))
	viper.BindPFlag("crop-split.prefix", cropSplitCmd.Flags().Lookup("prefix"))
}

func runCropSplit(cmd *cobra.Command, args []string) error {
	tileStr, _ := cmd.Flags().GetString("tile")
	tileW, tileH, err := parseSizeParam(tileStr)
	if err != nil {
		return err
	}

	offsetStr, _ := cmd.Flags().GetString("offset")
	offsetX, offsetY, err := parseOffsetParam(offsetStr)
	if err != nil {
		return err
	}

	gridStr, _ := cmd.Flags().GetString("grid")
	grid, err := parseGridParam(gridStr)
	if err != nil {
		return err
	}

	prefix := viper.GetString("crop-split.prefix")
	output := viper.GetString("crop-split.output")

	images, err := loader.LoadAll(args)
	if err != nil {
		return err
	}

	archive, err := sazan.TileToArchive(images, tileW, tileH, offsetX, offsetY, grid, prefix)
	if err != nil {
		return err
	}

	if err := loader.WriteFile(archive, output); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %d tiles to %s\n", len(images)*grid.Cells(), output)
	return nil
}
