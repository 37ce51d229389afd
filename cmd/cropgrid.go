package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/h1romas4/sazan-imgkit/internal/loader"
	"github.com/h1romas4/sazan-imgkit/pkg/sazan"
)

var cropGridCmd = &cobra.Command{
	Use:   "crop-grid [images...]",
	Short: "Crop images and montage them into a grid",
	Long: `Crop every input image to the same rectangle and compose the crops
into a single image arranged in a COLSxROWS grid, left to right then
top to bottom. Unfilled cells are padded with transparent pixels.

Input files are processed in lexicographic order regardless of the
order they were given on the command line.

Examples:
  sazan crop-grid images/*.png --crop 1265x1265+1422+366 --grid 3x3 -o result.png`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCropGrid,
}

func init() {
	rootCmd.AddCommand(cropGridCmd)

	cropGridCmd.Flags().StringP("output", "o", "result.png", "output image file")
	cropGridCmd.Flags().StringP("crop", "c", "", "crop rectangle as WIDTHxHEIGHT+X+Y (required)")
	cropGridCmd.Flags().StringP("grid", "g", "", "grid size as COLSxROWS (required)")
	cropGridCmd.MarkFlagRequired("crop")
	cropGridCmd.MarkFlagRequired("grid")

	viper.BindPFlag("crop-grid.output", cropGridCmd.Flags().Lookup("output"))
}

func runCropGrid(cmd *cobra.Command, args []string) error {
	cropStr, _ := cmd.Flags().GetString("crop")
	crop, err := parseCropParam(cropStr)
	if err != nil {
		return err
	}

	gridStr, _ := cmd.Flags().GetString("grid")
	grid, err := parseGridParam(gridStr)
	if err != nil {
		return err
	}

	output := viper.GetString("crop-grid.output")

	images, err := loader.LoadAll(args)
	if err != nil {
		return err
	}

	result, err := sazan.ComposeGrid(images, crop, grid)
	if err != nil {
		return err
	}

	if err := loader.SaveImage(result, output); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved output image to %s\n", output)
	return nil
}
