package cmd

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/h1romas4/sazan-imgkit/pkg/sazan"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "sazan",
	Version: "1.0.0",
	Short:   "Crop raster images and compose them into montages or tile archives",
	Long: `sazan loads raster images, crops each one to a fixed rectangle and
either composes the crops into a single montage image or cuts them
into a grid of fixed-size tiles packaged as a ZIP archive.

Examples:
  # Crop four screenshots and arrange them in a 2x2 montage
  sazan crop-grid shots/*.png --crop 1265x1265+1422+366 --grid 2x2 -o result.png

  # Cut one image into 50x50 tiles and package them
  sazan crop-split map.png --tile 50x50 --offset 0,0 --grid 4x4 --prefix t -o tiles.zip

  # Start the HTTP bridge
  sazan serve --port 8080`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sazan.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".sazan" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".sazan")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

var (
	cropParamRe = regexp.MustCompile(`^(\d+)x(\d+)\+(\d+)\+(\d+)$`)
	gridParamRe = regexp.MustCompile(`^(\d+)x(\d+)$`)
)

// parseCropParam parses "WIDTHxHEIGHT+X+Y" (e.g. "1265x1265+1422+366")
// into a crop rectangle.
func parseCropParam(s string) (sazan.Rect, error) {
	m := cropParamRe.FindStringSubmatch(s)
	if m == nil {
		return sazan.Rect{}, fmt.Errorf("invalid crop format %q, expected WIDTHxHEIGHT+X+Y", s)
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	x, _ := strconv.Atoi(m[3])
	y, _ := strconv.Atoi(m[4])
	return sazan.Rect{Width: w, Height: h, X: x, Y: y}, nil
}

// parseGridParam parses "COLSxROWS" (e.g. "3x3") into a grid spec.
func parseGridParam(s string) (sazan.Grid, error) {
	m := gridParamRe.FindStringSubmatch(s)
	if m == nil {
		return sazan.Grid{}, fmt.Errorf("invalid grid format %q, expected COLSxROWS", s)
	}
	cols, _ := strconv.Atoi(m[1])
	rows, _ := strconv.Atoi(m[2])
	if cols == 0 || rows == 0 {
		return sazan.Grid{}, fmt.Errorf("grid cols and rows must be positive, got %q", s)
	}
	return sazan.Grid{Cols: cols, Rows: rows}, nil
}

// parseSizeParam parses "WIDTHxHEIGHT" (e.g. "50x50") into a tile size.
func parseSizeParam(s string) (int, int, error) {
	m := gridParamRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, fmt.Errorf("invalid size format %q, expected WIDTHxHEIGHT", s)
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	if w == 0 || h == 0 {
		return 0, 0, fmt.Errorf("tile width and height must be positive, got %q", s)
	}
	return w, h, nil
}

// parseOffsetParam parses "X,Y" (e.g. "10,20") into a tile offset.
func parseOffsetParam(s string) (int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid offset format %q, expected X,Y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || x < 0 {
		return 0, 0, fmt.Errorf("invalid offset x in %q", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || y < 0 {
		return 0, 0, fmt.Errorf("invalid offset y in %q", s)
	}
	return x, y, nil
}
