package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"altofs/alto"
	"altofs/storage"
)

var (
	geometryCylinders uint16
	geometryHeads     uint16
	geometrySectors   uint16
)

var rootCmd = &cobra.Command{
	Use:   "altofs",
	Short: "Read and inspect Xerox Alto disk images",
	Long: `altofs reads raw Xerox Alto disk pack images: the chained-sector
filesystem, its directory structure, and per-file leader metadata.`,
}

// Execute runs the root command, exiting with status 1 if it reports
// an error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Uint16Var(&geometryCylinders, "cylinders", 203, "disk geometry: number of cylinders")
	rootCmd.PersistentFlags().Uint16Var(&geometryHeads, "heads", 2, "disk geometry: number of heads")
	rootCmd.PersistentFlags().Uint16Var(&geometrySectors, "sectors", 12, "disk geometry: number of sectors per track")
}

// geometry builds the alto.Geometry described by the persistent
// --cylinders/--heads/--sectors flags.
func geometry() alto.Geometry {
	return alto.Geometry{
		NumCylinders: geometryCylinders,
		NumHeads:     geometryHeads,
		NumSectors:   geometrySectors,
	}
}

// openImage creates a Filesystem sized by geometry() and loads filename
// into it.
func openImage(filename string) (*alto.Filesystem, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fs, err := alto.Create(geometry(), alto.NewStderrReporter())
	if err != nil {
		return nil, err
	}

	reader := storage.NewReader(f)
	if err := fs.LoadImage(reader); err != nil {
		return nil, err
	}
	return fs, nil
}
