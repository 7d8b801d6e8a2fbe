// Command screwmesh generates watertight threaded-rod meshes and writes
// them as binary STL.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:     "screwmesh",
	Short:   "Procedural threaded-rod mesh generator",
	Long:    `screwmesh builds closed triangulated meshes of helically threaded rods from a handful of geometric parameters and writes them as binary STL files.`,
	Version: "1.0.0",
}

var logger *zap.Logger

func main() {
	var err error
	logger, err = zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
