package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "layerpad",
	Short: "Headless tools for the layerpad rectangle editor",
	Long: `layerpad drives the rectangle layer editor without a browser.
It replays recorded pointer events and prints the resulting layers,
draw commands or interaction state as JSON.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
