package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/layerpad/layerpad/internal/engine"
)

const (
	outputLayers   = "layers"
	outputCommands = "commands"
	outputState    = "state"
)

var (
	replayWidth  float64
	replayHeight float64
	replayOutput string
)

var replayCmd = &cobra.Command{
	Use:   "replay <events.json>",
	Short: "Replay pointer events and print the result",
	Long: `Replay reads a JSON array of pointer events such as
  [{"kind":"mousedown","point":{"x":10,"y":10}}, ...]
feeds them through a fresh editor and prints the outcome.
Use "-" to read the events from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().Float64Var(&replayWidth, "width", 800, "surface width")
	replayCmd.Flags().Float64Var(&replayHeight, "height", 400, "surface height")
	replayCmd.Flags().StringVarP(&replayOutput, "output", "o", outputLayers, "what to print: layers, commands or state")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	data, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	out, err := replay(data, replayWidth, replayHeight, replayOutput)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}
	return data, nil
}

func replay(data []byte, width, height float64, output string) (string, error) {
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("surface size must be positive, got %gx%g", width, height)
	}

	events, err := engine.ParseEvents(data)
	if err != nil {
		return "", err
	}

	eng := engine.NewEngine(width, height)
	eng.Replay(events)

	switch output {
	case outputLayers:
		return eng.GetLayers(), nil
	case outputCommands:
		return eng.Render(), nil
	case outputState:
		return eng.GetState(), nil
	default:
		return "", fmt.Errorf("unknown output %q: want layers, commands or state", output)
	}
}
