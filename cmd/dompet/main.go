package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/dvloznov/dompet/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
