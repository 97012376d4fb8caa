package main

import (
	"os"

	"github.com/sidverma/skillgap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
