package main

import (
	"os"

	"github.com/EgorLis/euphbot/cmd/euphbot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
