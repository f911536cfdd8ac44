package main

import (
	"os"

	"panelforecast/cmd/panelforecast/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
