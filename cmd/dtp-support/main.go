package main

import (
	"os"

	"github.com/toma4423/dtpsupport/cmd/dtp-support/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
