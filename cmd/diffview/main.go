package main

import (
	"os"

	"github.com/vibedispatch/diffview/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
