package main

import (
	"os"

	"github.com/docproof/docproof/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
