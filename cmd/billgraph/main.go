package main

import (
	"os"

	"github.com/konnector-tools/billgraph/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
