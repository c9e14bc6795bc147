package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/tagflow/cmd/tagflow/commands"
)

const version = "0.1.0"

func main() {
	if err := commands.Root(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
