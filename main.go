package main

import (
	"os"

	"github.com/sidmehta/remap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
