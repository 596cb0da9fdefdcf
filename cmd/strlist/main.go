package main

import (
	"os"

	"github.com/msto63/strlist/cmd/strlist/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
