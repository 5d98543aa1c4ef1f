package main

import (
	"os"

	"github.com/gridfit/gridfit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
