package main

import (
	"os"

	"github.com/rentcheck/rentcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
