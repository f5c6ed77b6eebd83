package main

import (
	"os"

	"github.com/verdetech/verdetech/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
