package main

import (
	"os"

	"github.com/inkpress/typeset/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
