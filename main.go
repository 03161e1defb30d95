package main

import (
	"os"

	"github.com/srcarch/springscan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
