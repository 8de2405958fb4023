package main

import (
	"os"

	"github.com/isabella232/flocker/cmd/flocker-provision/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
