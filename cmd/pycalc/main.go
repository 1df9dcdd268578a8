package main

import (
	"os"

	"github.com/AdithyaSuresh01/project-name-pycalc/cmd/pycalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
