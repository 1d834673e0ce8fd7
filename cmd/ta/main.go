package main

import (
	"os"

	"github.com/nurullahMencik/taskapp-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
