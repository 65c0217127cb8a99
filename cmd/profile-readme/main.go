package main

import (
	"os"

	"profile-readme/internal/display"
)

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		display.DisplayError(err.Error())
		os.Exit(1)
	}
}
