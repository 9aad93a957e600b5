package main

import (
	"errors"
	"os"

	"github.com/sofmeright/detekt-op/src/cli/cmd"
	"github.com/sofmeright/detekt-op/src/detekt"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Pass detekt's own status through so CI can tell findings from failures.
		var exitErr *detekt.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
