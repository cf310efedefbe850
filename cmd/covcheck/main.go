package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/kevinpostal/katamari-devtools/cmd/covcheck/app"
	"github.com/kevinpostal/katamari-devtools/internal/analysis"
)

func main() {
	if err := app.NewCovcheckCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)

		var below *analysis.BelowThresholdError
		if errors.As(err, &below) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
