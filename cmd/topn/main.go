// Package main is the entry point for the topn CLI, a console harness for
// the top-N measurement conversion pipeline.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/unitflow/pipeline"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, pipeline.ErrInvalidArgument) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "topn:", err)
		os.Exit(1)
	}
}
