package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		// A canceled context means the user interrupted the run; the
		// stage logs already said so.
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "marquee: %v\n", err)
		}
		os.Exit(1)
	}
}
