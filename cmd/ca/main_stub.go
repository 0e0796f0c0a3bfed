//go:build !ebiten

package main

import (
	"errors"
	"fmt"
	"os"

	"caengine/internal/app"
	"caengine/internal/core"
)

func main() {
	_, err := app.New(nil, core.Options{}, 0, nil)
	if errors.Is(err, app.ErrNoGUI) {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/ca` or use `ca-run tui` for a terminal view.")
		os.Exit(2)
	}
}
