//go:build !(js && wasm)

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "picross targets the browser; build with GOOS=js GOARCH=wasm")
	fmt.Fprintln(os.Stderr, "for a terminal front end, use cmd/picross-tui")
	os.Exit(1)
}
