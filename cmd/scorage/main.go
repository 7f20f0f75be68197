package main

import (
	"fmt"
	"os"
)

func main() {
	a := &app{}
	cmd := newRootCmd(a)

	err := cmd.Execute()
	if closeErr := a.close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, newPalette(a.colorEnabled()).err.Sprint("Error: ", err)) //nolint:errcheck
		os.Exit(1)
	}
}
