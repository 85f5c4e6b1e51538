package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	root := NewRootCmd()

	if err := root.Execute(); err != nil {
		var exitErr *exitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.status.Code()))
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
