package main

import (
	"fmt"
	"os"

	"github.com/jaffee/commandeer"
)

func main() {
	m := NewMissingHost()
	if err := commandeer.Run(m); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
