package main

import (
	"fmt"
	"os"

	"github.com/warp/invoice-engine/cmd/invoicegen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
