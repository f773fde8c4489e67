package main

import (
	"fmt"
	"os"

	_ "github.com/kilianp07/genrel/app/plugins"
	"github.com/kilianp07/genrel/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "genrel:", err)
		os.Exit(1)
	}
}
