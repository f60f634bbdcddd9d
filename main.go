// main is the entry point for the repulse CLI.
package main

import (
	"github.com/huangsam/repulse/cmd"
	"github.com/huangsam/repulse/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Error", err)
	}
}
