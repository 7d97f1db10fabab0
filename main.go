// main holds the entry logic for the fipulse CLI.
package main

import (
	"github.com/findexlab/fipulse/cmd"
	"github.com/findexlab/fipulse/internal/contract"
	"github.com/findexlab/fipulse/internal/runstore"
)

func main() {
	cmd.SetRunManager(runstore.Manager)

	err := cmd.Execute()
	runstore.CloseStores()
	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
