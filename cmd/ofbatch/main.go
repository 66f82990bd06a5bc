// Where: cmd/ofbatch/main.go
// What: CLI entrypoint.
// Why: Run the batch tracker with production dependencies.
package main

import (
	"os"

	"github.com/optofluidics/ofbatch/internal/command"
	"github.com/optofluidics/ofbatch/internal/wire"
)

func main() {
	os.Exit(command.Run(os.Args[1:], wire.BuildDependencies()))
}
