// Command programguide queries the NHK program guide and serves it over a
// local HTTP gateway.
package main

import (
	"os"

	"github.com/listenupapp/programguide/cmd/programguide/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
