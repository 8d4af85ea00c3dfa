// haiku finds 5-7-5 poems hiding in ordinary text.
package main

import (
	"os"

	"github.com/corey/haikus/cmd/haiku/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
