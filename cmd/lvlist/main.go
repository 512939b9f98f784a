// Command lvlist drives the linked list engine from the terminal: it replays
// YAML scripts, runs the built-in demonstrations, answers the console
// protocol on stdin and prints generated fixtures.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
