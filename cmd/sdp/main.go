// Package main is the entry point for the sdp CLI and server.
package main

import (
	"os"

	"github.com/donaldgifford/social-data-provider/cmd/sdp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
