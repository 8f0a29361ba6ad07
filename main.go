package main

import (
	"log"

	"github.com/ichi-raven/slang-fetch/cmd/install"
)

func main() {
	cmd := install.Cmd()
	err := cmd.Execute()
	if err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}
