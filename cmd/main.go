package main

import (
	"os"

	"github.com/adanyl0v/aggo-mock-api/internal/cli"
)

func main() {
	err := cli.Execute()
	if err != nil {
		os.Exit(1)
	}
}
