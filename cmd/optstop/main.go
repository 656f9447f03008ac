package main

import (
	"flag"
	"log"
	"os"

	"github.com/katalvlaran/optstop/internal/cli"
)

func main() {
	cfg, err := cli.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}

	if err := cli.Run(cfg, os.Stdout); err != nil {
		log.Fatalf("failed to solve: %v", err)
	}
}
