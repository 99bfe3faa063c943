package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vmunix/moviems/internal/config"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "Path to config file (default: discover, else built-in defaults)")
	writeConfig := flag.String("write-config", "", "Write an example config to this path and exit")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("moviemsd %s\n", version)
		os.Exit(0)
	}

	if *writeConfig != "" {
		if err := config.WriteDefault(*writeConfig); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", *writeConfig)
		os.Exit(0)
	}

	if err := runServer(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
