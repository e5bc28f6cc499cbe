package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chainsafe/kyc-middleware/pkg/app"
	"github.com/chainsafe/kyc-middleware/pkg/app/api"
	"github.com/chainsafe/kyc-middleware/pkg/config"
)

var (
	configPath = flag.String("config", "config.yaml", "Path to configuration file")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	var server app.Runner = api.NewServer(cfg)
	if err := server.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "API server failed: %v\n", err)
		os.Exit(1)
	}
}
