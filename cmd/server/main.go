package main

import (
	"log"
	"os"

	"github.com/SanjoDeundiak/child-process/pkg/lib/childprocess"
	"github.com/SanjoDeundiak/child-process/pkg/lib/config"
	"github.com/SanjoDeundiak/child-process/pkg/lib/runner"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if cfg.Verbose {
		verbose := log.New(os.Stderr, "", log.LstdFlags)
		logger = verbose
		runner.SetLogger(verbose)
		childprocess.SetLogger(verbose)
	}

	srv, err := NewGRPCServer(cfg)
	if err != nil {
		log.Fatalf("failed to initialize server: %v", err)
	}
	log.Printf("server (TLS) listening at %v", srv.Addr())
	if err := srv.Serve(); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
