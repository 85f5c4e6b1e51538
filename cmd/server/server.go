package main

import (
	"io"
	"log"
	"sync"

	"github.com/SanjoDeundiak/child-process/pkg/lib/runner"
)

var logger = log.New(io.Discard, "server: ", log.LstdFlags)

// ProcessRunnerServiceServer implements apiv1.ProcessRunnerServiceServer on top of a runner.
// ownersMap maps process identifiers to the SPIFFE ID of the client that started them.
type ProcessRunnerServiceServer struct {
	runner    *runner.Runner
	mu        sync.RWMutex
	ownersMap map[string]string
}

func NewProcessRunnerServiceServer() (*ProcessRunnerServiceServer, error) {
	r, err := runner.NewRunner()
	if err != nil {
		return nil, err
	}

	return newProcessRunnerServiceServer(r), nil
}

func newProcessRunnerServiceServer(r *runner.Runner) *ProcessRunnerServiceServer {
	return &ProcessRunnerServiceServer{
		runner:    r,
		ownersMap: make(map[string]string),
	}
}
