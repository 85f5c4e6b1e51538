package main

import (
	"fmt"
	"net"

	apiv1 "github.com/SanjoDeundiak/child-process/api/v1"
	"github.com/SanjoDeundiak/child-process/pkg/lib/config"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
)

// GRPCServer encapsulates TLS/mTLS configuration, gRPC server instance and listener.
type GRPCServer struct {
	lis net.Listener
	s   *grpc.Server
}

// NewGRPCServer constructs a TLS-enabled gRPC server that requires client certs (mTLS),
// registers the ProcessRunnerServiceServer, and prepares it to serve on cfg.Address.
func NewGRPCServer(cfg *config.Config) (*GRPCServer, error) {
	tlsConfig, err := cfg.ServerTLS()
	if err != nil {
		return nil, err
	}

	server, err := NewProcessRunnerServiceServer()
	if err != nil {
		return nil, fmt.Errorf("failed to create service server: %w", err)
	}

	lis, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to listen: %w", err)
	}

	creds := credentials.NewTLS(tlsConfig)
	s := grpc.NewServer(grpc.Creds(creds), grpc.UnaryInterceptor(injectSpiffeIdUnary))
	apiv1.RegisterProcessRunnerServiceServer(s, server)

	return &GRPCServer{lis: lis, s: s}, nil
}

// Serve starts serving gRPC on the configured listener.
func (g *GRPCServer) Serve() error {
	return g.s.Serve(g.lis)
}

// Addr returns the network address the server is bound to.
func (g *GRPCServer) Addr() net.Addr { return g.lis.Addr() }

// Stop gracefully stops the gRPC server.
func (g *GRPCServer) Stop() { g.s.GracefulStop() }
