package main

import (
	"github.com/SanjoDeundiak/child-process/pkg/lib/config"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/status"
)

// app carries the root flags to the subcommands that talk to the server.
type app struct {
	envFile string
}

// dial reads the configuration on demand so that "run" works without TLS material.
func (a *app) dial() (*grpc.ClientConn, error) {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return nil, err
	}

	tlsConfig, err := cfg.ClientTLS()
	if err != nil {
		return nil, err
	}

	return grpc.NewClient(cfg.Address, grpc.WithTransportCredentials(credentials.NewTLS(tlsConfig)))
}

func grpcCode(err error) codes.Code {
	st, ok := status.FromError(err)
	if !ok {
		return codes.Unknown
	}
	return st.Code()
}
