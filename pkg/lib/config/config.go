// Package config reads the PRN_* settings shared by the server and the CLI.
package config

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const DefaultAddress = "localhost:50051"

var ErrMissingTLS = errors.New("missing TLS environment variables; require PRN_TLS_KEY, PRN_TLS_CERT, PRN_CA_TLS_CERT")

// Config is read from PRN_* environment variables.
type Config struct {
	Address string
	KeyPEM  string
	CertPEM string
	CAPEM   string
	Verbose bool
}

// Load reads envFile first, if it is set and exists. Variables already set in
// the environment take precedence over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		Address: strings.TrimSpace(os.Getenv("PRN_ADDRESS")),
		KeyPEM:  os.Getenv("PRN_TLS_KEY"),
		CertPEM: os.Getenv("PRN_TLS_CERT"),
		CAPEM:   os.Getenv("PRN_CA_TLS_CERT"),
		Verbose: os.Getenv("PRN_VERBOSE") == "1",
	}
	if cfg.Address == "" {
		cfg.Address = DefaultAddress
	}
	if strings.TrimSpace(cfg.KeyPEM) == "" || strings.TrimSpace(cfg.CertPEM) == "" || strings.TrimSpace(cfg.CAPEM) == "" {
		return nil, ErrMissingTLS
	}

	return cfg, nil
}

func (cfg *Config) keyPairAndPool() (tls.Certificate, *x509.CertPool, error) {
	cert, err := tls.X509KeyPair([]byte(cfg.CertPEM), []byte(cfg.KeyPEM))
	if err != nil {
		return tls.Certificate{}, nil, fmt.Errorf("failed to parse TLS cert/key: %w", err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM([]byte(cfg.CAPEM)) {
		return tls.Certificate{}, nil, fmt.Errorf("failed to parse CA certificate")
	}
	return cert, pool, nil
}

// ServerTLS requires and verifies client certificates (mTLS).
func (cfg *Config) ServerTLS() (*tls.Config, error) {
	cert, pool, err := cfg.keyPairAndPool()
	if err != nil {
		return nil, err
	}
	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      pool,
		ClientCAs:    pool,
		ClientAuth:   tls.RequireAndVerifyClientCert,
		MinVersion:   tls.VersionTLS13,
	}, nil
}

func (cfg *Config) ClientTLS() (*tls.Config, error) {
	cert, pool, err := cfg.keyPairAndPool()
	if err != nil {
		return nil, err
	}
	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      pool,
		MinVersion:   tls.VersionTLS13,
	}, nil
}
