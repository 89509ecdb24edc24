package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port pair usable as a flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server flags from args.
//
// Flags:
//
//	-a              http listen address host:port
//	-grpc-address   grpc health listen address host:port
//	-backend        envelope backend: postgres | mongo | sqlite
//	-d              SQL DSN
//	-mongo-uri      MongoDB URI
//	-c / -config    JSON config file path
//	-token-sign-key token signing key
//	-token-issuer   token issuer name
//	-token-duration token lifetime (e.g. "24h")
//	-request-timeout request timeout (e.g. "30s")
//	-log-level      zerolog level
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	var httpAddress, grpcAddress NetAddress
	var backend, dsn, mongoURI, jsonConfigPath string
	var tokenSignKey, tokenIssuer, logLevel string
	var tokenDuration, requestTimeout time.Duration

	fs.Var(&httpAddress, "a", "Net address host:port")
	fs.Var(&grpcAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&backend, "backend", "", "Envelope backend (postgres, mongo, sqlite)")
	fs.StringVar(&dsn, "d", "", "Database DSN")
	fs.StringVar(&mongoURI, "mongo-uri", "", "MongoDB URI")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LogLevel:      logLevel,
		},
		Storage: Storage{
			EnvelopeBackend: backend,
			DB:              DB{DSN: dsn},
			Mongo:           Mongo{URI: mongoURI},
		},
		Server: Server{
			HTTPAddress:    httpAddress.String(),
			GRPCAddress:    grpcAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. Host must be "localhost", empty or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && !strings.EqualFold(host, "localhost") && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
