package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server flags from args (without the program name).
//
// Flags:
//
//	-graphql-host          GraphQL server host
//	-graphql-port          GraphQL server port
//	-healthcheck-port      healthcheck server port
//	-grpc-address          gRPC health server address in format [host]:[port]
//	-postgres-endpoint     postgres connection URL
//	-dapp-deployment-file  dapp deployment JSON file path
//	-log-level             log level (trace, debug, info, warn, error)
//	-log-pretty            human-readable console logs
//	-shutdown-timeout      graceful shutdown timeout (e.g., "10s")
//	-c/-config             json file path with configs
//
// The second result names the flags given explicitly in args, in the order
// the flag package visits them.
func parseFlags(args []string) (*GraphQLConfig, []string, error) {
	var grpcAddress NetAddress
	var graphqlHost string
	var graphqlPort, healthcheckPort int
	var postgresEndpoint string
	var dappDeploymentFile string
	var logLevel string
	var logPretty bool
	var shutdownTimeout time.Duration
	var jsonConfigPath string

	fs := flag.NewFlagSet("graphql-server", flag.ContinueOnError)
	fs.StringVar(&graphqlHost, "graphql-host", "", "GraphQL server host")
	fs.IntVar(&graphqlPort, "graphql-port", 0, "GraphQL server port")
	fs.IntVar(&healthcheckPort, "healthcheck-port", 0, "Healthcheck server port")
	fs.Var(&grpcAddress, "grpc-address", "Net grpc health server address host:port")
	fs.StringVar(&postgresEndpoint, "postgres-endpoint", "", "Postgres connection URL")
	fs.StringVar(&dappDeploymentFile, "dapp-deployment-file", "", "Dapp deployment JSON file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	fs.BoolVar(&logPretty, "log-pretty", false, "Human-readable console logs")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	var set []string
	fs.Visit(func(f *flag.Flag) {
		set = append(set, f.Name)
	})

	return &GraphQLConfig{
		Log: Log{
			Level:  logLevel,
			Pretty: logPretty,
		},
		GraphQL: GraphQL{
			Host: graphqlHost,
			Port: graphqlPort,
		},
		Healthcheck: Healthcheck{
			Port: healthcheckPort,
		},
		GRPC: GRPC{
			Address: grpcAddress.String(),
		},
		Postgres: Postgres{
			Endpoint: postgresEndpoint,
		},
		DappDeploymentFile: dappDeploymentFile,
		ShutdownTimeout:    shutdownTimeout,
		JSONFilePath:       jsonConfigPath,
	}, set, nil
}

// flagFields copies the field behind each flag from src to dst. Applying it
// after the merge lets an explicit zero value such as -log-pretty=false or
// -graphql-host= override env, JSON and defaults.
var flagFields = map[string]func(dst, src *GraphQLConfig){
	"graphql-host":         func(dst, src *GraphQLConfig) { dst.GraphQL.Host = src.GraphQL.Host },
	"graphql-port":         func(dst, src *GraphQLConfig) { dst.GraphQL.Port = src.GraphQL.Port },
	"healthcheck-port":     func(dst, src *GraphQLConfig) { dst.Healthcheck.Port = src.Healthcheck.Port },
	"grpc-address":         func(dst, src *GraphQLConfig) { dst.GRPC.Address = src.GRPC.Address },
	"postgres-endpoint":    func(dst, src *GraphQLConfig) { dst.Postgres.Endpoint = src.Postgres.Endpoint },
	"dapp-deployment-file": func(dst, src *GraphQLConfig) { dst.DappDeploymentFile = src.DappDeploymentFile },
	"log-level":            func(dst, src *GraphQLConfig) { dst.Log.Level = src.Log.Level },
	"log-pretty":           func(dst, src *GraphQLConfig) { dst.Log.Pretty = src.Log.Pretty },
	"shutdown-timeout":     func(dst, src *GraphQLConfig) { dst.ShutdownTimeout = src.ShutdownTimeout },
	"c":                    func(dst, src *GraphQLConfig) { dst.JSONFilePath = src.JSONFilePath },
	"config":               func(dst, src *GraphQLConfig) { dst.JSONFilePath = src.JSONFilePath },
}

// String returns a canonical host:port string for a NetAddress, with IPv6
// hosts in brackets. If neither Host nor Port are set, it returns an empty
// string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses a listen address of the form host:port, [ipv6]:port or :port
// and populates the NetAddress. The host may be a DNS name or an IP literal;
// the port must be in 1..65535.
func (a *NetAddress) Set(s string) error {
	host, portString, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is a positive integer up to 65535")
	}

	a.Host = host
	a.Port = port
	return nil
}
