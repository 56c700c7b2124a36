package config

import (
	"errors"
	"fmt"
)

// ReadFileError reports that a configuration file could not be opened or
// read. Path is the path exactly as the caller supplied it.
type ReadFileError struct {
	Path string
	Err  error
}

func (e *ReadFileError) Error() string {
	return fmt.Sprintf("error reading file %q: %v", e.Path, e.Err)
}

func (e *ReadFileError) Unwrap() error {
	return e.Err
}

// JSONParseError reports that a configuration file was read but its content
// is not a JSON document matching the requested type.
type JSONParseError struct {
	Path string
	Err  error
}

func (e *JSONParseError) Error() string {
	return fmt.Sprintf("error parsing json file %q: %v", e.Path, e.Err)
}

func (e *JSONParseError) Unwrap() error {
	return e.Err
}

var (
	errPathIsDirectory = errors.New("path is a directory")
	errTrailingData    = errors.New("unexpected data after top-level json document")
)

// ErrMissingField is wrapped by decoders of required-field documents such as
// [DappDeployment] when a declared key is absent or null.
var ErrMissingField = errors.New("missing required field")

// Validation errors returned by [GraphQLConfig.validate] when the merged
// configuration cannot be used to start the server.
var (
	// ErrInvalidPort indicates a GraphQL or healthcheck port outside 1..65535.
	ErrInvalidPort = errors.New("invalid port")
	// ErrInvalidPostgresConfig indicates a missing postgres endpoint.
	ErrInvalidPostgresConfig = errors.New("invalid postgres configuration")
	// ErrInvalidLogLevel indicates a level name zerolog cannot parse.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidGRPCAddress indicates a gRPC address not in host:port form.
	ErrInvalidGRPCAddress = errors.New("invalid grpc address")
	// ErrInvalidShutdownTimeout indicates a non-positive shutdown timeout.
	ErrInvalidShutdownTimeout = errors.New("invalid shutdown timeout")
)
