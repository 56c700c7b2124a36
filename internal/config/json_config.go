package config

import (
	"fmt"
	"time"
)

// GraphQLJSONConfig is the on-disk shape of the optional JSON configuration
// file referenced by -config / CONFIG.
type GraphQLJSONConfig struct {
	Log struct {
		Level  string `json:"level"`
		Pretty bool   `json:"pretty"`
	} `json:"log,omitempty"`

	GraphQL struct {
		Host string `json:"host"`
		Port int    `json:"port"`
	} `json:"graphql,omitempty"`

	Healthcheck struct {
		Port int `json:"port"`
	} `json:"healthcheck,omitempty"`

	GRPC struct {
		Address string `json:"address"`
	} `json:"grpc,omitempty"`

	Postgres struct {
		Endpoint string `json:"endpoint"`
	} `json:"postgres,omitempty"`

	DappDeploymentFile string   `json:"dapp_deployment_file,omitempty"`
	ShutdownTimeout    Duration `json:"shutdown_timeout,omitempty"`
}

func parseJSON(jsonFilePath string) (*GraphQLConfig, error) {
	jsonCfg, err := ReadJSONFile[GraphQLJSONConfig](jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error loading json configs: %w", err)
	}

	cfg := &GraphQLConfig{
		Log: Log{
			Level:  jsonCfg.Log.Level,
			Pretty: jsonCfg.Log.Pretty,
		},
		GraphQL: GraphQL{
			Host: jsonCfg.GraphQL.Host,
			Port: jsonCfg.GraphQL.Port,
		},
		Healthcheck: Healthcheck{
			Port: jsonCfg.Healthcheck.Port,
		},
		GRPC: GRPC{
			Address: jsonCfg.GRPC.Address,
		},
		Postgres: Postgres{
			Endpoint: jsonCfg.Postgres.Endpoint,
		},
		DappDeploymentFile: jsonCfg.DappDeploymentFile,
		ShutdownTimeout:    time.Duration(jsonCfg.ShutdownTimeout),
		JSONFilePath:       "",
	}

	return cfg, nil
}
