package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *GraphQLConfig {
	cfg := defaults()
	cfg.Postgres.Endpoint = "postgres://localhost/rollups"
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that an empty builder fails validation
// instead of returning an unusable config.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidPort)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that a non-zero field from an earlier
// config is not overwritten by a later one, while zero fields are filled.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&GraphQLConfig{GraphQL: GraphQL{Port: 5000}},
		&GraphQLConfig{GraphQL: GraphQL{Port: 6000, Host: "0.0.0.0"}},
		validConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.GraphQL.Port)
	assert.Equal(t, "0.0.0.0", cfg.GraphQL.Host)
	assert.Equal(t, DefaultHealthcheckPort, cfg.Healthcheck.Port)
}

// ── withEnv / withFlags / withDefaults ────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"GRAPHQL_HOST": "env-host"})

	b := newConfigBuilder().withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-host", b.configs[0].GraphQL.Host)
}

func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Len(t, b.configs, 1)
}

func TestWithFlags_SetsError_WhenInvalid(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-graphql-port", "x"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_RecordsOverridesForExplicitFlags(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-log-pretty=false", "-graphql-port", "5000"})
	require.NoError(t, b.err)
	assert.Len(t, b.overrides, 2)

	b = newConfigBuilder().withFlags(nil)
	assert.Empty(t, b.overrides)
}

func TestWithDefaults_AppendsDefaults(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	require.Len(t, b.configs, 1)
	assert.Equal(t, defaults(), b.configs[0])
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &GraphQLConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := GraphQLJSONConfig{}
	payload.GraphQL.Host = "json-host"
	payload.Postgres.Endpoint = "postgres://json/rollups"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &GraphQLConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-host", b.configs[1].GraphQL.Host)
	assert.Equal(t, "postgres://json/rollups", b.configs[1].Postgres.Endpoint)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &GraphQLConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	var readErr *ReadFileError
	assert.ErrorAs(t, b.err, &readErr)
}

func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &GraphQLConfig{JSONFilePath: f.Name()})
	b.withJSON()

	var parseErr *JSONParseError
	assert.ErrorAs(t, b.err, &parseErr)
}

// TestWithJSON_FlagPathWinsOverEnvPath verifies that the path named by the
// highest-priority source is the one loaded.
func TestWithJSON_FlagPathWinsOverEnvPath(t *testing.T) {
	flagPayload := GraphQLJSONConfig{}
	flagPayload.GraphQL.Host = "from-flag-file"
	flagPath := writeTempJSONConfig(t, flagPayload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&GraphQLConfig{JSONFilePath: flagPath},
		&GraphQLConfig{JSONFilePath: "/nonexistent/env.json"},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "from-flag-file", b.configs[2].GraphQL.Host)
}

// ── GetGraphQLConfig ──────────────────────────────────────────────────────────

func TestGetGraphQLConfig_Precedence(t *testing.T) {
	payload := GraphQLJSONConfig{}
	payload.GraphQL.Host = "json-host"
	payload.GraphQL.Port = 7000
	payload.Healthcheck.Port = 7001
	payload.Log.Level = "warn"
	payload.ShutdownTimeout = Duration(time.Minute)
	path := writeTempJSONConfig(t, payload)

	setEnvVars(t, map[string]string{
		"GRAPHQL_PORT":      "6000",
		"HEALTHCHECK_PORT":  "6001",
		"POSTGRES_ENDPOINT": "postgres://env/rollups",
		"CONFIG":            path,
	})

	cfg, err := GetGraphQLConfig([]string{"-graphql-port", "5000"})

	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.GraphQL.Port, "flag wins over env and json")
	assert.Equal(t, 6001, cfg.Healthcheck.Port, "env wins over json")
	assert.Equal(t, "json-host", cfg.GraphQL.Host, "json wins over defaults")
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, time.Minute, cfg.ShutdownTimeout)
	assert.Equal(t, "postgres://env/rollups", cfg.Postgres.Endpoint)
	assert.Equal(t, path, cfg.JSONFilePath)
}

// TestGetGraphQLConfig_ExplicitZeroFlagWins verifies that a flag set to its
// zero value still overrides env and JSON, which a plain merge cannot do.
func TestGetGraphQLConfig_ExplicitZeroFlagWins(t *testing.T) {
	payload := GraphQLJSONConfig{}
	payload.GraphQL.Host = "json-host"
	path := writeTempJSONConfig(t, payload)

	setEnvVars(t, map[string]string{
		"LOG_PRETTY":        "true",
		"POSTGRES_ENDPOINT": "postgres://env/rollups",
		"CONFIG":            path,
	})

	cfg, err := GetGraphQLConfig([]string{"-log-pretty=false", "-graphql-host="})

	require.NoError(t, err)
	assert.False(t, cfg.Log.Pretty)
	assert.Empty(t, cfg.GraphQL.Host)
	assert.Equal(t, ":4000", cfg.GraphQL.Address())
}

func TestGetGraphQLConfig_EnvPrettyWithoutFlag(t *testing.T) {
	setEnvVars(t, map[string]string{
		"LOG_PRETTY":        "true",
		"POSTGRES_ENDPOINT": "postgres://env/rollups",
	})

	cfg, err := GetGraphQLConfig(nil)

	require.NoError(t, err)
	assert.True(t, cfg.Log.Pretty)
}

func TestGetGraphQLConfig_Defaults(t *testing.T) {
	setEnvVars(t, map[string]string{})

	cfg, err := GetGraphQLConfig([]string{"-postgres-endpoint", "postgres://localhost/rollups"})

	require.NoError(t, err)
	assert.Equal(t, DefaultGraphQLHost, cfg.GraphQL.Host)
	assert.Equal(t, DefaultGraphQLPort, cfg.GraphQL.Port)
	assert.Equal(t, DefaultHealthcheckPort, cfg.Healthcheck.Port)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.GRPC.Address)
	assert.Equal(t, "127.0.0.1:4000", cfg.GraphQL.Address())
	assert.Equal(t, ":8080", cfg.Healthcheck.Address())
}

func TestGetGraphQLConfig_MissingJSONFile(t *testing.T) {
	setEnvVars(t, map[string]string{})

	cfg, err := GetGraphQLConfig([]string{
		"-postgres-endpoint", "postgres://localhost/rollups",
		"-config", "/nonexistent/config.json",
	})

	assert.Nil(t, cfg)
	var readErr *ReadFileError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, "/nonexistent/config.json", readErr.Path)
}
