// Package config provides configuration loading, merging, and validation
// facilities for the GraphQL server.
//
// [ReadJSONFile] decodes any JSON file into a caller-chosen type and reports
// failures as *[ReadFileError] or *[JSONParseError], both carrying the path.
// [DappDeployment] is the deployment descriptor decoded that way.
//
// The server configuration is assembled from multiple sources in the
// following priority order (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Defaults
//
// The main entry point is [GetGraphQLConfig].
package config
