package models

import "encoding/json"

// GraphQLRequest is the standard GraphQL-over-HTTP request envelope.
type GraphQLRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// GraphQLResponse is the standard GraphQL-over-HTTP response envelope.
// Data is kept raw: it is produced by the query executor as-is.
type GraphQLResponse struct {
	Data   json.RawMessage `json:"data,omitempty"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

// GraphQLError is one entry of the "errors" list of a GraphQL response.
type GraphQLError struct {
	Message string `json:"message"`
}
