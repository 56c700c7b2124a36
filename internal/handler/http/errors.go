// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidGraphQLRequest is returned when a /graphql request body or
	// query string cannot be decoded into a GraphQL request envelope.
	ErrInvalidGraphQLRequest = errors.New("invalid graphql request")

	// ErrInvalidVariables is returned when the "variables" query parameter
	// of a GET /graphql request is not a JSON object.
	ErrInvalidVariables = errors.New("invalid graphql variables")
)
