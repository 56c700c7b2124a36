// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	// errServerStopped is returned when a transport stops serving while no
	// shutdown was requested.
	errServerStopped = errors.New("server stopped unexpectedly")
)
