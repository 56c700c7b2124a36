// Package utils holds small helpers shared by the transport layer.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers, so that trace ids sort by
// request start time in log storage.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, or a random UUIDv4 if the clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
