// Package idgen mints identifiers for new todos.
package idgen

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator returns a fresh unique id on every call.
type Generator interface {
	Generate() (string, error)
}

// UUID generates random (version 4) UUIDs.
type UUID struct{}

func (UUID) Generate() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return id.String(), nil
}
