package util

import (
	"github.com/google/uuid"
)

// UUIDGenerator has the same signature as the UUID generation
// functions of the UUID library, so that they can be replaced in unit
// tests.
type UUIDGenerator func() (uuid.UUID, error)

var _ UUIDGenerator = uuid.NewRandom
