package types

import (
	"time"

	"github.com/google/uuid"
)

// GroupID identifies a compiled rule group in diagnostics.
// Loaded groups use their resource name; groups built from an explicit line
// list get a UUIDv7.
type GroupID string

// TransformID identifies a stored transform row.
type TransformID string

// NewGroupID generates a UUIDv7 group identifier.
// Panics on clock regression (uuid.Must); acceptable for ID generation.
func NewGroupID() GroupID {
	return GroupID(uuid.Must(uuid.NewV7()).String())
}

// NewTransformID generates a UUIDv7 transform identifier.
// Time-ordered IDs keep imported rows clustered in the primary key index.
func NewTransformID() TransformID {
	return TransformID(uuid.Must(uuid.NewV7()).String())
}

// ParseTransformID validates and converts a string to TransformID.
func ParseTransformID(s string) (TransformID, error) {
	_, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return TransformID(s), nil
}

// TransformIDTime extracts the import time embedded in a UUIDv7 ID.
// Returns zero time for invalid UUIDs; caller should check IsZero().
func TransformIDTime(id TransformID) time.Time {
	u, err := uuid.Parse(string(id))
	if err != nil {
		return time.Time{}
	}
	sec, nsec := u.Time().UnixTime()
	return time.Unix(sec, nsec)
}
