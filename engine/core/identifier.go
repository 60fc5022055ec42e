package core

import "github.com/google/uuid"

// GenerateNewID returns a unique identifier for a GPU-resident resource
// instance. Used to tell re-uploads of the same tag apart in logs.
func GenerateNewID() string {
	return uuid.New().String()
}
