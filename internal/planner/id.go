package planner

import (
	"crypto/rand"
	"fmt"
)

// generateID creates a short random hex ID for plan entries and lists.
func generateID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		// Fallback -- should never happen.
		return fmt.Sprintf("plan-%d", b)
	}
	return fmt.Sprintf("%x", b)
}
