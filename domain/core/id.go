package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// AnalyzerID identifies a single analyzer instance
type AnalyzerID ID

func (id AnalyzerID) String() string { return ID(id).String() }

// ParseAnalyzerID parses a string into AnalyzerID
func ParseAnalyzerID(s string) (AnalyzerID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("analyzer ID cannot be empty")
	}
	return AnalyzerID(s), nil
}
