package service

import (
	"fmt"
	"time"

	"github.com/startender/tender-api/internal/domain"
)

// parseDatePtr parses an optional ISO date or timestamp string.
// Returns nil for nil or empty input.
func parseDatePtr(value *string, field string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05Z", "2006-01-02"} {
		if t, err := time.Parse(layout, *value); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrInvalidDate, field)
}

// validateRelatedRef checks an optional polymorphic (kind, id) pair. Both
// parts must be present together and the kind must be in the closed enum.
// Existence of the target row is deliberately not checked.
func validateRelatedRef(id *uint, kind *domain.RelatedKind) error {
	if id == nil && kind == nil {
		return nil
	}
	if id == nil || kind == nil {
		return fmt.Errorf("%w: relatedToId and relatedToType must be set together", ErrInvalidRelatedKind)
	}
	if !kind.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidRelatedKind, *kind)
	}
	return nil
}
