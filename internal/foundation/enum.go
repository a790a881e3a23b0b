package foundation

import (
	"fmt"
	"sort"
	"strings"
)

// defaultNormalizer provides standard string normalization.
func defaultNormalizer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Normalizer maps loosely written strings (any case, surrounding space) onto enum values.
type Normalizer[T comparable] struct {
	validValues map[string]T
}

// NewNormalizer creates a normalizer with a map of valid string->value pairs.
func NewNormalizer[T comparable](values map[string]T) *Normalizer[T] {
	normalized := make(map[string]T, len(values))
	for k, v := range values {
		normalized[defaultNormalizer(k)] = v
	}

	return &Normalizer[T]{validValues: normalized}
}

// NormalizeWithError attempts to convert a string to the enum type.
// Returns an error if the string is not recognized.
func (n *Normalizer[T]) NormalizeWithError(raw string) (T, error) {
	if value, exists := n.validValues[defaultNormalizer(raw)]; exists {
		return value, nil
	}

	var zero T
	return zero, fmt.Errorf("invalid value: %s", raw)
}

// Keys returns the recognised spellings in sorted order.
func (n *Normalizer[T]) Keys() []string {
	keys := make([]string, 0, len(n.validValues))
	for k := range n.validValues {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
