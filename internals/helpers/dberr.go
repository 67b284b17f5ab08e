package helper

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// IsDuplicateKey reports whether err is a unique-constraint violation.
// Typed check first (lib/pq 23505), string fallback for other drivers.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "sqlstate 23505")
}
