package common

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseID parses a numeric path or body identifier.
func ParseID(raw string, fieldName string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, BadRequestf("%s is required", fieldName)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, BadRequestf("%s must be a positive integer", fieldName)
	}
	return id, nil
}

// ValidatePositiveInteger validates positive integer values with upper bounds
func ValidatePositiveInteger(value int, fieldName string, max int) error {
	if value <= 0 {
		return fmt.Errorf("%s must be a positive integer", fieldName)
	}
	if max > 0 && value > max {
		return fmt.Errorf("%s cannot exceed %d", fieldName, max)
	}
	return nil
}

// ValidateLimitOffset clamps pagination parameters to sane bounds.
func ValidateLimitOffset(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
