package catalog

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Validation errors returned by Store operations.
var (
	ErrDuplicateCode    = errors.New("a product with this code already exists")
	ErrMissingCode      = errors.New("product code is required")
	ErrMissingName      = errors.New("product name is required")
	ErrInvalidQuantity  = errors.New("quantity must be an integer greater than or equal to zero")
	ErrInvalidPrice     = errors.New("price must be a number greater than or equal to zero")
	ErrInvalidThreshold = errors.New("low-stock threshold cannot be negative")
	ErrInvalidSortField = errors.New("invalid sort field")
	ErrNoFieldsProvided = errors.New("no fields to update were provided")
)

// ErrStorageFailure marks faults raised by the database rather than by validation.
var ErrStorageFailure = errors.New("storage failure")

func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorageFailure, err)
}

// IsValidationError reports whether err is one of the validation errors that
// leave the catalog untouched and can be shown to the user as-is.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrDuplicateCode, ErrMissingCode, ErrMissingName, ErrInvalidQuantity,
		ErrInvalidPrice, ErrInvalidThreshold, ErrInvalidSortField, ErrNoFieldsProvided,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
