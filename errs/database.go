package errs

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

func NewNotFound(entity string) *ModelErr {
	return &ModelErr{
		err:    ErrNotFound,
		Entity: entity,
	}
}

func NewUniqueConstraint(entity, field string, cause error) *ModelErr {
	return &ModelErr{
		err:     ErrUniqueConstraint,
		Entity:  entity,
		Details: fmt.Sprintf("duplicate value for %s", field),
		Cause:   cause,
	}
}

func NewUnsupportedOperation(entity, operation string) *ModelErr {
	return &ModelErr{
		err:     ErrUnsupportedOperation,
		Entity:  entity,
		Details: fmt.Sprintf("%s is not supported", operation),
	}
}

// NewStorageError wraps a lower-level engine fault that is not otherwise
// classified.
func NewStorageError(operation, entity string, cause error) *ModelErr {
	return &ModelErr{
		err:     ErrStorage,
		Entity:  entity,
		Details: fmt.Sprintf("failed to %s", operation),
		Cause:   cause,
	}
}

// ClassifyDBError maps an error returned by the storage engine onto the model
// error taxonomy. Classification is by sentinel first, falling back to
// driver-specific message matching for engines that do not translate errors.
func ClassifyDBError(operation, entity string, cause error) *ModelErr {
	switch {
	case errors.Is(cause, gorm.ErrRecordNotFound):
		return NewNotFound(entity)
	case errors.Is(cause, gorm.ErrDuplicatedKey):
		return NewUniqueConstraint(entity, "key", cause)
	}

	errStr := cause.Error()
	if strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "duplicate key") {
		return NewUniqueConstraint(entity, "key", cause)
	}

	return NewStorageError(operation, entity, cause)
}

// Error Type Checkers
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsUniqueConstraint(err error) bool {
	return errors.Is(err, ErrUniqueConstraint)
}

func IsUnsupportedOperation(err error) bool {
	return errors.Is(err, ErrUnsupportedOperation)
}

func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}
