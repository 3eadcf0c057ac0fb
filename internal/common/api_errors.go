package common

import (
	"errors"
	"net/http"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"airline-ops/tower/internal/constants"
)

// APIError carries an HTTP status alongside a caller-safe message. Anything
// that is not an APIError is treated as a 500 and its detail stays in the logs.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string { return e.Message }

func BadRequest(message string) *APIError {
	return &APIError{Code: http.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *APIError {
	return &APIError{Code: http.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *APIError {
	return &APIError{Code: http.StatusForbidden, Message: message}
}

func NotFound(message string) *APIError {
	return &APIError{Code: http.StatusNotFound, Message: message}
}

func Conflict(message string) *APIError {
	return &APIError{Code: http.StatusConflict, Message: message}
}

// AsAPIError unwraps err into an APIError if one is in the chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// Postgres constraint violation classes surfaced by lib/pq.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
)

// MapStoreError converts store-level constraint failures into the API error
// taxonomy so drivers never leak their own codes to callers. Errors it does
// not recognize pass through unchanged.
func MapStoreError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Conflict(constants.MsgDuplicateValue)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return BadRequest(constants.MsgRelatedRecord)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqUniqueViolation:
			return Conflict(constants.MsgDuplicateValue)
		case pqForeignKeyViolation:
			return BadRequest(constants.MsgRelatedRecord)
		case pqCheckViolation:
			return BadRequest("Constraint check failed.")
		}
	}

	return err
}
