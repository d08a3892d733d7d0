package services

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type ServiceError struct {
	Status  int
	Code    string
	Message string
	// Fields maps an input field name to the reason it was rejected.
	// Only set for validation failures.
	Fields map[string]string
	Cause  error
}

func (e *ServiceError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *ServiceError) Unwrap() error { return e.Cause }

func newServiceError(status int, code, message string, cause error) *ServiceError {
	return &ServiceError{Status: status, Code: code, Message: message, Cause: cause}
}

func newValidationError(fields map[string]string) *ServiceError {
	return &ServiceError{
		Status:  http.StatusBadRequest,
		Code:    "ATS_VALIDATION",
		Message: "validation failed",
		Fields:  fields,
	}
}

func newNotFoundError(what string, cause error) *ServiceError {
	return newServiceError(http.StatusNotFound, "ATS_NOT_FOUND", what+" not found", cause)
}

// mapPgError turns a raw storage error into a ServiceError. Sentinel
// not-found errors are handled per-service before this is reached, so this
// covers constraint violations and everything else pgx can return.
func mapPgError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return newNotFoundError("record", err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case "23505": // unique_violation
		return newServiceError(http.StatusConflict, "ATS_CONFLICT", "record already exists", err)
	case "23503": // foreign_key_violation
		return newServiceError(http.StatusUnprocessableEntity, "ATS_REFERENCE_NOT_FOUND", "referenced record does not exist", err)
	case "23514": // check_violation
		return newServiceError(http.StatusBadRequest, "ATS_INVALID_VALUE", "value rejected by a storage constraint", err)
	default:
		return newServiceError(http.StatusInternalServerError, "ATS_INTERNAL", fmt.Sprintf("database error (%s)", pgErr.Code), err)
	}
}
