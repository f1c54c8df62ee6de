package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicateCode indicates that the code is already used by another entity of the same kind.
var ErrDuplicateCode = errors.New("duplicate code")

// ErrDuplicateName indicates that a sibling entity already holds the same name in the same language.
var ErrDuplicateName = errors.New("duplicate name")

// ErrMissingDefaultLanguage indicates that a name set would be left without a default-language entry.
var ErrMissingDefaultLanguage = errors.New("missing name in default language")

// ErrRevisionMismatch indicates a stale or malformed revision token.
var ErrRevisionMismatch = errors.New("revision mismatch")

// ErrOrphanAccount indicates that a parent account does not exist.
var ErrOrphanAccount = errors.New("parent account not found")

// ErrCycleDetected indicates an attempt to move an account beneath itself.
var ErrCycleDetected = errors.New("account cannot be its own ancestor")

// ErrHasDependents indicates that an entity is still referenced and cannot be removed.
var ErrHasDependents = errors.New("entity has dependents")

// ErrNoLedger is returned by every operation except create until a ledger exists.
var ErrNoLedger = errors.New("ledger has not been created")

// ErrLedgerExists is returned when creating a ledger twice.
var ErrLedgerExists = errors.New("ledger already exists")

// AppError carries an HTTP status for failures that are not part of the domain taxonomy.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with an HTTP status code and a user facing message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// Kind names the taxonomy member err belongs to. Unknown errors report "internal".
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "ValidationError"
	case errors.Is(err, ErrNotFound):
		return "NotFound"
	case errors.Is(err, ErrDuplicateCode):
		return "DuplicateCode"
	case errors.Is(err, ErrDuplicateName):
		return "DuplicateName"
	case errors.Is(err, ErrMissingDefaultLanguage):
		return "MissingDefaultLanguage"
	case errors.Is(err, ErrRevisionMismatch):
		return "RevisionMismatch"
	case errors.Is(err, ErrOrphanAccount):
		return "OrphanAccount"
	case errors.Is(err, ErrCycleDetected):
		return "CycleDetected"
	case errors.Is(err, ErrHasDependents):
		return "HasDependents"
	case errors.Is(err, ErrNoLedger):
		return "NoLedger"
	case errors.Is(err, ErrLedgerExists):
		return "LedgerExists"
	}
	return "internal"
}

// HTTPStatus maps err to the status code the API answers with.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrMissingDefaultLanguage),
		errors.Is(err, ErrOrphanAccount), errors.Is(err, ErrCycleDetected):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrNoLedger):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateCode), errors.Is(err, ErrDuplicateName),
		errors.Is(err, ErrHasDependents), errors.Is(err, ErrLedgerExists):
		return http.StatusConflict
	case errors.Is(err, ErrRevisionMismatch):
		return http.StatusPreconditionFailed
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
