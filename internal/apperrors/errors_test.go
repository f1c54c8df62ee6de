package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindAndStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		kind   string
		status int
	}{
		{"validation", fmt.Errorf("%w: code is empty", ErrValidation), "ValidationError", http.StatusBadRequest},
		{"not found", fmt.Errorf("%w: domain BOB", ErrNotFound), "NotFound", http.StatusNotFound},
		{"duplicate code", ErrDuplicateCode, "DuplicateCode", http.StatusConflict},
		{"duplicate name", ErrDuplicateName, "DuplicateName", http.StatusConflict},
		{"default language", ErrMissingDefaultLanguage, "MissingDefaultLanguage", http.StatusBadRequest},
		{"revision", fmt.Errorf("%w: account 1000", ErrRevisionMismatch), "RevisionMismatch", http.StatusPreconditionFailed},
		{"orphan", ErrOrphanAccount, "OrphanAccount", http.StatusBadRequest},
		{"cycle", ErrCycleDetected, "CycleDetected", http.StatusBadRequest},
		{"dependents", ErrHasDependents, "HasDependents", http.StatusConflict},
		{"no ledger", ErrNoLedger, "NoLedger", http.StatusNotFound},
		{"ledger exists", ErrLedgerExists, "LedgerExists", http.StatusConflict},
		{"app error", NewAppError(http.StatusServiceUnavailable, "store unavailable", errors.New("dial tcp")), "internal", http.StatusServiceUnavailable},
		{"plain", errors.New("boom"), "internal", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, Kind(tt.err))
			assert.Equal(t, tt.status, HTTPStatus(tt.err))
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	inner := fmt.Errorf("%w: BOB", ErrNotFound)
	err := NewAppError(http.StatusInternalServerError, "failed to load domain", inner)

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "failed to load domain: resource not found: BOB", err.Error())
}
