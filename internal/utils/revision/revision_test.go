package revision

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStampAndCheck(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 30, 0, 123456789, time.UTC)
	var r domain.Revisioned

	token := Stamp(&r, "acct-1", now)

	assert.Equal(t, int64(1), r.Version)
	assert.Equal(t, now.Truncate(time.Microsecond), r.UpdatedAt)
	assert.Equal(t, r.UpdatedAt, r.CreatedAt)
	assert.Equal(t, token, r.Revision)
	require.NoError(t, Check(r, "acct-1", token))

	// a second stamp at the same instant still produces a new token
	next := Stamp(&r, "acct-1", now)
	assert.NotEqual(t, token, next)
	assert.Equal(t, now.Truncate(time.Microsecond), r.CreatedAt)

	err := Check(r, "acct-1", token)
	assert.True(t, errors.Is(err, apperrors.ErrRevisionMismatch))
}

func TestCheckRejectsMalformed(t *testing.T) {
	var r domain.Revisioned
	Stamp(&r, "dom-1", time.Now())

	for _, supplied := range []string{"", "bogus", r.Revision + "x", Token("dom-2", r.Version, r.UpdatedAt)} {
		err := Check(r, "dom-1", supplied)
		assert.ErrorIs(t, err, apperrors.ErrRevisionMismatch, "token %q", supplied)
	}
}

func TestTokenIgnoresLocation(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 6000, time.UTC)
	loc := time.FixedZone("EST", -5*3600)

	assert.Equal(t, Token("x", 3, at), Token("x", 3, at.In(loc)))
}

func TestAttach(t *testing.T) {
	var stored domain.Revisioned
	token := Stamp(&stored, "sj-1", time.Now())

	loaded := domain.Revisioned{Version: stored.Version, AuditFields: stored.AuditFields}
	Attach(&loaded, "sj-1")

	assert.Equal(t, token, loaded.Revision)
}
