// Package revision issues and checks the optimistic-concurrency tokens
// attached to every mutable ledger entity.
package revision

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"golang.org/x/crypto/blake2b"
)

const tokenSize = 18

// Token derives the revision token of an entity state. The same state
// always yields the same token; bumping the version changes it.
func Token(uuid string, version int64, updatedAt time.Time) string {
	h, err := blake2b.New(tokenSize, nil)
	if err != nil {
		// only fails for an out of range size or an oversized key
		panic(err)
	}
	h.Write([]byte(uuid))
	h.Write([]byte{'|'})
	h.Write(strconv.AppendInt(nil, version, 10))
	h.Write([]byte{'|'})
	h.Write(strconv.AppendInt(nil, updatedAt.UnixNano(), 10))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

// Stamp advances r to a new version at now and returns the new token.
// Timestamps are kept at microsecond precision so tokens survive a
// round trip through Postgres.
func Stamp(r *domain.Revisioned, uuid string, now time.Time) string {
	r.Version++
	r.UpdatedAt = now.UTC().Truncate(time.Microsecond)
	if r.CreatedAt.IsZero() {
		r.CreatedAt = r.UpdatedAt
	}
	r.Revision = Token(uuid, r.Version, r.UpdatedAt)
	return r.Revision
}

// Attach fills in the token of an entity loaded from the store.
func Attach(r *domain.Revisioned, uuid string) {
	r.Revision = Token(uuid, r.Version, r.UpdatedAt)
}

// Check fails with ErrRevisionMismatch unless supplied is the current
// token of r. Empty and malformed tokens never match.
func Check(r domain.Revisioned, uuid, supplied string) error {
	want := Token(uuid, r.Version, r.UpdatedAt)
	if supplied == "" || subtle.ConstantTimeCompare([]byte(want), []byte(supplied)) != 1 {
		return fmt.Errorf("%w: %s was modified or the revision is invalid", apperrors.ErrRevisionMismatch, uuid)
	}
	return nil
}
