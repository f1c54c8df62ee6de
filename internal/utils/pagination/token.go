package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
)

const tokenVersion = "v1"

// EncodeCodeToken creates an opaque cursor for code-ordered listings. The
// kind ties a token to one listing so an account token cannot page domains.
func EncodeCodeToken(kind, code string) string {
	return EncodeMultiFieldToken(tokenVersion, kind, code)
}

// DecodeCodeToken returns the code a cursor points past.
func DecodeCodeToken(kind, token string) (string, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if len(parts) != 3 || parts[0] != tokenVersion {
		return "", fmt.Errorf("%w: invalid pagination token format (split)", apperrors.ErrValidation)
	}
	if parts[1] != kind {
		return "", fmt.Errorf("%w: pagination token belongs to %q, not %q", apperrors.ErrValidation, parts[1], kind)
	}
	return parts[2], nil
}

// EncodeMultiFieldToken creates a token with any number of string fields.
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields.
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	return strings.SplitN(string(decodedBytes), "|", 3), nil
}

// ClampLimit applies the default to an unset limit and caps it at max.
func ClampLimit(requested, def, max int) int {
	if requested <= 0 {
		requested = def
	}
	if max > 0 && requested > max {
		return max
	}
	return requested
}
