package accounting

import (
	"errors"
	"testing"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *CodeValidator {
	t.Helper()
	v, err := NewCodeValidator(domain.DefaultRules().Account.Codes)
	require.NoError(t, err)
	return v
}

func existing(codes ...string) ExistsFunc {
	set := make(map[string]bool, len(codes))
	for _, c := range codes {
		set[c] = true
	}
	return func(code string) (bool, error) {
		return set[code], nil
	}
}

func TestNewCodeValidator(t *testing.T) {
	_, err := NewCodeValidator(domain.CodeFormat{Delimiter: "", Segment: "^[0-9]+$"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = NewCodeValidator(domain.CodeFormat{Delimiter: ".", Segment: "("})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = NewCodeValidator(domain.CodeFormat{Delimiter: "1", Segment: "^[0-9]+$"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidateFormat(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name    string
		code    string
		want    string
		wantErr bool
	}{
		{"top level", "1000", "1000", false},
		{"lowercase is normalized", " cash.petty ", "CASH.PETTY", false},
		{"three levels", "1000.1100.1110", "1000.1100.1110", false},
		{"empty", "  ", "", true},
		{"empty segment", "1000..1100", "", true},
		{"trailing delimiter", "1000.", "", true},
		{"bad character", "10#0", "", true},
		{"too deep", "1.2.3.4.5.6.7.8.9", "", true},
		{"segment too long", "12345678901234567", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.ValidateFormat(tt.code)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateFormatMaxLength(t *testing.T) {
	v, err := NewCodeValidator(domain.CodeFormat{Delimiter: "-", Segment: "^[0-9]+$", MaxLength: 6})
	require.NoError(t, err)

	_, err = v.ValidateFormat("100-200")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	got, err := v.ValidateFormat("10-200")
	require.NoError(t, err)
	assert.Equal(t, "10", v.ParentOf(got))
}

func TestStructure(t *testing.T) {
	v := newValidator(t)

	assert.Equal(t, "", v.ParentOf("1000"))
	assert.Equal(t, "1000.1100", v.ParentOf("1000.1100.1110"))
	assert.Equal(t, "1110", v.LastSegment("1000.1100.1110"))
	assert.Equal(t, "1000", v.LastSegment("1000"))
	assert.Equal(t, "2000.1100", v.Join("2000", "1100"))
	assert.Equal(t, "1100", v.Join("", "1100"))
	assert.True(t, v.IsDescendant("1000.1100", "1000"))
	assert.False(t, v.IsDescendant("10001", "1000"))
	assert.False(t, v.IsDescendant("1000", "1000"))
	assert.Equal(t, "2000.1100.1110", v.Rebase("1000.1100.1110", "1000.1100", "2000.1100"))
	assert.Equal(t, "2000.1100", v.Rebase("1000.1100", "1000.1100", "2000.1100"))
}

func TestValidateParentage(t *testing.T) {
	v := newValidator(t)
	tree := existing("1000", "1000.1100")

	tests := []struct {
		name    string
		code    string
		parent  string
		wantErr error
	}{
		{"top level", "2000", "", nil},
		{"implicit parent", "1000.1200", "", nil},
		{"explicit parent", "1000.1100.1110", "1000.1100", nil},
		{"explicit parent lowercase", "1000.1200", " 1000 ", nil},
		{"prefix mismatch", "1000.1200", "2000", apperrors.ErrValidation},
		{"missing parent", "3000.1000", "", apperrors.ErrOrphanAccount},
		{"missing explicit parent", "3000.1000", "3000", apperrors.ErrOrphanAccount},
		{"duplicate", "1000.1100", "1000", apperrors.ErrDuplicateCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateParentage(tt.code, tt.parent, tree)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestValidateReparent(t *testing.T) {
	v := newValidator(t)
	tree := existing("1000", "1000.1100", "1000.1100.1110", "2000")

	tests := []struct {
		name    string
		code    string
		newCode string
		wantErr error
	}{
		{"unchanged", "1000.1100", "1000.1100", nil},
		{"rename in place", "1000.1100", "1000.1200", nil},
		{"move to other parent", "1000.1100", "2000.1100", nil},
		{"move to top level", "1000.1100", "1100", nil},
		{"under itself", "1000", "1000.1100.1110.1000", apperrors.ErrCycleDetected},
		{"directly under itself", "1000.1100", "1000.1100.9", apperrors.ErrCycleDetected},
		{"missing parent", "1000.1100", "3000.1100", apperrors.ErrOrphanAccount},
		{"collision", "1000.1100.1110", "1000.1100", apperrors.ErrDuplicateCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateReparent(tt.code, tt.newCode, tree)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestValidateParentagePropagatesLookupErrors(t *testing.T) {
	v := newValidator(t)
	boom := errors.New("connection reset")

	err := v.ValidateParentage("1000.1100", "", func(string) (bool, error) { return false, boom })
	assert.ErrorIs(t, err, boom)
}

func TestNormalizeFlatCode(t *testing.T) {
	got, err := NormalizeFlatCode(" Corp ")
	require.NoError(t, err)
	assert.Equal(t, "CORP", got)

	_, err = NormalizeFlatCode("")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = NormalizeFlatCode("has space")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
