package accounting

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
)

// ExistsFunc reports whether an account with the given code exists.
type ExistsFunc func(code string) (bool, error)

var flatCodePattern = regexp.MustCompile(`^[A-Z0-9_-]{1,32}$`)

// NormalizeFlatCode validates and uppercases a domain or sub-journal code.
func NormalizeFlatCode(code string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if !flatCodePattern.MatchString(normalized) {
		return "", fmt.Errorf("%w: code %q must be 1-32 letters, digits, '_' or '-'", apperrors.ErrValidation, code)
	}
	return normalized, nil
}

// CodeValidator enforces the hierarchical account code format of a ledger.
// A code's parent is the code with its last segment removed.
type CodeValidator struct {
	format  domain.CodeFormat
	segment *regexp.Regexp
}

// NewCodeValidator compiles the rule set's code format.
func NewCodeValidator(format domain.CodeFormat) (*CodeValidator, error) {
	if format.Delimiter == "" {
		return nil, fmt.Errorf("%w: account code delimiter is empty", apperrors.ErrValidation)
	}
	segment, err := regexp.Compile(format.Segment)
	if err != nil {
		return nil, fmt.Errorf("%w: account segment pattern: %v", apperrors.ErrValidation, err)
	}
	if segment.MatchString(format.Delimiter) {
		return nil, fmt.Errorf("%w: delimiter %q is a valid segment", apperrors.ErrValidation, format.Delimiter)
	}
	return &CodeValidator{format: format, segment: segment}, nil
}

// Normalize applies the case policy without validating.
func (v *CodeValidator) Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateFormat checks the character set, length and depth of code and
// returns its normalized form.
func (v *CodeValidator) ValidateFormat(code string) (string, error) {
	normalized := v.Normalize(code)
	if normalized == "" {
		return "", fmt.Errorf("%w: account code is empty", apperrors.ErrValidation)
	}
	if v.format.MaxLength > 0 && len(normalized) > v.format.MaxLength {
		return "", fmt.Errorf("%w: account code %q exceeds %d characters", apperrors.ErrValidation, normalized, v.format.MaxLength)
	}
	segments := strings.Split(normalized, v.format.Delimiter)
	if v.format.MaxDepth > 0 && len(segments) > v.format.MaxDepth {
		return "", fmt.Errorf("%w: account code %q is deeper than %d levels", apperrors.ErrValidation, normalized, v.format.MaxDepth)
	}
	for _, s := range segments {
		if !v.segment.MatchString(s) {
			return "", fmt.Errorf("%w: account code %q has invalid segment %q", apperrors.ErrValidation, normalized, s)
		}
	}
	return normalized, nil
}

// ParentOf returns the structural parent of a normalized code, or "" for a top level code.
func (v *CodeValidator) ParentOf(code string) string {
	i := strings.LastIndex(code, v.format.Delimiter)
	if i < 0 {
		return ""
	}
	return code[:i]
}

// LastSegment returns the final segment of a normalized code.
func (v *CodeValidator) LastSegment(code string) string {
	i := strings.LastIndex(code, v.format.Delimiter)
	if i < 0 {
		return code
	}
	return code[i+len(v.format.Delimiter):]
}

// Join builds a child code below parent.
func (v *CodeValidator) Join(parent, segment string) string {
	if parent == "" {
		return segment
	}
	return parent + v.format.Delimiter + segment
}

// IsDescendant reports whether code lies strictly below ancestor.
func (v *CodeValidator) IsDescendant(code, ancestor string) bool {
	return strings.HasPrefix(code, ancestor+v.format.Delimiter)
}

// Rebase moves a descendant code from below oldPrefix to below newPrefix.
func (v *CodeValidator) Rebase(code, oldPrefix, newPrefix string) string {
	if code == oldPrefix {
		return newPrefix
	}
	return newPrefix + strings.TrimPrefix(code, oldPrefix)
}

// ValidateParentage checks a new account's code against its parent. An
// empty parentCode means the caller left the parent implicit. The parent
// must exist and the code must not.
func (v *CodeValidator) ValidateParentage(code, parentCode string, exists ExistsFunc) error {
	derived := v.ParentOf(code)
	if parentCode != "" && v.Normalize(parentCode) != derived {
		return fmt.Errorf("%w: account code %q does not start with parent code %q", apperrors.ErrValidation, code, v.Normalize(parentCode))
	}
	if derived != "" {
		ok, err := exists(derived)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", apperrors.ErrOrphanAccount, derived)
		}
	}
	taken, err := exists(code)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%w: account %s", apperrors.ErrDuplicateCode, code)
	}
	return nil
}

// ValidateReparent checks moving or renaming the account at code to newCode.
func (v *CodeValidator) ValidateReparent(code, newCode string, exists ExistsFunc) error {
	if newCode == code {
		return nil
	}
	if v.IsDescendant(newCode, code) {
		return fmt.Errorf("%w: %s cannot move below itself to %s", apperrors.ErrCycleDetected, code, newCode)
	}
	if parent := v.ParentOf(newCode); parent != "" {
		ok, err := exists(parent)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", apperrors.ErrOrphanAccount, parent)
		}
	}
	taken, err := exists(newCode)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%w: account %s", apperrors.ErrDuplicateCode, newCode)
	}
	return nil
}
