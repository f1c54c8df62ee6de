// Package localization validates language tags and merges edits into
// localized name sets.
package localization

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeLanguage validates a BCP 47 tag and returns it trimmed. Tags that
// are well formed but carry unregistered subtags (private regional
// variants such as "en-JOCK") are accepted as written.
func NormalizeLanguage(tag string) (string, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return "", fmt.Errorf("%w: language is required", apperrors.ErrValidation)
	}
	if _, err := language.Parse(tag); err != nil {
		var unknown language.ValueError
		if !errors.As(err, &unknown) {
			return "", fmt.Errorf("%w: invalid language %q: %v", apperrors.ErrValidation, tag, err)
		}
	}
	return tag, nil
}

// SameLanguage compares two tags case-insensitively.
func SameLanguage(a, b string) bool {
	return strings.EqualFold(a, b)
}

// NormalizeText folds case and collapses whitespace. Two names collide
// when their normalized forms are equal.
func NormalizeText(text string) string {
	return cases.Fold().String(strings.Join(strings.Fields(text), " "))
}

// Merge applies edits to current in order and returns the resulting set.
// A nil name removes the language; a later edit of the same language wins.
// The result must still contain defaultLanguage.
func Merge(current []domain.Name, edits []domain.NameEdit, defaultLanguage string) ([]domain.Name, error) {
	result := make([]domain.Name, len(current))
	copy(result, current)

	for _, edit := range edits {
		lang, err := NormalizeLanguage(edit.Language)
		if err != nil {
			return nil, err
		}
		idx := indexOf(result, lang)
		if edit.Name == nil {
			if idx >= 0 {
				result = append(result[:idx], result[idx+1:]...)
			}
			continue
		}
		text := strings.TrimSpace(*edit.Name)
		if text == "" {
			return nil, fmt.Errorf("%w: name for language %q is empty", apperrors.ErrValidation, lang)
		}
		if idx >= 0 {
			result[idx] = domain.Name{Language: lang, Name: text}
		} else {
			result = append(result, domain.Name{Language: lang, Name: text})
		}
	}

	if indexOf(result, defaultLanguage) < 0 {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrMissingDefaultLanguage, defaultLanguage)
	}
	return result, nil
}

// Records converts a name set to its stored form.
func Records(ownerUUID string, kind domain.OwnerKind, scope string, names []domain.Name) []domain.NameRecord {
	records := make([]domain.NameRecord, 0, len(names))
	for _, n := range names {
		records = append(records, domain.NameRecord{
			OwnerUUID:  ownerUUID,
			OwnerKind:  kind,
			Scope:      scope,
			Language:   n.Language,
			Name:       n.Name,
			Normalized: NormalizeText(n.Name),
		})
	}
	return records
}

func indexOf(names []domain.Name, lang string) int {
	for i, n := range names {
		if SameLanguage(n.Language, lang) {
			return i
		}
	}
	return -1
}
