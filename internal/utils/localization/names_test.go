package localization

import (
	"testing"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func text(s string) *string { return &s }

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		tag     string
		want    string
		wantErr bool
	}{
		{"en", "en", false},
		{" fr-CA ", "fr-CA", false},
		{"en-JOCK", "en-JOCK", false},
		{"", "", true},
		{"not a tag", "", true},
		{"e", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := NormalizeLanguage(tt.tag)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, NormalizeText("Petty  Cash"), NormalizeText(" petty cash "))
	assert.Equal(t, NormalizeText("STRASSE"), NormalizeText("straße"))
	assert.NotEqual(t, NormalizeText("Cash"), NormalizeText("Bank"))
}

func TestMerge(t *testing.T) {
	current := []domain.Name{
		{Language: "en", Name: "Engineering"},
		{Language: "en-JOCK", Name: "Nerds"},
		{Language: "fr", Name: "la machination"},
	}

	t.Run("edit", func(t *testing.T) {
		got, err := Merge(current, []domain.NameEdit{{Language: "fr", Name: text("ingénierie")}}, "en")
		require.NoError(t, err)
		assert.Equal(t, []domain.Name{
			{Language: "en", Name: "Engineering"},
			{Language: "en-JOCK", Name: "Nerds"},
			{Language: "fr", Name: "ingénierie"},
		}, got)
		assert.Equal(t, "la machination", current[2].Name, "input must not be modified")
	})

	t.Run("delete", func(t *testing.T) {
		got, err := Merge(current, []domain.NameEdit{{Language: "en-jock"}}, "en")
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "fr", got[1].Language)
	})

	t.Run("delete default language", func(t *testing.T) {
		_, err := Merge(current, []domain.NameEdit{{Language: "en"}}, "en")
		assert.ErrorIs(t, err, apperrors.ErrMissingDefaultLanguage)
	})

	t.Run("delete then re-add default in one batch", func(t *testing.T) {
		got, err := Merge(current, []domain.NameEdit{{Language: "en"}, {Language: "en", Name: text("Eng")}}, "en")
		require.NoError(t, err)
		assert.Contains(t, got, domain.Name{Language: "en", Name: "Eng"})
	})

	t.Run("last write wins", func(t *testing.T) {
		got, err := Merge(nil, []domain.NameEdit{
			{Language: "en", Name: text("First")},
			{Language: "en", Name: text("Second")},
		}, "en")
		require.NoError(t, err)
		assert.Equal(t, []domain.Name{{Language: "en", Name: "Second"}}, got)
	})

	t.Run("missing default on create", func(t *testing.T) {
		_, err := Merge(nil, []domain.NameEdit{{Language: "fr", Name: text("Ventes")}}, "en")
		assert.ErrorIs(t, err, apperrors.ErrMissingDefaultLanguage)
	})

	t.Run("empty text", func(t *testing.T) {
		_, err := Merge(current, []domain.NameEdit{{Language: "fr", Name: text("   ")}}, "en")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestRecords(t *testing.T) {
	records := Records("owner-1", domain.OwnerDomain, domain.LedgerScope, []domain.Name{{Language: "en", Name: "Sales  Journal"}})

	require.Len(t, records, 1)
	assert.Equal(t, "owner-1", records[0].OwnerUUID)
	assert.Equal(t, domain.OwnerDomain, records[0].OwnerKind)
	assert.Equal(t, "sales journal", records[0].Normalized)
}
