package templates

import (
	"errors"
	"strings"
	"testing"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetManufacturer(t *testing.T) {
	tpl, err := Get("manufacturer_1.0")
	require.NoError(t, err)

	assert.Equal(t, "en", tpl.Language)
	assert.Len(t, tpl.Accounts, 139)
	assert.Len(t, tpl.AccountRequests(), 139)
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("bakery_9.9")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestList(t *testing.T) {
	list, err := List()
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "common", list[0].Name)
	assert.Equal(t, 22, list[0].Accounts)
	assert.Equal(t, "manufacturer_1.0", list[1].Name)
	assert.Equal(t, 139, list[1].Accounts)
}

// Every chart must be importable in file order under the default rules.
func TestChartsAreParentsFirst(t *testing.T) {
	v, err := accounting.NewCodeValidator(domain.DefaultRules().Account.Codes)
	require.NoError(t, err)

	list, err := List()
	require.NoError(t, err)
	for _, s := range list {
		t.Run(s.Name, func(t *testing.T) {
			tpl, err := Get(s.Name)
			require.NoError(t, err)

			seen := map[string]bool{}
			exists := func(code string) (bool, error) { return seen[code], nil }
			for _, req := range tpl.AccountRequests() {
				code, err := v.ValidateFormat(req.Code)
				require.NoError(t, err, req.Code)
				require.NoError(t, v.ValidateParentage(code, "", exists), req.Code)
				seen[code] = true

				require.NotEmpty(t, req.Names, req.Code)
				hasDefault := false
				for _, n := range req.Names {
					if strings.EqualFold(n.Language, tpl.Language) {
						hasDefault = true
					}
				}
				assert.True(t, hasDefault, "%s has no %s name", req.Code, tpl.Language)
			}
		})
	}
}
