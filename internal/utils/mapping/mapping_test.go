package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerMapping(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	ledger := domain.Ledger{
		UUID:              "l1",
		Template:          "manufacturer_1.0",
		DefaultDomainUUID: "d1",
		Rules:             domain.Rules{Language: domain.LanguageRules{Default: "en"}},
		Revisioned:        domain.Revisioned{Version: 3, AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now}},
	}

	m, err := ToModelLedger(ledger)
	require.NoError(t, err)
	require.NotNil(t, m.DefaultDomainUUID)
	assert.Equal(t, "d1", *m.DefaultDomainUUID)
	assert.Equal(t, int64(3), m.Version)

	code := "CORP"
	m.DefaultDomainCode = &code
	back, err := ToDomainLedger(m)
	require.NoError(t, err)
	assert.Equal(t, "CORP", back.Rules.Domain.Default, "default code follows the joined pointer")
	assert.Equal(t, "en", back.Rules.Language.Default)
	assert.Equal(t, "d1", back.DefaultDomainUUID)
	assert.Equal(t, now, back.CreatedAt)
}

func TestLedgerMappingWithoutDefaultDomain(t *testing.T) {
	m, err := ToModelLedger(domain.Ledger{UUID: "l1"})
	require.NoError(t, err)
	assert.Nil(t, m.DefaultDomainUUID)

	_, err = ToDomainLedger(models.Ledger{UUID: "l1", Rules: []byte("{broken")})
	assert.Error(t, err)
}

func TestAccountMapping(t *testing.T) {
	parentUUID, parentCode := "a1", "1"
	m := models.Account{
		UUID:          "a2",
		Code:          "1.10",
		ParentUUID:    &parentUUID,
		ParentCode:    &parentCode,
		NormalBalance: "DEBIT",
		AuditFields:   models.AuditFields{Version: 2},
	}

	a := ToDomainAccount(m)
	assert.Equal(t, "1", a.ParentCode)
	assert.Equal(t, domain.Debit, a.NormalBalance)
	assert.Equal(t, int64(2), a.Version)
	assert.Equal(t, "a1", a.NameScope())

	top := ToDomainAccount(models.Account{UUID: "a1", Code: "1"})
	assert.Empty(t, top.ParentCode)
	assert.Equal(t, domain.RootScope, top.NameScope())

	assert.Equal(t, "DEBIT", ToModelAccount(a).NormalBalance)
}

func TestNameMapping(t *testing.T) {
	rec := domain.NameRecord{
		OwnerUUID:  "a1",
		OwnerKind:  domain.OwnerAccount,
		Scope:      domain.RootScope,
		Language:   "fr",
		Name:       "Actif",
		Normalized: "actif",
	}
	m := ToModelName(rec)
	assert.Equal(t, "account", m.OwnerKind)
	assert.Equal(t, domain.Name{Language: "fr", Name: "Actif"}, ToDomainName(m))
}
