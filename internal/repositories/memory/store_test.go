package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func seed(t *testing.T, s *Store) {
	t.Helper()
	err := s.InTx(context.Background(), func(repos repositories.RepositoryProvider) error {
		ctx := context.Background()
		for _, a := range []domain.Account{
			{UUID: "a1", Code: "1000", Category: true},
			{UUID: "a2", Code: "1000.1100", ParentUUID: strPtr("a1")},
			{UUID: "a3", Code: "1000.1200", ParentUUID: strPtr("a1"), Closed: true},
			{UUID: "a4", Code: "2000", Category: true},
			{UUID: "a5", Code: "10001"},
		} {
			if err := repos.Accounts.SaveAccount(ctx, a); err != nil {
				return err
			}
		}
		return repos.Names.ReplaceNames(ctx, "a2", []domain.NameRecord{
			{OwnerUUID: "a2", OwnerKind: domain.OwnerAccount, Scope: "a1", Language: "en", Name: "Petty Cash", Normalized: "petty cash"},
		})
	})
	require.NoError(t, err)
}

func codes(accounts []domain.Account) []string {
	out := make([]string, len(accounts))
	for i, a := range accounts {
		out[i] = a.Code
	}
	return out
}

func TestInTxRollsBackOnError(t *testing.T) {
	s := NewStore()
	seed(t, s)
	boom := errors.New("boom")

	err := s.InTx(context.Background(), func(repos repositories.RepositoryProvider) error {
		require.NoError(t, repos.Accounts.SaveAccount(context.Background(), domain.Account{UUID: "a9", Code: "9000"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	exists, err := s.Repositories().Accounts.AccountCodeExists(context.Background(), "9000")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestReadRepositoriesRejectWrites(t *testing.T) {
	s := NewStore()
	err := s.Repositories().Accounts.SaveAccount(context.Background(), domain.Account{UUID: "x", Code: "1"})
	assert.ErrorIs(t, err, errReadOnly)
}

func TestQueryAccounts(t *testing.T) {
	s := NewStore()
	seed(t, s)
	repo := s.Repositories().Accounts
	ctx := context.Background()

	all, err := repo.QueryAccounts(ctx, repositories.AccountFilter{}, repositories.PageQuery{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"1000", "1000.1100", "1000.1200", "10001", "2000"}, codes(all))
	assert.Equal(t, "1000", all[1].ParentCode)

	next, err := repo.QueryAccounts(ctx, repositories.AccountFilter{}, repositories.PageQuery{After: "1000.1100", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"1000.1200", "10001"}, codes(next))

	top := ""
	roots, err := repo.QueryAccounts(ctx, repositories.AccountFilter{ParentCode: &top}, repositories.PageQuery{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"1000", "10001", "2000"}, codes(roots))

	parent := "1000"
	closed := false
	open, err := repo.QueryAccounts(ctx, repositories.AccountFilter{ParentCode: &parent, Closed: &closed}, repositories.PageQuery{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"1000.1100"}, codes(open))

	named, err := repo.QueryAccounts(ctx, repositories.AccountFilter{NameLanguage: "EN", NameContains: "petty"}, repositories.PageQuery{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"1000.1100"}, codes(named))

	ranged, err := repo.QueryAccounts(ctx, repositories.AccountFilter{CodeFilter: repositories.CodeFilter{RangeFrom: "1000.1", RangeTo: "1999"}}, repositories.PageQuery{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"1000.1100", "1000.1200", "10001"}, codes(ranged))
}

func TestUpdateIsConditionalOnVersion(t *testing.T) {
	s := NewStore()
	seed(t, s)

	err := s.InTx(context.Background(), func(repos repositories.RepositoryProvider) error {
		a, err := repos.Accounts.FindAccountByCodeForUpdate(context.Background(), "2000")
		require.NoError(t, err)
		a.Version = 5
		return repos.Accounts.UpdateAccount(context.Background(), *a, 3)
	})
	assert.ErrorIs(t, err, apperrors.ErrRevisionMismatch)
}

func TestRewriteAccountCodesAdvancesVersion(t *testing.T) {
	s := NewStore()
	seed(t, s)
	ctx := context.Background()

	err := s.InTx(ctx, func(repos repositories.RepositoryProvider) error {
		a, err := repos.Accounts.FindAccountByCodeForUpdate(ctx, "2000")
		require.NoError(t, err)
		a.Code = "2500"
		a.Version += 2
		return repos.Accounts.RewriteAccountCodes(ctx, []domain.Account{*a})
	})
	assert.ErrorIs(t, err, apperrors.ErrRevisionMismatch)

	err = s.InTx(ctx, func(repos repositories.RepositoryProvider) error {
		a, err := repos.Accounts.FindAccountByCodeForUpdate(ctx, "2000")
		require.NoError(t, err)
		a.Code = "2500"
		a.Version++
		return repos.Accounts.RewriteAccountCodes(ctx, []domain.Account{*a})
	})
	require.NoError(t, err)

	a, err := s.Repositories().Accounts.FindAccountByCode(ctx, "2500")
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.Version)
}

func TestDeleteAccountWithChildren(t *testing.T) {
	s := NewStore()
	seed(t, s)

	err := s.InTx(context.Background(), func(repos repositories.RepositoryProvider) error {
		return repos.Accounts.DeleteAccount(context.Background(), "a1", 0)
	})
	assert.ErrorIs(t, err, apperrors.ErrHasDependents)
}

func TestNamesUniqueWithinScope(t *testing.T) {
	s := NewStore()
	seed(t, s)

	err := s.InTx(context.Background(), func(repos repositories.RepositoryProvider) error {
		return repos.Names.ReplaceNames(context.Background(), "a3", []domain.NameRecord{
			{OwnerUUID: "a3", OwnerKind: domain.OwnerAccount, Scope: "a1", Language: "en", Name: "PETTY cash", Normalized: "petty cash"},
		})
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateName)

	// same text under another parent is fine
	err = s.InTx(context.Background(), func(repos repositories.RepositoryProvider) error {
		return repos.Names.ReplaceNames(context.Background(), "a4", []domain.NameRecord{
			{OwnerUUID: "a4", OwnerKind: domain.OwnerAccount, Scope: domain.RootScope, Language: "en", Name: "Petty Cash", Normalized: "petty cash"},
		})
	})
	assert.NoError(t, err)
}

func TestReferences(t *testing.T) {
	s := NewStore()
	s.AddReference(domain.RefAccount, "a1")

	has, err := s.Repositories().References.HasReferences(context.Background(), domain.RefAccount, "a1")
	require.NoError(t, err)
	assert.True(t, has)

	has, err = s.Repositories().References.HasReferences(context.Background(), domain.RefDomain, "a1")
	require.NoError(t, err)
	assert.False(t, has)
}
