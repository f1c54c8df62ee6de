package pgsql

import (
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
)

func newRepositoryProvider(db dbtx) portsrepo.RepositoryProvider {
	base := BaseRepository{db: db}

	return portsrepo.RepositoryProvider{
		Ledger:      &PgxLedgerRepository{BaseRepository: base},
		Currencies:  &PgxCurrencyRepository{BaseRepository: base},
		Domains:     &PgxDomainRepository{BaseRepository: base},
		Accounts:    &PgxAccountRepository{BaseRepository: base},
		SubJournals: &PgxSubJournalRepository{BaseRepository: base},
		Names:       &PgxNameRepository{BaseRepository: base},
		References:  &PgxReferenceChecker{BaseRepository: base},
	}
}
