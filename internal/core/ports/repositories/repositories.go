package repositories

// RepositoryProvider holds all repository interfaces needed by services,
// bound to one unit of work.
type RepositoryProvider struct {
	Ledger      LedgerRepositoryFacade
	Currencies  CurrencyRepositoryFacade
	Domains     DomainRepositoryFacade
	Accounts    AccountRepositoryFacade
	SubJournals SubJournalRepositoryFacade
	Names       NameRepositoryFacade
	References  ReferenceChecker
}
