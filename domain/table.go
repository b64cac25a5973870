package domain

// Table is a mongo collection name
type Table string

const (
	TableLedgerListings Table = "ledger_listings"
	TableLedgerAuctions Table = "ledger_auctions"
	TableLedgerBalances Table = "ledger_balances"
	TableLedgerState    Table = "ledger_state"
	TableLedgerEvents   Table = "ledger_events"
)
