// Package ports holds the interfaces the ledger's layers meet at.
//
// TransferService is implemented by internal/app and driven by the HTTP
// handlers and ledgerctl. LedgerStore and Notifier are implemented by the
// store and webhook adapters and used by the transfer commands.
// HealthChecker and HealthRegistry back the readiness probe.
package ports
