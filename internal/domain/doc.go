// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/ledger). This root
// package holds sentinel errors and the field-level validation error shared by
// the command validator, the application services and the HTTP adapter.
package domain
