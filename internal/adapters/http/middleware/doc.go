// Package middleware holds the inbound HTTP pipeline for the ledger API.
//
// Stack returns the layers in the order every route runs behind them:
//
//	Recovery → RequestID → OpenTelemetry → Logging → Timeout → Handler
//
// Each layer is a func(http.Handler) http.Handler and is registered on the
// chi router with Use.
package middleware
