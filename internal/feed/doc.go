// Package feed publishes the duty rotation over HTTP as read-only JSON and
// provides a client for it.
//
// HTTP API
//
//	GET /pair
//	    The pair for today (the simulated date when one is set).
//
//	GET /pair/{date}
//	    The pair for a YYYY-MM-DD date.
//
//	GET /upcoming?n=N&from=YYYY-MM-DD
//	    Pairs for N working days (default 6) from a date (default today).
//
//	GET /debtors
//	    The debtor queue in insertion order.
//
// Days are encoded as {"date":"YYYY-MM-DD","pair":[a,b],"override":bool}.
// Errors are {"error": "..."} with 400 for malformed input and 500 for store
// failures. Every request is recorded in the access log under an
// X-Request-ID, taken from the request or freshly generated.
//
// Nothing here mutates state; changes go through the CLI and its guard.
package feed
