// Package ledger derives financial state for tenants from already-fetched
// rows: deposit balances, monthly rent and mess status, and the month-level
// aggregate used by the dashboard and jobs.
//
// Every function is pure. Nothing here reads the clock, touches the store or
// returns an error; the month being evaluated is always passed in and input
// rows are assumed to be validated.
package ledger
