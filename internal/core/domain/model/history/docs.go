// Package history is the status history ledger of the parcel domain.
//
// Every status change of a package is a Record appended to the ledger. The current
// status of a package is never stored: it is the record with the latest recordedAt,
// and the highest id among records sharing that timestamp. Current and Chronological
// implement that order for in-memory records; the SQL queries use the same
// (recorded_at, id) ordering.
package history
