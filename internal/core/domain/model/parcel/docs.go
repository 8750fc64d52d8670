// Package parcel provides the Package aggregate and its read model.
//
// The package includes:
//   - Package: the aggregate keyed by tracking number, with whitelisted updates and soft delete
//   - Update: the static set of fields a privileged caller may change
//   - View: the joined listing row (type label, party names, derived current status)
//
// A package never stores its own status. The status history ledger is the only
// source of the current status.
package parcel
