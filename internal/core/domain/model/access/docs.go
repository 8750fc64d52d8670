// Package access holds the role hierarchy and the ownership rules that gate every
// protected operation.
//
// The package includes:
//   - Role: the ordered set user < sorter < admin with an integer rank
//   - Principal: the authenticated caller (user id and role)
//   - Owns and CanView: the single sender/receiver predicate shared by visibility
//     filtering and mutation checks
//
// Checks fail closed: unknown roles and zero-value principals satisfy nothing.
package access
