// Package user provides the User aggregate: an account with a role, a password hash
// and the display name used in package listings.
package user
