// Package catalog models the reference tables of the parcel domain: package types,
// package statuses and facilities. Statuses carry no order of their own; only the
// time of the history records that use them matters.
package catalog
