// Package postgres provides PostgreSQL implementations of the store
// interfaces, along with error translation from driver-level errors to the
// sentinel errors defined in internal/store.
package postgres
