// Package api contains the HTTP handlers for the user and ad resources and
// the single error translator that maps store errors to response statuses.
package api
