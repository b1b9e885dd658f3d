// Package domain contains the core entities of the classifieds application
// and their validation rules. Entities here carry no persistence or transport
// concerns; those live in internal/store and internal/api respectively.
package domain
