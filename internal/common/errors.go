// Package common defines sentinel errors and small helpers shared by the
// demomarket packages. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Identity errors.
	ErrorDuplicateEmail      = errors.New("email already registered")
	ErrorInvalidCredentials  = errors.New("invalid credentials")
	ErrorUnknownHasher       = errors.New("unknown password hasher")
	ErrorMalformedPasswdHash = errors.New("malformed password hash")

	// Catalog errors.
	ErrorInvalidPrice = errors.New("invalid price")

	// Configuration errors.
	ErrorUnknownStorage = errors.New("unknown storage backend")
)
