package service

import "errors"

// Ledger error kinds. Repositories return storage errors; services
// translate them here so nothing gorm-specific crosses the boundary.
// Handlers map these sentinels to HTTP statuses with errors.Is.
var (
	// ErrNotFound covers unknown product and sale references.
	ErrNotFound = errors.New("not found")
	// ErrConflict signals a duplicate unique key on registration.
	ErrConflict = errors.New("duplicate product code")
	// ErrInsufficientStock rejects any decrement larger than the
	// on-hand quantity; the quantity is left unchanged.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrInvalidInput covers out-of-range fields that slipped past
	// request validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrSalesDisabled is returned by sale and movement operations when
	// the ledger runs in reduced mode.
	ErrSalesDisabled = errors.New("sales tracking disabled")
)
