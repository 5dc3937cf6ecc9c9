package domain

import "errors"

// ErrStoreUnavailable marks every failure of the underlying record store.
// The driver error stays in the chain next to it.
var ErrStoreUnavailable = errors.New("store unavailable")
