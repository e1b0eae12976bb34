package cache

import "errors"

var (
	// ErrConfiguration is returned by Builder.Build when the requested
	// geometry is invalid.
	ErrConfiguration = errors.New("invalid cache configuration")

	// ErrAddressRange is returned when an address does not fit in the
	// cache's address width.
	ErrAddressRange = errors.New("address out of range")

	// ErrInvalidLine is returned when a line that holds no valid data is
	// marked dirty.
	ErrInvalidLine = errors.New("line is not valid")
)
