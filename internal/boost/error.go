package boost

import "errors"

var (
	ErrUnknownCode   = errors.New("unknown discount code")
	ErrIneligible    = errors.New("stay is not eligible for discount code")
	ErrInvalidRule   = errors.New("invalid discount rule")
	ErrDuplicateCode = errors.New("discount code already registered")
)
