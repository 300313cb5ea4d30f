package idx

import "errors"

var (
	ErrInvalidSize    = errors.New("idx: invalid file size")
	ErrOutOfRange     = errors.New("idx: out of range")
	ErrInvalidMagic   = errors.New("idx: invalid magic")
	ErrInvalidPayload = errors.New("idx: invalid payload")
	ErrLimitExceeded  = errors.New("idx: limit exceeded")
	ErrValidation     = errors.New("idx: validation failed")
)
