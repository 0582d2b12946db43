package domain

import "errors"

var (
	ErrEmptyCategory        = errors.New("car category has no candidate cars")
	ErrNoMatchingTaxBracket = errors.New("no tax bracket matches customer age")
	ErrRecordNotFound       = errors.New("record not found")
	ErrInvalidDays          = errors.New("rental days must be positive")
	ErrInvalidConfig        = errors.New("invalid config")
)
