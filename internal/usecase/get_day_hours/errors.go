package get_day_hours

import "errors"

var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrInvalidInput     = errors.New("invalid input data")
	ErrInternal         = errors.New("usecase: internal error")
)
