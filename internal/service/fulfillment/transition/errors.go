package transition

import "errors"

var (
	ErrNoItems = errors.New("request has no line items")
)
