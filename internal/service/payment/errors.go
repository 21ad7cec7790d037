package payment

import "errors"

var (
	ErrPaymentsDisabled = errors.New("payments are disabled platform-wide")
	ErrInvalidAmount    = errors.New("payment amount must be positive")
	ErrNotRequestOwner  = errors.New("payer is not the patient on this request")
)
