package fulfillment

import "errors"

var (
	ErrNotFound          = errors.New("medical request not found")
	ErrNoItems           = errors.New("request needs at least one line item")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrFeedbackRequired  = errors.New("feedback is required for partial or out-of-stock outcomes")
	ErrItemCountMismatch = errors.New("availability report does not cover all line items")
	ErrNotRequestOwner   = errors.New("request does not belong to this patient")
	ErrNotAssigned       = errors.New("request is not assigned to this provider")
	ErrAlreadyCompleted  = errors.New("request is already completed")
	ErrAlreadyCancelled  = errors.New("request is already cancelled")
	ErrConflict          = errors.New("request was modified concurrently, retry")
)
