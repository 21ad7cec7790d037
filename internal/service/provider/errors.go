package provider

import "errors"

var (
	ErrNotFound             = errors.New("provider not found")
	ErrNotAProvider         = errors.New("user is not a service provider")
	ErrNoProvider           = errors.New("request has no provider assigned")
	ErrProviderInactive     = errors.New("provider account is not active")
	ErrProviderTypeMismatch = errors.New("provider type does not match request type")
	ErrSamePatientProvider  = errors.New("provider and patient cannot be the same user")
	ErrUnknownRequestType   = errors.New("unknown request type")
)
