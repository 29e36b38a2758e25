package model

import "errors"

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a resource already exists.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotValid is returned when a resource is not valid.
	ErrNotValid = errors.New("not valid")
	// ErrTransient is returned when the remote control plane is temporarily
	// unreachable or rate limited. Callers may retry the whole operation,
	// the lifecycle layer never retries internally.
	ErrTransient = errors.New("transient remote failure")
	// ErrRejected is returned when the remote control plane rejects a
	// provisioning request (quota exceeded, invalid image, auth failure).
	ErrRejected = errors.New("provisioning rejected")
	// ErrNotImplemented is returned by placeholder backends that have no
	// real remote integration behind them.
	ErrNotImplemented = errors.New("not implemented")
)
