package service

import "errors"

// Sentinel errors the transport layer maps to HTTP status codes. Gating
// failures (ErrNotReady) are wrapped with a human-readable reason so the
// client can surface what is still missing.
var (
	ErrNotReady        = errors.New("step requirements not met")
	ErrUnknownSection  = errors.New("unknown section")
	ErrUnknownQuestion = errors.New("unknown question")
	ErrInvalid         = errors.New("invalid input")
)
