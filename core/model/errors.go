package model

import "errors"

// ErrInvalidParameter is returned when a study input or model argument lies
// outside its valid domain.
var ErrInvalidParameter = errors.New("invalid parameter")

// ErrComputation is returned when a numeric result cannot be represented,
// e.g. an overflowing binomial coefficient or a non-finite availability.
var ErrComputation = errors.New("computation error")
