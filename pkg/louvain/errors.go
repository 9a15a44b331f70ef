package louvain

import "errors"

// ErrInvalidOptions is returned when the supplied Options fail validation.
var ErrInvalidOptions = errors.New("louvain: invalid options")

// ErrPriorMembershipSpan is returned when an incremental run's prior
// membership does not cover the current graph's span.
var ErrPriorMembershipSpan = errors.New("louvain: prior membership shorter than graph span")

// ErrBatchNotSymmetric is returned when an incremental batch's edge
// list does not carry both (u, v) and (v, u) for every update.
var ErrBatchNotSymmetric = errors.New("louvain: incremental batch is not symmetric")
