package world

import "errors"

// ErrInvalidArgument indicates the terrain cannot be turned into a World:
// it is empty, or it holds a non-finite height (NaN, ±Inf).
// Callers branch with errors.Is; the returned error carries the detail.
var ErrInvalidArgument = errors.New("world: invalid argument")
