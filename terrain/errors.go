// SPDX-License-Identifier: MIT
// Package: rainfall/terrain
//
// errors.go — sentinel errors for the terrain package.
//
// Callers branch with errors.Is; returned errors wrap these sentinels with
// the offending value or position.

package terrain

import "errors"

// ErrBadSize indicates a generator was asked for fewer than one column.
var ErrBadSize = errors.New("terrain: invalid size")

// ErrBadInput indicates a terrain file holds a token that is not a height.
var ErrBadInput = errors.New("terrain: invalid height")

// ErrEmpty indicates a terrain file holds no heights at all.
var ErrEmpty = errors.New("terrain: no heights")
