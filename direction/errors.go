// SPDX-License-Identifier: MIT

package direction

import "errors"

var (
	// ErrInvalidDirection indicates a vector that is not one of the eight lattice steps.
	ErrInvalidDirection = errors.New("direction: not a unit lattice direction")

	// ErrUnknownName indicates a name that does not match any canonical direction.
	ErrUnknownName = errors.New("direction: unknown direction name")
)

// panic messages for programmer errors
const panicUnknownGroup = "direction: unknown group"
