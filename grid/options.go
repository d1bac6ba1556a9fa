// SPDX-License-Identifier: MIT

// Package grid: functional configuration for grid construction.
//
// The only policy is access validation. Checked access is the default; the
// unchecked fast path must be requested explicitly and is meant for hot loops
// whose coordinates are already known to be in range.

package grid

// DefaultValidate enables bounds-checked access on Get/Set and iteration.
const DefaultValidate = true

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validate bool // DefaultValidate
}

// WithValidation selects bounds-checked access (the default).
// Out-of-range accesses return *BoundsError.
func WithValidation() Option {
	return func(o *Options) { o.validate = true }
}

// WithUncheckedAccess selects raw indexing without coordinate validation.
//
// Behavior highlights:
//   - Get/Set compute the flat index and touch the backing slice directly.
//   - A coordinate that maps inside the slice but outside the grid is NOT
//     detected; an index outside the slice panics with the runtime bounds panic.
//   - No clamping or wraparound is ever applied.
//
// Complexity: saves one comparison pair per access.
func WithUncheckedAccess() Option {
	return func(o *Options) { o.validate = false }
}

// gatherOptions resolves opts on top of the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{validate: DefaultValidate}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
