package bloomfilter

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned when a filter cannot be constructed from
	// the supplied parameters. The more specific errors below wrap it.
	ErrConfiguration = errors.New("bloomfilter: invalid configuration")

	ErrInsufficientParameters = fmt.Errorf("%w: provide at least n and p, n and m, or m and p", ErrConfiguration)
	ErrInvalidParameter       = fmt.Errorf("%w: parameter out of range", ErrConfiguration)

	// ErrAmbiguousLookup is returned by InvertibleFilter.Get when every cell
	// probed for a key holds two or more pairs. Rebuilding with a larger
	// filter is the usual remedy.
	ErrAmbiguousLookup = errors.New("bloomfilter: ambiguous lookup, every probed cell holds several pairs")
)
