// SPDX-License-Identifier: MIT

package filters

import "fmt"

// DefaultReferenceLag is the lag whose sign anchors every canonical filter.
// It is a convention of the reference analyses and has no physical meaning.
const DefaultReferenceLag = 7

const panicReferenceLagNegative = "filters: WithReferenceLag: lag must be ≥ 0, got %d"

// Option configures Canonicalize.
type Option func(*Options)

// Options is the resolved configuration of Canonicalize.
type Options struct {
	referenceLag int
}

// WithReferenceLag sets the sign-anchor lag. Panics on a negative lag.
// A lag beyond the filter length is reported by Canonicalize as ErrReferenceLag.
func WithReferenceLag(lag int) Option {
	if lag < 0 {
		panic(fmt.Sprintf(panicReferenceLagNegative, lag))
	}

	return func(o *Options) { o.referenceLag = lag }
}

// ReferenceLag returns the configured sign-anchor lag.
func (o Options) ReferenceLag() int { return o.referenceLag }

// gatherOptions resolves setters against the defaults, in order.
func gatherOptions(opts ...Option) Options {
	o := Options{referenceLag: DefaultReferenceLag}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}
