// SPDX-License-Identifier: MIT

// Package qr: functional configuration.
//
// Notes:
//   - Options are resolved once, when the decomposition is created.
//   - Constructors panic only on nonsensical programmer input (nil logger).

package qr

import "go.uber.org/zap"

// DefaultValidateNaNInf toggles the up-front finite scan of Compute's input.
const DefaultValidateNaNInf = true

const panicNilLogger = "qr: WithLogger: logger must not be nil"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	logger         *zap.Logger // debug sink; zap.NewNop() by default
	validateNaNInf bool        // DefaultValidateNaNInf
}

// WithLogger routes the decomposition's debug events to l.
//
// Events (all at Debug level):
//   - "qr: decomposition complete" with rows, cols, rank, transpositions.
//   - "qr: rank deficiency detected" with the step and the corner magnitudes.
//   - "qr: inconsistent system" with the residual magnitudes seen by Solve.
//
// Panics when l is nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithValidateNaNInf makes Compute reject inputs holding NaN or ±Inf with
// matrix.ErrNaNInf before any work is done. This is the default.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf skips the up-front finite scan.
// Non-finite entries then flow into the kernels unchecked: Compute still
// fails with matrix.ErrNaNInf when a pivot value becomes non-finite, and
// otherwise the factors are unspecified.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns the package defaults.
func defaultOptions() Options {
	return Options{
		logger:         zap.NewNop(),
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
