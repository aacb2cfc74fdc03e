// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the dense kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Options are consumed by Eigen (sweep cap, eigenpair filter, logger) and
//     by the constructors that ingest external data (Read, Load, NewFromRows)
//     for the numeric policy.
package matrix

import (
	"io"

	"github.com/sirupsen/logrus"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set/AddAt/Apply.
	DefaultValidateNaNInf = true

	// DefaultMaxSweeps bounds the cyclic Jacobi solver. Reaching the bound is
	// not an error: the best estimate so far is returned.
	DefaultMaxSweeps = 50

	// DefaultPositiveOnly keeps only eigenpairs with λ > 0.
	DefaultPositiveOnly = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxSweepsInvalid = "matrix: WithMaxSweeps: sweeps must be > 0"
	panicLoggerNil        = "matrix: WithLogger: logger must not be nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	// numeric policy
	validateNaNInf bool // DefaultValidateNaNInf

	// eigen solver
	maxSweeps    int                // DefaultMaxSweeps
	positiveOnly bool               // DefaultPositiveOnly
	logger       logrus.FieldLogger // discard logger unless WithLogger
}

// ---------- Constructors (WithX) ----------

// WithValidateNaNInf enables rejection of NaN/±Inf on Set/AddAt/Apply for
// matrices built by option-aware constructors.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-only numeric policy.
// Use for controlled ingestion of data that legitimately carries ±Inf.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithMaxSweeps overrides the Jacobi sweep cap.
// Panics if sweeps <= 0.
func WithMaxSweeps(sweeps int) Option {
	if sweeps <= 0 {
		panic(panicMaxSweepsInvalid)
	}

	return func(o *Options) { o.maxSweeps = sweeps }
}

// WithAllEigenpairs makes Eigen return all n eigenpairs, including
// zero and negative eigenvalues.
func WithAllEigenpairs() Option {
	return func(o *Options) { o.positiveOnly = false }
}

// WithPositiveEigenpairs restores the default filter (λ > 0 only).
func WithPositiveEigenpairs() Option {
	return func(o *Options) { o.positiveOnly = true }
}

// WithLogger routes Eigen diagnostics (convergence, sweep cap) to l.
// Panics if l is nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// --------------------------- Option Resolution ---------------------------

// NewMatrixOptions resolves option setters against documented defaults.
// Last-writer-wins; pure function.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry for kernels.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		maxSweeps:      DefaultMaxSweeps,
		positiveOnly:   DefaultPositiveOnly,
		logger:         discardLog,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// discardLog is the package-wide default logger; its output goes nowhere.
var discardLog logrus.FieldLogger = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
