// SPDX-License-Identifier: MIT

package matrix

import "github.com/sirupsen/logrus"

// Test-Bridge (White-Box) for Private Kernels and Options Snapshot
//
// Purpose:
//   - Expose UNEXPORTED ew* micro-kernels, panic messages and an options
//     snapshot to matrix_test ONLY.
//   - Being a _test.go file in package matrix, it is compiled only by
//     `go test` and never widens the production API.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields. If Options
//     changes, update snapshotOf accordingly (tests will catch drift).

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicMaxSweepsInvalid_TestOnly = panicMaxSweepsInvalid
	PanicLoggerNil_TestOnly        = panicLoggerNil
)

// --- ew* micro-kernel bridges -------------------------------------------------

// EwScaleCols_TestOnly forwards to ewScaleCols.
func EwScaleCols_TestOnly(X Matrix, scale []float64) (*Dense, error) {
	return ewScaleCols(X, scale)
}

// EwScaleRows_TestOnly forwards to ewScaleRows.
func EwScaleRows_TestOnly(X Matrix, scale []float64) (*Dense, error) {
	return ewScaleRows(X, scale)
}

// EwAllClose_TestOnly forwards to ewAllClose.
func EwAllClose_TestOnly(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// GaussJordanPivots_TestOnly inverts d in place and returns the pivot row and
// column chosen at each elimination step.
func GaussJordanPivots_TestOnly(d *Dense) (rows, cols []int, err error) {
	return d.gaussJordan()
}

// ValidatesNaNInf_TestOnly reports the numeric policy carried by d.
func ValidatesNaNInf_TestOnly(d *Dense) bool { return d.validateNaNInf }

// --- options snapshot bridge --------------------------------------------------

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
type OptionsSnapshot struct {
	ValidateNaNInf bool
	MaxSweeps      int
	PositiveOnly   bool
	HasLogger      bool
	Logger         logrus.FieldLogger
}

// NewMatrixOptionsSnapshot_TestOnly builds Options via public Option funcs and returns a snapshot.
func NewMatrixOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(NewMatrixOptions(opts...))
}

// snapshotOf copies internal fields to a public struct. Keep in sync with Options layout.
func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		ValidateNaNInf: o.validateNaNInf,
		MaxSweeps:      o.maxSweeps,
		PositiveOnly:   o.positiveOnly,
		HasLogger:      o.logger != nil,
		Logger:         o.logger,
	}
}
