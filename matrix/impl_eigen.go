// SPDX-License-Identifier: MIT
// Package matrix - symmetric eigen-decomposition by cyclic Jacobi rotations.
//
// Purpose:
//   - Diagonalize a real symmetric matrix with a sequence of plane rotations
//     while accumulating them into V, so that Aₖ → diag(λ) and the columns of
//     V become the eigenvectors.
//
// Behavior highlights:
//   - Sweeps 1-3 only rotate pairs whose |A[p,q]| exceeds 0.2·Σ|offdiag|/n²;
//     later sweeps rotate every non-zero pair.
//   - From sweep 5 on, off-diagonal entries negligible against both diagonal
//     entries are set to zero without rotating.
//   - Diagonal updates are accumulated per sweep (b += z) to limit rounding drift.
//
// Complexity:
//   - O(n³) per sweep; quadratic convergence typically needs 6-10 sweeps.

package matrix

import (
	"math"
	"slices"

	"github.com/sirupsen/logrus"
)

const (
	// jacobiEps is the relative negligibility bound used by the solver.
	jacobiEps = 1e-18

	// jacobiScale amplifies |A[p,q]| before comparing it with jacobiEps·|d|.
	jacobiScale = 100.0

	// jacobiEarlyThresholdSweeps is the count of leading sweeps that use a
	// non-zero rotation threshold.
	jacobiEarlyThresholdSweeps = 3

	// jacobiThresholdFactor sets the early threshold as a share of the
	// off-diagonal magnitude averaged over n² entries.
	jacobiThresholdFactor = 0.2

	// jacobiSnapAfterSweep is the sweep after which negligible entries are snapped to zero.
	jacobiSnapAfterSweep = 4
)

// Log field keys for solver diagnostics.
const (
	logFieldSweeps      = "sweeps"
	logFieldOrder       = "order"
	logFieldOffDiagonal = "off_diagonal"
)

// Eigen computes eigenpairs of a symmetric matrix by the cyclic Jacobi method.
//
// Implementation:
//   - Stage 1: validate non-nil, square, exactly symmetric; copy A; V = I;
//     d = b = diag(A); z = 0.
//   - Stage 2: up to maxSweeps sweeps over the strict upper triangle in
//     row-major order. A sweep that starts with Σ|A[p,q]| == 0 ends the run.
//   - Stage 3: keep eigenvalues d[i] > 0 (all of them with WithAllEigenpairs),
//     pair each with column i of V and sort by descending eigenvalue.
//
// Options:
//   - WithMaxSweeps(n): sweep cap (default DefaultMaxSweeps).
//   - WithAllEigenpairs / WithPositiveEigenpairs: eigenvalue filter.
//   - WithLogger(l): Debug entry on convergence, Warn entry when the cap is hit.
//
// Returns:
//   - []Eigenpair: possibly empty (e.g. for a negative-definite input under
//     the default filter), never nil on success.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNotSymmetric.
//
// Determinism:
//   - Fixed (p,q) visiting order and a stable sort: equal eigenvalues keep
//     ascending diagonal-index order.
//
// Notes:
//   - Reaching the sweep cap is not an error; the current estimates are returned.
//
// AI-Hints:
//   - Eigenvectors are unit length; their sign is not normalized.
//   - For the full spectrum of an indefinite matrix pass WithAllEigenpairs.
func Eigen(m Matrix, opts ...Option) ([]Eigenpair, error) {
	o := gatherOptions(opts...)
	if err := ValidateSymmetric(m); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	a, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	n := a.r
	v, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}

	d := make([]float64, n)
	b := make([]float64, n)
	z := make([]float64, n)
	var ip, iq, j int
	for ip = 0; ip < n; ip++ {
		d[ip] = a.data[ip*n+ip]
		b[ip] = d[ip]
	}

	var (
		sweep                 int
		converged             bool
		sm, threshold         float64
		g, h, t, theta        float64
		c, s, tau, apq        float64
		nSquared              = float64(n * n)
		absDP, absDQ, absDiff float64
	)
	for sweep = 1; sweep <= o.maxSweeps; sweep++ {
		sm = offDiagonalSum(a)
		if sm == 0 {
			converged = true

			break
		}
		threshold = 0
		if sweep <= jacobiEarlyThresholdSweeps {
			threshold = jacobiThresholdFactor * sm / nSquared
		}
		for ip = 0; ip < n-1; ip++ {
			for iq = ip + 1; iq < n; iq++ {
				apq = a.data[ip*n+iq]
				g = jacobiScale * math.Abs(apq)
				absDP, absDQ = math.Abs(d[ip]), math.Abs(d[iq])
				if sweep > jacobiSnapAfterSweep && g <= jacobiEps*absDP && g <= jacobiEps*absDQ {
					a.data[ip*n+iq] = 0

					continue
				}
				if math.Abs(apq) <= threshold {
					continue
				}

				// Rotation angle from the 2×2 subproblem.
				h = d[iq] - d[ip]
				absDiff = math.Abs(h)
				if g <= jacobiEps*absDiff {
					t = apq / h
				} else {
					theta = 0.5 * h / apq
					t = 1 / (math.Abs(theta) + math.Sqrt(1+theta*theta))
					if theta < 0 {
						t = -t
					}
				}
				c = 1 / math.Sqrt(1+t*t)
				s = t * c
				tau = s / (1 + c)
				h = t * apq
				z[ip] -= h
				z[iq] += h
				d[ip] -= h
				d[iq] += h
				a.data[ip*n+iq] = 0

				// Update the remaining upper-triangle entries of rows/cols ip, iq.
				for j = 0; j < ip; j++ {
					a.rotate(s, tau, j, ip, j, iq)
				}
				for j = ip + 1; j < iq; j++ {
					a.rotate(s, tau, ip, j, j, iq)
				}
				for j = iq + 1; j < n; j++ {
					a.rotate(s, tau, ip, j, iq, j)
				}
				// Accumulate the rotation into the eigenvector basis.
				for j = 0; j < n; j++ {
					v.rotate(s, tau, j, ip, j, iq)
				}
			}
		}
		for ip = 0; ip < n; ip++ {
			b[ip] += z[ip]
			d[ip] = b[ip]
			z[ip] = 0
		}
	}

	log := o.logger.WithFields(logrus.Fields{
		logFieldOrder: n,
	})
	if converged {
		log.WithField(logFieldSweeps, sweep).Debug("jacobi: converged")
	} else {
		log.WithFields(logrus.Fields{
			logFieldSweeps:      o.maxSweeps,
			logFieldOffDiagonal: offDiagonalSum(a),
		}).Warn("jacobi: sweep cap reached before convergence")
	}

	pairs := make([]Eigenpair, 0, n)
	var i, r int
	for i = 0; i < n; i++ {
		if o.positiveOnly && !(d[i] > 0) {
			continue
		}
		vec := make([]float64, n)
		for r = 0; r < n; r++ {
			vec[r] = v.data[r*n+i]
		}
		pairs = append(pairs, Eigenpair{value: d[i], vector: vec})
	}
	slices.SortStableFunc(pairs, CompareEigenpairs)

	return pairs, nil
}

// rotate applies one Jacobi plane rotation to the entry pair (i,j), (k,l):
//
//	g, h := A[i,j], A[k,l]
//	A[i,j] = g - s·(h + g·τ)
//	A[k,l] = h + s·(g - h·τ)
func (m *Dense) rotate(s, tau float64, i, j, k, l int) {
	g := m.data[i*m.c+j]
	h := m.data[k*m.c+l]
	m.data[i*m.c+j] = g - s*(h+g*tau)
	m.data[k*m.c+l] = h + s*(g-h*tau)
}

// offDiagonalSum returns Σ_{p<q} |A[p,q]| over the strict upper triangle.
func offDiagonalSum(a *Dense) float64 {
	n := a.c
	sum := ZeroSum
	var p, q int
	for p = 0; p < n-1; p++ {
		for q = p + 1; q < n; q++ {
			sum += math.Abs(a.data[p*n+q])
		}
	}

	return sum
}
