// SPDX-License-Identifier: MIT
// Package matrix - plain-text persistence for Dense.
//
// Format:
//   - Input (Read/Load): whitespace-separated tokens "rows cols v11 v12 ... vrc",
//     values in row-major order; line breaks are not significant and trailing
//     tokens are ignored.
//   - Output (WriteTo/Save): one line per row, each value printed with five
//     fractional digits, rounded half-up on its shortest decimal form,
//     separated by a single space, '\n' terminated.
//     The output carries no shape header, so it is not directly readable by Read.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

const (
	opRead  = "Read"
	opWrite = "WriteTo"
	opLoad  = "Load"
	opSave  = "Save"

	codecPrecision = 5   // fractional digits written per value
	codecSep       = ' ' // value separator within a row
	codecEOL       = '\n'

	codecNaN    = "NaN"
	codecPosInf = "Infinity"
	codecNegInf = "-Infinity"

	// codecInitialCap bounds the up-front value buffer; larger inputs grow it.
	codecInitialCap = 1 << 16
)

// Compile-time assertion: Dense streams itself via io.WriterTo.
var _ io.WriterTo = (*Dense)(nil)

// Read parses a matrix from r.
//
// Implementation:
//   - Stage 1: scan two integer tokens (rows, cols) and validate the shape
//     before anything is allocated.
//   - Stage 2: scan rows*cols floats into a buffer that grows with the input,
//     so a header announcing more data than the stream holds fails with
//     ErrMalformedInput instead of reserving the announced size.
//
// Errors:
//   - ErrMalformedInput for a missing or unparsable token.
//   - ErrInvalidDimensions for rows ≤ 0, cols ≤ 0, or a rows*cols product
//     too large to allocate.
//   - ErrNaNInf for "NaN"/"Inf" tokens while the numeric policy is on.
//   - Underlying I/O errors are returned wrapped.
//
// Options:
//   - WithNoValidateNaNInf accepts non-finite values.
func Read(r io.Reader, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func(what string) (string, error) {
		if sc.Scan() {
			return sc.Text(), nil
		}
		if err := sc.Err(); err != nil {
			return "", err
		}

		return "", fmt.Errorf("missing %s: %w", what, ErrMalformedInput)
	}

	rows, err := scanInt(next, "rows")
	if err != nil {
		return nil, matrixErrorf(opRead, err)
	}
	cols, err := scanInt(next, "cols")
	if err != nil {
		return nil, matrixErrorf(opRead, err)
	}
	if err = validateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opRead, fmt.Errorf("shape %dx%d: %w", rows, cols, err))
	}

	total := rows * cols
	data := make([]float64, 0, min(total, codecInitialCap))
	var tok string
	var v float64
	for k := 0; k < total; k++ {
		if tok, err = next("value"); err != nil {
			return nil, matrixErrorf(opRead, err)
		}
		if v, err = strconv.ParseFloat(tok, 64); err != nil {
			return nil, matrixErrorf(opRead, fmt.Errorf("value %q at (%d,%d): %w", tok, k/cols, k%cols, ErrMalformedInput))
		}
		if o.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
			return nil, matrixErrorf(opRead, denseErrorf(ctxSet, k/cols, k%cols, ErrNaNInf))
		}
		data = append(data, v)
	}

	return &Dense{r: rows, c: cols, data: data, validateNaNInf: o.validateNaNInf}, nil
}

// scanInt pulls one token and parses it as a decimal int.
func scanInt(next func(string) (string, error), what string) (int, error) {
	tok, err := next(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", what, tok, ErrMalformedInput)
	}

	return n, nil
}

// WriteTo writes the matrix as text rows to w and reports the bytes written.
// Complexity: O(r*c); a single buffered writer, flushed once.
func (m *Dense) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	buf := make([]byte, 0, 32)

	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			buf = buf[:0]
			if j > 0 {
				buf = append(buf, codecSep)
			}
			buf = appendFixed(buf, m.data[i*m.c+j])
			if _, err := bw.Write(buf); err != nil {
				return cw.n, matrixErrorf(opWrite, err)
			}
		}
		if err := bw.WriteByte(codecEOL); err != nil {
			return cw.n, matrixErrorf(opWrite, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return cw.n, matrixErrorf(opWrite, err)
	}

	return cw.n, nil
}

// appendFixed appends v with codecPrecision fractional digits.
//
// Rounding is half-up (away from zero) on the shortest decimal form of v,
// so 0.015625 prints as 0.01563 and 2.000015 as 2.00002. A negative value
// that rounds to zero keeps its sign ("-0.00000"). Non-finite values print
// as NaN, Infinity and -Infinity, which Read parses back.
func appendFixed(dst []byte, v float64) []byte {
	switch {
	case math.IsNaN(v):
		return append(dst, codecNaN...)
	case math.IsInf(v, 1):
		return append(dst, codecPosInf...)
	case math.IsInf(v, -1):
		return append(dst, codecNegInf...)
	}
	s := decimal.NewFromFloat(v).StringFixed(codecPrecision)
	if math.Signbit(v) && s[0] != '-' {
		dst = append(dst, '-')
	}

	return append(dst, s...)
}

// countingWriter tracks bytes that reached the underlying writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}

// Load reads a matrix from the file at path (see Read for the format).
func Load(path string, opts ...Option) (*Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, matrixErrorf(opLoad, err)
	}
	defer f.Close()

	m, err := Read(f, opts...)
	if err != nil {
		return nil, matrixErrorf(opLoad, err)
	}

	return m, nil
}

// Save writes the matrix to path, creating or truncating the file.
func (m *Dense) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return matrixErrorf(opSave, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = matrixErrorf(opSave, cerr)
		}
	}()

	if _, err = m.WriteTo(f); err != nil {
		return matrixErrorf(opSave, err)
	}

	return nil
}
