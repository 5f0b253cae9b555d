// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for runtime shape checks.
//  - Keep Dense kernels minimal by delegating nil/shape checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can add
//    an operation tag on top ("Mul: ValidateMulCompatible: matrix: dimension mismatch").
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing on the success path.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).
//  - The static Matrix never calls the shape validators: its shapes are types.
//    ValidateRows is the exception, since a nested slice has no static shape.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the Dense reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil[E Number](m *Dense[E]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil. Complexity: O(1).
func ValidateSameShape[E Number](a, b *Dense[E]) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateBinarySameShape[E Number](a, b *Dense[E]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil is the composite NotNil → Square.
// Errors: ErrNilMatrix, ErrNonSquare.
func ValidateSquareNonNil[E Number](m *Dense[E]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquareNonNil", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible[E Number](a, b *Dense[E]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRows checks that rows is a rows×cols row-major nested sequence.
// Pass rows < 0 or cols < 0 to accept any count along that axis (the shape is
// then taken from the data); every row must still have the same length.
//
// Errors:
//   - ErrBadShape naming the first offending row, or the row count.
//
// Complexity: O(len(rows)).
func ValidateRows[E Number](rows [][]E, wantRows, wantCols int) error {
	if len(rows) == 0 {
		return validatorErrorf("ValidateRows", fmt.Errorf("no rows: %w", ErrBadShape))
	}
	if wantRows >= 0 && len(rows) != wantRows {
		return validatorErrorf("ValidateRows",
			fmt.Errorf("have %d rows, want %d: %w", len(rows), wantRows, ErrBadShape))
	}
	if wantCols < 0 {
		wantCols = len(rows[0])
	}
	if wantCols == 0 {
		return validatorErrorf("ValidateRows", fmt.Errorf("row 0 is empty: %w", ErrBadShape))
	}
	for i, row := range rows {
		if len(row) != wantCols {
			return validatorErrorf("ValidateRows",
				fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), wantCols, ErrBadShape))
		}
	}

	return nil
}
