// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the static Matrix and the runtime Dense.
// This file contains ONLY type-level declarations: the element constraint and the
// dimension parameters. Errors and options live in dedicated files.
package matrix

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the element constraint: any integer, floating-point or complex type.
// Every member supports +, -, * and comparison against its zero value, which is all
// the kernels need.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Dim is a dimension parameter. Implementations are zero-size types whose Len
// reports a fixed, positive extent, e.g.
//
//	type D12 struct{}
//
//	func (D12) Len() int { return 12 }
//
// Using a Dim as a type parameter of Matrix makes the extent part of the matrix
// type, so operands of different shapes are rejected by the compiler.
type Dim interface {
	Len() int
}

// Predefined dimensions for the common small sizes.
type (
	D1  struct{}
	D2  struct{}
	D3  struct{}
	D4  struct{}
	D5  struct{}
	D6  struct{}
	D7  struct{}
	D8  struct{}
	D9  struct{}
	D10 struct{}
)

func (D1) Len() int  { return 1 }
func (D2) Len() int  { return 2 }
func (D3) Len() int  { return 3 }
func (D4) Len() int  { return 4 }
func (D5) Len() int  { return 5 }
func (D6) Len() int  { return 6 }
func (D7) Len() int  { return 7 }
func (D8) Len() int  { return 8 }
func (D9) Len() int  { return 9 }
func (D10) Len() int { return 10 }

// dimLen reads the extent carried by the dimension type D.
// A non-positive extent is a programmer error and panics with ErrInvalidDimensions.
func dimLen[D Dim]() int {
	var d D
	n := d.Len()
	if n <= 0 {
		panic(fmt.Errorf("dim %T: %d: %w", d, n, ErrInvalidDimensions))
	}

	return n
}
