// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/dimmat/internal/config"
	"github.com/katalvlaran/dimmat/matrix"
	"github.com/katalvlaran/dimmat/matrixio"
)

// binaryOp names a two-operand subcommand.
type binaryOp int

const (
	opAdd binaryOp = iota
	opSub
	opMul
)

// stdinPath selects standard input as an operand.
const stdinPath = "-"

// byElem runs the variant matching the configured element type.
func (a *app) byElem(ints, floats func() error) error {
	switch a.cfg.Elem {
	case config.ElemInt64:
		return ints()
	case config.ElemFloat64:
		return floats()
	default:
		return fmt.Errorf("elem %q: %w", a.cfg.Elem, config.ErrInvalid)
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE",
		Short: "decode a matrix and print it in the output format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.byElem(
				func() error { return runShow[int64](a, cmd, args[0]) },
				func() error { return runShow[float64](a, cmd, args[0]) },
			)
		},
	}
}

func newBinaryCmd(a *app, use, short string, op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   use + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.byElem(
				func() error { return runBinary[int64](a, cmd, args, op) },
				func() error { return runBinary[float64](a, cmd, args, op) },
			)
		},
	}
}

func newScaleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scale A S",
		Short: "multiply every element of A by the scalar S",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.byElem(
				func() error { return runScale[int64](a, cmd, args[0], args[1]) },
				func() error { return runScale[float64](a, cmd, args[0], args[1]) },
			)
		},
	}
}

func newTransposeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "transpose A",
		Short: "print the transpose of A",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.byElem(
				func() error { return runTranspose[int64](a, cmd, args[0]) },
				func() error { return runTranspose[float64](a, cmd, args[0]) },
			)
		},
	}
}

func newTraceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trace A",
		Short: "print the diagonal sum of a square A",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.byElem(
				func() error { return runTrace[int64](a, cmd, args[0]) },
				func() error { return runTrace[float64](a, cmd, args[0]) },
			)
		},
	}
}

func newEqualCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "equal A B",
		Short: "print true when A - B is the zero matrix",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.byElem(
				func() error { return runEqual[int64](a, cmd, args[0], args[1]) },
				func() error { return runEqual[float64](a, cmd, args[0], args[1]) },
			)
		},
	}
}

func runShow[E matrixio.Real](a *app, cmd *cobra.Command, path string) error {
	doc, err := loadDocument[E](a, cmd, path)
	if err != nil {
		return err
	}
	m, err := matrix.NewDenseFromRows(doc.Rows)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return emit(a, cmd, doc.Name, m)
}

func runBinary[E matrixio.Real](a *app, cmd *cobra.Command, args []string, op binaryOp) error {
	x, err := load[E](a, cmd, args[0])
	if err != nil {
		return err
	}
	y, err := load[E](a, cmd, args[1])
	if err != nil {
		return err
	}

	var (
		out  *matrix.Dense[E]
		name string
	)
	switch op {
	case opAdd:
		out, err = matrix.AddDense(x, y)
		name = "sum"
	case opSub:
		out, err = matrix.SubDense(x, y)
		name = "difference"
	case opMul:
		out, err = matrix.MulDense(x, y)
		name = "product"
	default:
		return fmt.Errorf("binary op %d: unsupported", op)
	}
	if err != nil {
		return err
	}

	return emit(a, cmd, name, out)
}

func runScale[E matrixio.Real](a *app, cmd *cobra.Command, path, scalar string) error {
	s, err := matrixio.ParseScalar[E](scalar)
	if err != nil {
		return err
	}
	x, err := load[E](a, cmd, path)
	if err != nil {
		return err
	}
	out, err := matrix.ScaleDense(x, s)
	if err != nil {
		return err
	}

	return emit(a, cmd, "scaled", out)
}

func runTranspose[E matrixio.Real](a *app, cmd *cobra.Command, path string) error {
	x, err := load[E](a, cmd, path)
	if err != nil {
		return err
	}
	out, err := matrix.TransposeDense(x)
	if err != nil {
		return err
	}

	return emit(a, cmd, "transposed", out)
}

func runTrace[E matrixio.Real](a *app, cmd *cobra.Command, path string) error {
	x, err := load[E](a, cmd, path)
	if err != nil {
		return err
	}
	tr, err := matrix.TraceDense(x)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), tr)

	return err
}

func runEqual[E matrixio.Real](a *app, cmd *cobra.Command, pathA, pathB string) error {
	x, err := load[E](a, cmd, pathA)
	if err != nil {
		return err
	}
	y, err := load[E](a, cmd, pathB)
	if err != nil {
		return err
	}
	eq, err := matrix.EqualDense(x, y)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), eq)

	return err
}

// loadDocument decodes one operand from a file or, for "-", from stdin.
func loadDocument[E matrixio.Real](a *app, cmd *cobra.Command, path string) (matrixio.Document[E], error) {
	opts := []matrixio.Option{matrixio.WithMaxDim(a.cfg.MaxDim)}

	if path == stdinPath {
		doc, err := matrixio.DecodeDocument[E](cmd.InOrStdin(), opts...)
		if err != nil {
			return doc, fmt.Errorf("stdin: %w", err)
		}
		a.logLoaded(path, doc.Rows)
		return doc, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return matrixio.Document[E]{}, err
	}
	defer f.Close()

	doc, err := matrixio.DecodeDocument[E](f, opts...)
	if err != nil {
		return doc, fmt.Errorf("%s: %w", path, err)
	}
	a.logLoaded(path, doc.Rows)

	return doc, nil
}

// load decodes one operand into a Dense.
func load[E matrixio.Real](a *app, cmd *cobra.Command, path string) (*matrix.Dense[E], error) {
	doc, err := loadDocument[E](a, cmd, path)
	if err != nil {
		return nil, err
	}
	m, err := matrix.NewDenseFromRows(doc.Rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

func (a *app) logLoaded(path string, rows any) {
	if ce := a.log.Check(zap.DebugLevel, "operand loaded"); ce != nil {
		ce.Write(zap.String("path", path), zap.Any("rows", rows))
	}
}

// emit writes m to stdout in the configured format.
func emit[E matrixio.Real](a *app, cmd *cobra.Command, name string, m *matrix.Dense[E]) error {
	r, c := m.Shape()
	a.log.Debug("result", zap.String("name", name), zap.Int("rows", r), zap.Int("cols", c))

	return matrixio.Encode(cmd.OutOrStdout(), a.format, name, m)
}
