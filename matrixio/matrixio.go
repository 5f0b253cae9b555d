// SPDX-License-Identifier: MIT

// Package matrixio reads and writes row-major nested sequences, the external
// form of a matrix.
//
// Two input shapes are accepted, in YAML or JSON (JSON is read by the YAML
// parser as a subset):
//
//	[[1, 2], [3, 4]]
//
//	name: a
//	rows: [[1, 2], [3, 4]]
//
// Output is written as a document with a name and flow-style rows.
package matrixio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/dimmat/matrix"
	"golang.org/x/exp/constraints"
	"gopkg.in/yaml.v3"
)

// Real is the element constraint for I/O: integers and floats. Complex values
// have no YAML or JSON scalar form.
type Real interface {
	constraints.Integer | constraints.Float
}

// Format selects the output encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// DefaultMaxDim bounds rows and columns of decoded input.
const DefaultMaxDim = 4096

var (
	// ErrEmpty is returned when the input holds no document.
	ErrEmpty = errors.New("matrixio: empty input")

	// ErrBadDocument is returned when the top-level node is neither a sequence
	// of rows nor a mapping with a rows key.
	ErrBadDocument = errors.New("matrixio: expected a row sequence or a mapping with rows")

	// ErrTooLarge is returned when a decoded dimension exceeds the configured limit.
	ErrTooLarge = errors.New("matrixio: matrix too large")

	// ErrUnknownFormat is returned for a format other than yaml or json.
	ErrUnknownFormat = errors.New("matrixio: unknown format")

	// ErrNotInteger is returned when a fractional value is read into an
	// integer element type.
	ErrNotInteger = errors.New("matrixio: fractional value for integer element")
)

// Document is the named form of a row-major nested sequence.
type Document[E Real] struct {
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	Rows [][]E  `yaml:"rows" json:"rows"`
}

// ParseFormat maps "yaml", "yml" or "json" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// DecodeDocument reads one document from r and checks that its rows form a
// non-empty rectangle within the configured size limit.
func DecodeDocument[E Real](r io.Reader, opts ...Option) (Document[E], error) {
	o := gatherOptions(opts...)

	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return Document[E]{}, ErrEmpty
		}
		return Document[E]{}, fmt.Errorf("matrixio: decode: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return Document[E]{}, ErrEmpty
	}

	var doc Document[E]
	content := root.Content[0]
	switch content.Kind {
	case yaml.SequenceNode:
		if err := checkSize(content, o.maxDim); err != nil {
			return Document[E]{}, err
		}
		if err := checkScalars[E](content); err != nil {
			return Document[E]{}, err
		}
		if err := content.Decode(&doc.Rows); err != nil {
			return Document[E]{}, fmt.Errorf("matrixio: decode rows: %w", err)
		}
	case yaml.MappingNode:
		rows := mappingValue(content, "rows")
		if err := checkSize(rows, o.maxDim); err != nil {
			return Document[E]{}, err
		}
		if err := checkScalars[E](rows); err != nil {
			return Document[E]{}, err
		}
		if err := content.Decode(&doc); err != nil {
			return Document[E]{}, fmt.Errorf("matrixio: decode document: %w", err)
		}
	default:
		return Document[E]{}, fmt.Errorf("line %d: %w", content.Line, ErrBadDocument)
	}

	if err := matrix.ValidateRows(doc.Rows, -1, -1); err != nil {
		return Document[E]{}, fmt.Errorf("matrixio: %w", err)
	}

	return doc, nil
}

// Decode reads one document from r into a Dense. The document name is dropped;
// use DecodeDocument to keep it.
func Decode[E Real](r io.Reader, opts ...Option) (*matrix.Dense[E], error) {
	o := gatherOptions(opts...)
	doc, err := DecodeDocument[E](r, opts...)
	if err != nil {
		return nil, err
	}

	return matrix.NewDenseFromRows(doc.Rows, o.dense...)
}

// Encode writes m as a named document in format f. An empty name is omitted.
func Encode[E Real](w io.Writer, f Format, name string, m *matrix.Dense[E]) error {
	if m == nil {
		return fmt.Errorf("matrixio: encode: %w", matrix.ErrNilMatrix)
	}
	doc := Document[E]{Name: name, Rows: m.ToRows()}

	switch f {
	case FormatJSON:
		return json.NewEncoder(w).Encode(doc)
	case FormatYAML:
		return encodeYAML(w, doc)
	default:
		return fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
}

// encodeYAML renders rows in flow style, one row per line.
func encodeYAML[E Real](w io.Writer, doc Document[E]) error {
	var node yaml.Node
	if err := node.Encode(doc); err != nil {
		return fmt.Errorf("matrixio: encode: %w", err)
	}
	if rows := mappingValue(&node, "rows"); rows != nil {
		for _, row := range rows.Content {
			row.Style = yaml.FlowStyle
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return fmt.Errorf("matrixio: encode: %w", err)
	}

	return enc.Close()
}

// ParseScalar parses a single YAML/JSON scalar as E, e.g. a scale factor given
// on a command line.
func ParseScalar[E Real](s string) (E, error) {
	var v E
	if strings.TrimSpace(s) == "" {
		return v, fmt.Errorf("matrixio: scalar: %w", ErrEmpty)
	}
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(s), &node); err != nil {
		return v, fmt.Errorf("matrixio: scalar %q: %w", s, err)
	}
	if err := checkScalars[E](&node); err != nil {
		return v, err
	}
	if err := node.Decode(&v); err != nil {
		return v, fmt.Errorf("matrixio: scalar %q: %w", s, err)
	}

	return v, nil
}

// isInteger reports whether E truncates division.
func isInteger[E Real]() bool {
	var one E = 1
	return one/2 == 0
}

// checkScalars rejects float-tagged scalars under n when E is an integer type;
// the YAML decoder would otherwise truncate them.
func checkScalars[E Real](n *yaml.Node) error {
	if n == nil || !isInteger[E]() {
		return nil
	}
	if n.Kind == yaml.ScalarNode && n.ShortTag() == "!!float" {
		return fmt.Errorf("line %d: %q: %w", n.Line, n.Value, ErrNotInteger)
	}
	for _, c := range n.Content {
		if err := checkScalars[E](c); err != nil {
			return err
		}
	}

	return nil
}

// checkSize bounds the row count and every row length of the rows node
// before anything is decoded from it.
func checkSize(n *yaml.Node, maxDim int) error {
	if n == nil || n.Kind != yaml.SequenceNode {
		return nil
	}
	if len(n.Content) > maxDim {
		return fmt.Errorf("%d rows exceeds %d: %w", len(n.Content), maxDim, ErrTooLarge)
	}
	for i, row := range n.Content {
		if len(row.Content) > maxDim {
			return fmt.Errorf("row %d: %d columns exceeds %d: %w", i, len(row.Content), maxDim, ErrTooLarge)
		}
	}

	return nil
}

// mappingValue returns the value node for key, or nil.
func mappingValue(n *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}

	return nil
}
