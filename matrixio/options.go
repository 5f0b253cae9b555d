// SPDX-License-Identifier: MIT

package matrixio

import (
	"fmt"

	"github.com/katalvlaran/dimmat/matrix"
)

// Option configures decoding.
type Option func(*options)

type options struct {
	maxDim int             // DefaultMaxDim
	dense  []matrix.Option // forwarded to matrix.NewDenseFromRows
}

// WithMaxDim bounds the rows and columns accepted by Decode.
// It panics when n <= 0.
func WithMaxDim(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("matrixio: WithMaxDim: n must be > 0, got %d", n))
	}

	return func(o *options) { o.maxDim = n }
}

// WithDenseOptions forwards options to the Dense built by Decode, e.g.
// matrix.WithNoValidateNaNInf() to accept .nan and .inf values.
func WithDenseOptions(opts ...matrix.Option) Option {
	return func(o *options) { o.dense = append(o.dense, opts...) }
}

func gatherOptions(user ...Option) options {
	o := options{maxDim: DefaultMaxDim}
	for _, set := range user {
		set(&o)
	}

	return o
}
