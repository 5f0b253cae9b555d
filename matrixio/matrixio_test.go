package matrixio_test

import (
	"bytes"
	"strings"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/dimmat/matrix"
	"github.com/katalvlaran/dimmat/matrixio"
)

var _ = Describe("Decode", func() {
	It("should read a bare YAML row sequence", func() {
		d, err := matrixio.Decode[int64](strings.NewReader("- [1, 2]\n- [3, 4]\n"))

		Expect(err).ToNot(HaveOccurred())
		Expect(cmp.Diff([][]int64{{1, 2}, {3, 4}}, d.ToRows())).To(BeEmpty())
	})

	It("should read JSON through the YAML parser", func() {
		d, err := matrixio.Decode[float64](strings.NewReader(`[[1.5, 2], [3, 4]]`))

		Expect(err).ToNot(HaveOccurred())
		Expect(cmp.Diff([][]float64{{1.5, 2}, {3, 4}}, d.ToRows())).To(BeEmpty())
	})

	It("should keep the name of a document", func() {
		doc, err := matrixio.DecodeDocument[int64](strings.NewReader("name: a\nrows: [[1, 2, 3]]\n"))

		Expect(err).ToNot(HaveOccurred())
		Expect(doc.Name).To(Equal("a"))
		Expect(cmp.Diff([][]int64{{1, 2, 3}}, doc.Rows)).To(BeEmpty())
	})

	Context("when the input is malformed", func() {
		It("should report empty input", func() {
			_, err := matrixio.Decode[int64](strings.NewReader(""))
			Expect(err).To(MatchError(matrixio.ErrEmpty))
		})

		It("should reject a scalar document", func() {
			_, err := matrixio.Decode[int64](strings.NewReader("42\n"))
			Expect(err).To(MatchError(matrixio.ErrBadDocument))
		})

		It("should reject ragged rows", func() {
			_, err := matrixio.Decode[int64](strings.NewReader("[[1, 2], [3]]"))
			Expect(err).To(MatchError(matrix.ErrBadShape))
		})

		It("should reject a mapping without rows", func() {
			_, err := matrixio.Decode[int64](strings.NewReader("name: x\n"))
			Expect(err).To(MatchError(matrix.ErrBadShape))
		})

		It("should reject fractional values for integer elements", func() {
			_, err := matrixio.Decode[int64](strings.NewReader("[[1.5]]"))
			Expect(err).To(MatchError(matrixio.ErrNotInteger))

			_, err = matrixio.Decode[int64](strings.NewReader("rows: [[1, 2.0]]"))
			Expect(err).To(MatchError(matrixio.ErrNotInteger))
		})

		It("should enforce the size limit", func() {
			_, err := matrixio.Decode[int64](strings.NewReader("[[1, 2, 3]]"), matrixio.WithMaxDim(2))
			Expect(err).To(MatchError(matrixio.ErrTooLarge))

			_, err = matrixio.Decode[int64](strings.NewReader("rows: [[1], [2], [3]]"), matrixio.WithMaxDim(2))
			Expect(err).To(MatchError(matrixio.ErrTooLarge))
		})

		It("should reject oversized input before decoding its values", func() {
			// a ragged or undecodable body still reports the size first
			_, err := matrixio.Decode[int64](strings.NewReader("[[1, 2, 3], [1]]"), matrixio.WithMaxDim(2))
			Expect(err).To(MatchError(matrixio.ErrTooLarge))

			_, err = matrixio.Decode[int64](strings.NewReader("[[a, b, c]]"), matrixio.WithMaxDim(2))
			Expect(err).To(MatchError(matrixio.ErrTooLarge))
		})
	})

	Context("when values are not finite", func() {
		const input = "[[.nan, 1]]"

		It("should reject them by default", func() {
			_, err := matrixio.Decode[float64](strings.NewReader(input))
			Expect(err).To(MatchError(matrix.ErrNaNInf))
		})

		It("should accept them when the Dense policy is relaxed", func() {
			d, err := matrixio.Decode[float64](strings.NewReader(input),
				matrixio.WithDenseOptions(matrix.WithNoValidateNaNInf()))
			Expect(err).ToNot(HaveOccurred())
			Expect(d.Cols()).To(Equal(2))
		})
	})
})

var _ = Describe("Encode", func() {
	var m *matrix.Dense[int64]

	BeforeEach(func() {
		var err error
		m, err = matrix.NewDenseFromRows([][]int64{{6, 8}, {10, 12}})
		Expect(err).ToNot(HaveOccurred())
	})

	It("should write compact JSON", func() {
		var buf bytes.Buffer
		Expect(matrixio.Encode(&buf, matrixio.FormatJSON, "sum", m)).To(Succeed())
		Expect(buf.String()).To(Equal(`{"name":"sum","rows":[[6,8],[10,12]]}` + "\n"))
	})

	It("should round-trip through YAML", func() {
		var buf bytes.Buffer
		Expect(matrixio.Encode(&buf, matrixio.FormatYAML, "sum", m)).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("name: sum"))

		doc, err := matrixio.DecodeDocument[int64](&buf)
		Expect(err).ToNot(HaveOccurred())
		Expect(doc.Name).To(Equal("sum"))
		Expect(cmp.Diff(m.ToRows(), doc.Rows)).To(BeEmpty())
	})

	It("should omit an empty name", func() {
		var buf bytes.Buffer
		Expect(matrixio.Encode(&buf, matrixio.FormatJSON, "", m)).To(Succeed())
		Expect(buf.String()).ToNot(ContainSubstring("name"))
	})

	It("should refuse unknown formats and nil matrices", func() {
		var buf bytes.Buffer
		Expect(matrixio.Encode(&buf, matrixio.Format("xml"), "", m)).To(MatchError(matrixio.ErrUnknownFormat))
		Expect(matrixio.Encode[int64](&buf, matrixio.FormatJSON, "", nil)).To(MatchError(matrix.ErrNilMatrix))
	})
})

var _ = Describe("ParseFormat", func() {
	DescribeTable("known and unknown names",
		func(in string, want matrixio.Format, ok bool) {
			got, err := matrixio.ParseFormat(in)
			if !ok {
				Expect(err).To(MatchError(matrixio.ErrUnknownFormat))
				return
			}
			Expect(err).ToNot(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("yaml", "yaml", matrixio.FormatYAML, true),
		Entry("yml", "YML", matrixio.FormatYAML, true),
		Entry("json", "json", matrixio.FormatJSON, true),
		Entry("toml", "toml", matrixio.Format(""), false),
	)
})

var _ = Describe("ParseScalar", func() {
	It("should parse integers and floats", func() {
		i, err := matrixio.ParseScalar[int64]("-3")
		Expect(err).ToNot(HaveOccurred())
		Expect(i).To(Equal(int64(-3)))

		f, err := matrixio.ParseScalar[float64]("0.25")
		Expect(err).ToNot(HaveOccurred())
		Expect(f).To(Equal(0.25))
	})

	It("should reject garbage and empty input", func() {
		_, err := matrixio.ParseScalar[int64]("three")
		Expect(err).To(HaveOccurred())

		_, err = matrixio.ParseScalar[int64]("  ")
		Expect(err).To(MatchError(matrixio.ErrEmpty))

		_, err = matrixio.ParseScalar[int64]("0.5")
		Expect(err).To(MatchError(matrixio.ErrNotInteger))
	})
})
