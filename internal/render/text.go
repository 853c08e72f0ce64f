// Package render prints truth tables for people.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/roach88/truthtable/internal/table"
)

// ResultHeader is the column title of the evaluated expression.
const ResultHeader = "Result"

// columnGap separates table columns.
const columnGap = "  "

// Options controls text rendering.
type Options struct {
	// Bits selects V/F or 0/1. Empty means table.FormatVF.
	Bits table.BitFormat

	// Colors paints the result column. Nil disables colour.
	Colors *Colors
}

// Text writes a meta line and an aligned table for r.
//
//	Expression: a & b  •  Rows: 4  •  Format: V/F
//
//	A  B  Result
//	F  F  F
//	...
func Text(w io.Writer, r *table.Result, opts Options) error {
	bits := opts.Bits
	if bits == "" {
		bits = table.FormatVF
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "Expression: %s  •  Rows: %d  •  Format: %s\n\n", r.Expr, len(r.Rows), bits.Label())

	headers := make([]string, 0, len(r.Vars)+1)
	headers = append(headers, r.Vars...)
	headers = append(headers, ResultHeader)
	buf.WriteString(strings.Join(headers, columnGap))
	buf.WriteByte('\n')

	for _, row := range r.Rows {
		cells := bits.FormatRow(row)
		last := len(cells) - 1
		for i := 0; i < last; i++ {
			buf.WriteString(pad(cells[i], len(headers[i])))
			buf.WriteString(columnGap)
		}
		buf.WriteString(opts.Colors.paint(row[last], cells[last]))
		buf.WriteByte('\n')
	}

	_, err := io.WriteString(w, buf.String())
	return err
}

// Summary writes the classification and fingerprint of r.
func Summary(w io.Writer, r *table.Result) error {
	fp, err := r.Fingerprint()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Classification: %s\nFingerprint: %s\n", r.Classification(), fp)
	return err
}

func pad(s string, width int) string {
	if n := len(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
