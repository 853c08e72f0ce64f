package table

import "fmt"

// BitFormat selects how bits are displayed.
type BitFormat string

const (
	// FormatVF renders 1 as "V" and 0 as "F" (verdadeiro/falso).
	FormatVF BitFormat = "vf"

	// Format01 renders bits as "1" and "0".
	Format01 BitFormat = "01"
)

// ValidBitFormats lists the accepted BitFormat values.
var ValidBitFormats = []BitFormat{FormatVF, Format01}

// ParseBitFormat validates a user-supplied format name.
func ParseBitFormat(s string) (BitFormat, error) {
	for _, f := range ValidBitFormats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid bit format %q: must be one of %v", s, ValidBitFormats)
}

// Format renders a single bit.
func (f BitFormat) Format(b Bit) string {
	if f == Format01 {
		if b == 1 {
			return "1"
		}
		return "0"
	}
	if b == 1 {
		return "V"
	}
	return "F"
}

// Label is the display name of the format.
func (f BitFormat) Label() string {
	if f == Format01 {
		return "0/1"
	}
	return "V/F"
}

// FormatRow renders every bit of row.
func (f BitFormat) FormatRow(row Row) []string {
	out := make([]string, len(row))
	for i, b := range row {
		out[i] = f.Format(b)
	}
	return out
}
