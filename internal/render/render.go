// Package render lays out numeric sequences as C array initializer bodies.
package render

import (
	"bufio"
	"io"
	"strconv"
)

// Precision is the number of digits written after the decimal point for
// every floating-point value.
const Precision = 10

// Separator goes between two values on the same line.
const Separator = ", "

// Fixed formats v in fixed-point notation with Precision decimals.
// It never switches to exponent notation.
func Fixed(v float64) string {
	return strconv.FormatFloat(v, 'f', Precision, 64)
}

// Uint formats v in decimal.
func Uint[T ~uint8 | ~uint16 | ~uint32 | ~uint64](v T) string {
	return strconv.FormatUint(uint64(v), 10)
}

// Grouped writes values formatted by format, perLine to a line.
// Values on a line are joined by Separator; a line break is written as
// ",\n" followed by indent. Nothing precedes the first value and nothing
// follows the last one, so the caller owns the opening indent and the
// closing brace. perLine <= 0 keeps everything on one line.
func Grouped[T any](w io.Writer, values []T, perLine int, indent string, format func(T) string) error {
	bw := bufio.NewWriter(w)

	for i, v := range values {
		if i > 0 {
			if perLine > 0 && i%perLine == 0 {
				bw.WriteString(",\n")
				bw.WriteString(indent)
			} else {
				bw.WriteString(Separator)
			}
		}

		bw.WriteString(format(v))
	}

	return bw.Flush()
}
