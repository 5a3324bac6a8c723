// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package xyscope

import (
	"math"
)

// digitEpsilon is the least tolerance for binary representation error when
// a fractional digit is extracted, so that 0.3 yields the digit 3 rather
// than 2.
const digitEpsilon = 1e-9

// FormatNumber returns the characters PrintNumber draws for v.
//
// With zero decimal places, v is truncated toward zero and printed as an
// integer. Otherwise the sign, the integer digits, a decimal point and the
// fractional digits are printed, each fractional digit obtained by scaling
// the remainder by ten and truncating: 3.145 to two places is "3.14", not
// "3.15".
func FormatNumber(v float64, opts NumberOptions) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	places := opts.places()
	var b []byte
	if places == 0 {
		n := math.Trunc(v)
		if n < 0 {
			b = append(b, '-')
		}
		return string(appendDigits(b, math.Abs(n)))
	}

	if v < 0 {
		b = append(b, '-')
	}
	a := math.Abs(v)
	ip := math.Floor(a)
	b = appendDigits(b, ip)
	b = append(b, '.')
	frac := a - ip
	// ulp is the representation error of a, scaled along with frac.
	ulp := math.Nextafter(a, math.Inf(1)) - a
	for i := 0; i < places; i++ {
		frac *= 10
		ulp *= 10
		d := math.Floor(frac + math.Max(digitEpsilon, ulp))
		if d > 9 {
			d = 9
		}
		b = append(b, '0'+byte(d))
		frac -= d
		if frac < 0 {
			frac = 0
		}
	}
	return string(b)
}

// appendDigits appends the decimal digits of the non-negative integer n,
// most significant first. Zero is a single "0".
func appendDigits(b []byte, n float64) []byte {
	if n < 1 {
		return append(b, '0')
	}
	start := len(b)
	for n >= 1 {
		d := math.Mod(n, 10)
		b = append(b, '0'+byte(d))
		n = math.Floor(n / 10)
	}
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

// PrintNumber draws v at the cursor as FormatNumber formats it.
func (r *Renderer) PrintNumber(v float64, opts NumberOptions) {
	r.begin()
	for _, c := range []byte(FormatNumber(v, opts)) {
		r.putChar(c, opts.Underline)
	}
	r.end("number")
}
