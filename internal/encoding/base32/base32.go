// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: Copyright (c) 2025 UnderNET

// Package base32 implements the RFC 4648 base32 encoding used for OTP seeds.
//
// The decoder is deliberately lenient about anything that is not an alphabet
// character: whitespace and other junk from copy-pasted or line-wrapped
// secrets is skipped rather than rejected. Truncated input that cannot be
// resolved by padding is rejected with the exact number of missing bits.
package base32

import (
	"fmt"
	"strings"
)

const (
	stdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	hexAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUV"

	padChar  = '='
	wrapCols = 72
)

// symbols covering the input bits of a partial group of n bytes (n = 0..5).
var encGroupSymbols = [6]int{0, 2, 4, 5, 7, 8}

// Encoding is a base32 alphabet mapping 5-bit values to symbols. The zero
// value is not usable; construct with NewEncoding or use StdEncoding or
// HexEncoding.
type Encoding struct {
	alphabet  string
	decodeMap [256]byte
}

// StdEncoding is the standard RFC 4648 alphabet (A-Z2-7) used by TOTP seeds.
var StdEncoding = NewEncoding(stdAlphabet)

// HexEncoding is the "Extended Hex" RFC 4648 alphabet (0-9A-V). It is not
// used for OTP seeds but is part of the general codec contract.
var HexEncoding = NewEncoding(hexAlphabet)

// NewEncoding returns an Encoding for the given 32-symbol alphabet. It panics
// if the alphabet does not contain exactly 32 distinct symbols, as that is a
// programmer error rather than a runtime condition.
func NewEncoding(alphabet string) *Encoding {
	if len(alphabet) != 32 {
		panic("base32: alphabet must contain exactly 32 symbols")
	}
	e := &Encoding{alphabet: alphabet}
	for i := range e.decodeMap {
		e.decodeMap[i] = 0xFF
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if e.decodeMap[c] != 0xFF {
			panic("base32: alphabet contains duplicate symbols")
		}
		e.decodeMap[c] = byte(i)
	}
	return e
}

// MalformedInputError reports base32 input that ended mid-group without
// padding, leaving the trailing bytes ambiguous.
type MalformedInputError struct {
	// MissingBits is the number of bits short of a full 40-bit group.
	MissingBits int
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("base32: malformed input: %d bits missing", e.MissingBits)
}

// Encode returns the base32 encoding of src. If wrap is true the output is
// split into 72-character lines and non-empty output carries a trailing
// newline. Encoding an empty slice yields an empty string.
func (enc *Encoding) Encode(src []byte, wrap bool) string {
	if len(src) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow((len(src)+4)/5*8 + len(src)/45 + 1)

	col := 0
	emit := func(c byte) {
		b.WriteByte(c)
		col++
		if wrap && col == wrapCols {
			b.WriteByte('\n')
			col = 0
		}
	}

	for i := 0; i < len(src); i += 5 {
		n := len(src) - i
		if n > 5 {
			n = 5
		}

		// Accumulate the group into a 40-bit window, first byte in the
		// most significant position. Missing tail bytes stay zero.
		var acc uint64
		for j := 0; j < n; j++ {
			acc |= uint64(src[i+j]) << (8 * (4 - j))
		}

		for k := 0; k < encGroupSymbols[n]; k++ {
			emit(enc.alphabet[byte(acc>>(35-5*k))&0x1F])
		}
		for k := encGroupSymbols[n]; k < 8; k++ {
			emit(padChar)
		}
	}

	if wrap && col != 0 {
		b.WriteByte('\n')
	}
	return b.String()
}

// EncodeToString returns the unwrapped base32 encoding of src.
func (enc *Encoding) EncodeToString(src []byte) string {
	return enc.Encode(src, false)
}

// Decode returns the bytes represented by the base32 text s. Characters
// outside the alphabet are skipped. A padding character stops symbol
// consumption and flushes the bytes fully determined by the symbols seen so
// far. Pending symbols at end of input without padding are an error.
func (enc *Encoding) Decode(s string) ([]byte, error) {
	out := make([]byte, 0, len(s)/8*5+5)

	var acc uint64
	pending := 0
	padded := false

	for i := 0; i < len(s); i++ {
		if s[i] == padChar {
			padded = true
			break
		}
		v := enc.decodeMap[s[i]]
		if v == 0xFF {
			continue
		}
		acc = acc<<5 | uint64(v)
		pending++
		if pending == 8 {
			for k := 4; k >= 0; k-- {
				out = append(out, byte(acc>>(8*k)))
			}
			acc = 0
			pending = 0
		}
	}

	if pending == 0 {
		return out, nil
	}
	if !padded {
		return nil, &MalformedInputError{MissingBits: (8 - pending) * 5}
	}

	// Partial final group: missing symbols count as zero, and only bytes
	// fully covered by real input bits are emitted.
	acc <<= uint(5 * (8 - pending))
	var nbytes int
	switch {
	case pending >= 7:
		nbytes = 4
	case pending >= 5:
		nbytes = 3
	case pending >= 4:
		nbytes = 2
	default:
		nbytes = 1
	}
	for k := 0; k < nbytes; k++ {
		out = append(out, byte(acc>>uint(32-8*k)))
	}
	return out, nil
}
