// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: Copyright (c) 2025 UnderNET

// Package oath implements the HMAC-based OTP core shared by time-based
// generators: seed decoding, counter digesting and dynamic truncation.
package oath

import (
	"crypto/hmac"
	"crypto/rand"

	// SHA1 is required by RFC 4226 (HOTP) and RFC 6238 (TOTP)
	// nolint:gosec // SHA1 is used as part of HMAC-SHA1 which is still secure for this use case
	"crypto/sha1"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/undernetirc/totp-cli/internal/encoding/base32"
)

// ErrInvalidSecret is returned when the base32 seed cannot be decoded or
// decodes to an empty key.
var ErrInvalidSecret = errors.New("invalid secret")

type OTP struct {
	seed      string
	otpLength int
}

// New creates an OTP for the given base32 seed and code length. An empty
// seed is replaced by a freshly generated random 20-byte one.
func New(seed string, otpLength int) OTP {
	if seed == "" {
		secret := make([]byte, 20)
		_, err := rand.Reader.Read(secret)
		if err != nil {
			panic(err)
		}
		seed = strings.TrimRight(base32.StdEncoding.EncodeToString(secret), "=")
	}
	return OTP{
		seed:      seed,
		otpLength: otpLength,
	}
}

// GenerateOTP computes the code for a counter value: HMAC-SHA1 over the
// 8-byte big-endian counter, dynamic truncation per RFC 4226 §5.3, reduced
// modulo 10^otpLength and rendered zero-padded.
func (otp *OTP) GenerateOTP(counter uint64) (string, error) {
	key, err := otp.decodeSeed()
	if err != nil {
		return "", err
	}

	h := hmac.New(sha1.New, key)
	h.Write(otp.itob(counter))
	s := h.Sum(nil)

	o := s[len(s)-1] & 0xf
	v := binary.BigEndian.Uint32(s[o : o+4])
	// Clear the top bit to sidestep signed 32-bit ambiguity across platforms.
	v &= 0x7fffffff

	modulus := uint32(math.Pow10(otp.otpLength))
	code := v % modulus

	return fmt.Sprintf(fmt.Sprintf("%%0%dd", otp.otpLength), code), nil
}

func (otp *OTP) GetSeed() string {
	return otp.seed
}

// decodeSeed normalizes the textual seed the way authenticator apps accept
// it: surrounding whitespace trimmed, case folded to upper, padding restored
// to a multiple of eight symbols.
func (otp *OTP) decodeSeed() ([]byte, error) {
	s := strings.TrimSpace(otp.seed)
	if n := len(s) % 8; n != 0 {
		s = s + strings.Repeat("=", 8-n)
	}
	s = strings.ToUpper(s)

	seed, err := base32.StdEncoding.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSecret, err)
	}
	if len(seed) == 0 {
		return nil, fmt.Errorf("%w: seed decodes to an empty key", ErrInvalidSecret)
	}

	return seed, nil
}

func (otp *OTP) itob(input uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, input)
	return buf
}
