// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: Copyright (c) 2025 UnderNET

// Package totp provides a time-based one-time password (TOTP) implementation.
package totp

import (
	"time"

	"github.com/undernetirc/totp-cli/internal/auth/oath"
)

// TOTP represents a Time-based One-Time Password
type TOTP struct {
	oath.OTP
	interval uint64
	skew     uint8
}

// New creates a new TOTP instance.
func New(seed string, len int, interval uint64, skew uint8) *TOTP {
	otp := oath.New(seed, len)
	return &TOTP{OTP: otp, interval: interval, skew: skew}
}

// Generate generates a new TOTP for the current time.
func (totp *TOTP) Generate() (string, error) {
	return totp.GenerateCustom(time.Now().UTC())
}

// GenerateCustom generates a new TOTP with a custom time.
func (totp *TOTP) GenerateCustom(t time.Time) (string, error) {
	return totp.GenerateOTP(totp.counter(t))
}

// SecondsRemaining reports how long the code for time t stays valid. It is
// informational only and plays no part in the code derivation.
func (totp *TOTP) SecondsRemaining(t time.Time) uint64 {
	return totp.interval - totp.unix(t)%totp.interval
}

// Validate checks if the provided OTP is valid now.
func (totp *TOTP) Validate(otp string) (bool, error) {
	return totp.ValidateCustom(otp, time.Now().UTC())
}

// ValidateCustom checks if the provided OTP is valid at time t, accepting
// codes up to skew time steps away in either direction.
func (totp *TOTP) ValidateCustom(otp string, t time.Time) (bool, error) {
	counter := totp.counter(t)

	skewInt := int(totp.skew)
	counters := make([]uint64, 0, 2*skewInt+1)
	counters = append(counters, counter)

	var i uint8
	for i = 1; i <= totp.skew; i++ {
		delta := uint64(i)
		if counter >= delta { // Prevent underflow
			counters = append(counters, counter-delta)
		}
		if delta <= ^uint64(0)-counter { // Prevent overflow
			counters = append(counters, counter+delta)
		}
	}

	for _, c := range counters {
		code, err := totp.GenerateOTP(c)
		if err != nil {
			return false, err
		}
		if otp == code {
			return true, nil
		}
	}
	return false, nil
}

// counter derives the time-step counter: floor(unix / interval).
func (totp *TOTP) counter(t time.Time) uint64 {
	return totp.unix(t) / totp.interval
}

func (totp *TOTP) unix(t time.Time) uint64 {
	if t.Unix() < 0 {
		return 0
	}
	return uint64(t.Unix()) // nolint:gosec // Safe conversion: Unix timestamp won't overflow uint64
}
