// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: Copyright (c) 2025 UnderNET

// Package store resolves account ids to their stored base32 TOTP secrets.
// The OTP core never touches the backing format; it only sees the interface.
package store

import "errors"

// ErrNotFound is returned when no secret is stored for the requested account.
var ErrNotFound = errors.New("account not found")

// SecretStore looks up the base32 secret text stored for an account.
type SecretStore interface {
	LookupSecret(accountID string) (string, error)
}
