// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: Copyright (c) 2025 UnderNET

package store

import (
	"fmt"
	"sort"

	"github.com/joho/godotenv"
)

// FileStore reads secrets from a dotenv-format credential file, one
// `ACCOUNT=BASE32SECRET` entry per line. The file is read once at
// construction; lookups never touch the filesystem.
type FileStore struct {
	path    string
	secrets map[string]string
}

// NewFileStore loads the credential file at path.
func NewFileStore(path string) (*FileStore, error) {
	secrets, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading credential file %s: %w", path, err)
	}
	return &FileStore{path: path, secrets: secrets}, nil
}

// LookupSecret returns the stored base32 secret for accountID. The account
// key is matched case-sensitively.
func (f *FileStore) LookupSecret(accountID string) (string, error) {
	secret, ok := f.secrets[accountID]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, accountID)
	}
	return secret, nil
}

// Accounts returns the stored account ids in sorted order.
func (f *FileStore) Accounts() []string {
	accounts := make([]string, 0, len(f.secrets))
	for account := range f.secrets {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)
	return accounts
}
