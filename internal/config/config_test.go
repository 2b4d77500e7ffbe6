// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: Copyright (c) 2025 UnderNET

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKTypeMethods(t *testing.T) {
	// Reset viper before each test
	viper.Reset()

	tests := []struct {
		name     string
		key      K
		setValue interface{}
		getFunc  func(K) interface{}
		want     interface{}
	}{
		{
			name:     "GetString",
			key:      StoreFile,
			setValue: "/tmp/secrets",
			getFunc:  func(k K) interface{} { return k.GetString() },
			want:     "/tmp/secrets",
		},
		{
			name:     "GetBool",
			key:      ServiceDevMode,
			setValue: true,
			getFunc:  func(k K) interface{} { return k.GetBool() },
			want:     true,
		},
		{
			name:     "GetInt",
			key:      TotpDigits,
			setValue: 8,
			getFunc:  func(k K) interface{} { return k.GetInt() },
			want:     8,
		},
		{
			name:     "GetUint",
			key:      TotpInterval,
			setValue: uint(60),
			getFunc:  func(k K) interface{} { return k.GetUint() },
			want:     uint(60),
		},
		{
			name:     "GetUint8",
			key:      TotpSkew,
			setValue: uint8(2),
			getFunc:  func(k K) interface{} { return k.GetUint8() },
			want:     uint8(2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.key.Set(tt.setValue)
			got := tt.getFunc(tt.key)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	// Reset viper before test
	viper.Reset()

	DefaultConfig()

	assert.Equal(t, 30, TotpInterval.GetInt())
	assert.Equal(t, 6, TotpDigits.GetInt())
	assert.Equal(t, uint8(1), TotpSkew.GetUint8())
	assert.False(t, ServiceDevMode.GetBool())
	assert.NotEmpty(t, StoreFile.GetString())
}

func TestInitConfig(t *testing.T) {
	// Reset viper before test
	viper.Reset()

	configContent := []byte(`
totp:
  interval: 60
  digits: 8
store:
  file: "/tmp/test-secrets"
`)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, configContent, 0o644))

	InitConfig(path)

	assert.Equal(t, 60, TotpInterval.GetInt())
	assert.Equal(t, 8, TotpDigits.GetInt())
	assert.Equal(t, "/tmp/test-secrets", StoreFile.GetString())
	// Keys absent from the file keep their defaults.
	assert.Equal(t, uint8(1), TotpSkew.GetUint8())
}

func TestInitConfigEnvOverride(t *testing.T) {
	viper.Reset()

	t.Setenv("TOTPCLI_TOTP_DIGITS", "8")

	InitConfig("")

	assert.Equal(t, 8, TotpDigits.GetInt())
}
