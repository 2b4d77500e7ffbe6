// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: Copyright (c) 2025 UnderNET

// Package config holds the viper-backed configuration keys for the tool.
// Values come from defaults, an optional YAML config file and TOTPCLI_*
// environment variables, in increasing order of precedence.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// K is a typed configuration key.
type K string

const (
	ServiceDevMode K = "service.dev_mode"

	TotpInterval K = "totp.interval"
	TotpDigits   K = "totp.digits"
	TotpSkew     K = "totp.skew"

	StoreFile K = "store.file"
)

// GetString returns the value of the key as a string.
func (k K) GetString() string {
	return viper.GetString(string(k))
}

// GetBool returns the value of the key as a boolean.
func (k K) GetBool() bool {
	return viper.GetBool(string(k))
}

// GetInt returns the value of the key as an int.
func (k K) GetInt() int {
	return viper.GetInt(string(k))
}

// GetUint returns the value of the key as an uint.
func (k K) GetUint() uint {
	return viper.GetUint(string(k))
}

// GetUint8 returns the value of the key as an uint8.
func (k K) GetUint8() uint8 {
	return uint8(viper.GetUint16(string(k))) // nolint:gosec // config values are operator-controlled
}

// Set sets the value of the key.
func (k K) Set(value interface{}) {
	viper.Set(string(k), value)
}

// DefaultConfig loads the default settings.
func DefaultConfig() {
	viper.SetDefault(string(ServiceDevMode), false)
	viper.SetDefault(string(TotpInterval), 30)
	viper.SetDefault(string(TotpDigits), 6)
	viper.SetDefault(string(TotpSkew), uint8(1))
	viper.SetDefault(string(StoreFile), defaultStoreFile())
}

// InitConfig initializes the configuration. An empty configFile falls back
// to searching totp-cli.yaml in the working directory and ~/.config/totp-cli;
// a missing config file is not an error since every key has a default.
func InitConfig(configFile string) {
	DefaultConfig()

	viper.SetEnvPrefix("totpcli")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("totp-cli")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "totp-cli"))
		}
	}

	_ = viper.ReadInConfig()
}

func defaultStoreFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".totp-secrets"
	}
	return filepath.Join(home, ".totp-secrets")
}
