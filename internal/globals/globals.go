// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: Copyright (c) 2025 UnderNET

// Package globals contains global variables and functions
package globals

import (
	"fmt"
	"os"
)

// LogAndExit writes a message to stderr and exits with a given code
func LogAndExit(message string, code int) {
	fmt.Fprintln(os.Stderr, message)
	os.Exit(code)
}
