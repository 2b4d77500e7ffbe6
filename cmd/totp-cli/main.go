// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: Copyright (c) 2025 UnderNET

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	slogformatter "github.com/samber/slog-formatter"

	"github.com/undernetirc/totp-cli/internal/auth/oath/totp"
	"github.com/undernetirc/totp-cli/internal/config"
	"github.com/undernetirc/totp-cli/internal/globals"
	"github.com/undernetirc/totp-cli/internal/store"
)

var (
	Version     = "0.0.1-dev"
	BuildDate   string
	BuildCommit string
)

type options struct {
	secretsPath string
	rawSecret   string
	at          int64
	remaining   bool
	list        bool
	account     string
}

func main() {
	configPath := flag.String("config", "", "path to configuration file")
	secretsPath := flag.String("secrets", "", "path to the credential file (overrides configuration)")
	rawSecret := flag.String("secret", "", "generate a code for a raw base32 secret instead of a stored account")
	atFlag := flag.Int64("at", 0, "unix timestamp to generate the code for (default: now)")
	remainingFlag := flag.Bool("remaining", false, "also print how many seconds the code remains valid")
	listFlag := flag.Bool("list", false, "list stored account ids and exit")
	versionFlag := flag.Bool("version", false, "print version and exit")

	flag.Parse()

	if *versionFlag {
		if BuildCommit == "" {
			BuildCommit = "unknown"
		}
		globals.LogAndExit(fmt.Sprintf("Version %s %s %s", Version, BuildCommit, BuildDate), 0)
	}

	// Initialize configuration
	config.InitConfig(*configPath)
	initLogger()

	opts := options{
		secretsPath: *secretsPath,
		rawSecret:   *rawSecret,
		at:          *atFlag,
		remaining:   *remainingFlag,
		list:        *listFlag,
		account:     flag.Arg(0),
	}

	if err := run(opts); err != nil {
		slog.Error("totp-cli failed", "error", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if opts.list {
		st, err := openStore(opts)
		if err != nil {
			return err
		}
		for _, account := range st.Accounts() {
			fmt.Println(account)
		}
		return nil
	}

	secret := opts.rawSecret
	if secret == "" {
		if opts.account == "" {
			return fmt.Errorf("no account id given, usage: totp-cli [flags] <account>")
		}
		st, err := openStore(opts)
		if err != nil {
			return err
		}
		secret, err = st.LookupSecret(opts.account)
		if err != nil {
			return err
		}
	}

	when := time.Now().UTC()
	if opts.at > 0 {
		when = time.Unix(opts.at, 0).UTC()
	}

	gen := totp.New(
		secret,
		config.TotpDigits.GetInt(),
		uint64(config.TotpInterval.GetUint()),
		config.TotpSkew.GetUint8(),
	)

	code, err := gen.GenerateCustom(when)
	if err != nil {
		return err
	}

	if opts.remaining {
		fmt.Printf("%s (valid for %ds)\n", code, gen.SecondsRemaining(when))
	} else {
		fmt.Println(code)
	}
	return nil
}

func openStore(opts options) (*store.FileStore, error) {
	path := opts.secretsPath
	if path == "" {
		path = config.StoreFile.GetString()
	}
	return store.NewFileStore(path)
}

func initLogger() {
	level := slog.LevelInfo
	if config.ServiceDevMode.GetBool() {
		level = slog.LevelDebug
	}

	handler := slogformatter.NewFormatterHandler(
		slogformatter.ErrorFormatter("error"),
	)(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	slog.SetDefault(slog.New(handler))
}
