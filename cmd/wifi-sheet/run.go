// seehuhn.de/go/wifiqr - printable access sheets for WiFi networks
// Copyright (C) 2026  The wifiqr authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/language"

	"seehuhn.de/go/wifiqr"
	"seehuhn.de/go/wifiqr/internal/config"
	"seehuhn.de/go/wifiqr/internal/logging"
	"seehuhn.de/go/wifiqr/internal/pdfout"
	"seehuhn.de/go/wifiqr/qr"
	"seehuhn.de/go/wifiqr/sheet"
)

const programName = "wifi-sheet"

// run is like main, except that the operating system fundamentals are
// passed in as arguments, and that errors are returned.
func run(ctx context.Context, args []string, stdin *os.File, stdout, stderr io.Writer) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCmd(stdin, stderr)
	cmd.SetArgs(args[1:])
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}

func newRootCmd(stdin *os.File, logOut io.Writer) *cobra.Command {
	cfg := config.DefaultConfig()
	var security, level, lang string

	cmd := &cobra.Command{
		Use:   programName + " --ssid NAME --password PASSWORD --output FILE.pdf",
		Short: "Write a printable access sheet for a WiFi network",
		Long: `Write a one-page A5 PDF with the name and password of a WiFi network,
together with a QR code which phones can scan to join the network.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags have been parsed; from here on errors are not usage errors.
			cmd.SilenceUsage = true

			var err error
			cfg.Security, err = wifiqr.ParseSecurity(security)
			if err != nil {
				return err
			}
			cfg.Level, err = qr.ParseLevel(level)
			if err != nil {
				return err
			}
			cfg.Lang, err = language.Parse(lang)
			if err != nil {
				return fmt.Errorf("language %q: %w", lang, err)
			}
			if cfg.PasswordStdin {
				cfg.Password, err = readPassword(stdin, cmd.ErrOrStderr())
				if err != nil {
					return err
				}
			}

			logLevel := slog.LevelInfo
			if cfg.Verbose {
				logLevel = slog.LevelDebug
			}
			logger := slog.New(logging.NewTerminalHandler(logOut, logLevel))

			return generate(cmd.Context(), cfg, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.SSID, "ssid", "", "name of the network")
	flags.StringVar(&cfg.Password, "password", "", "network password")
	flags.BoolVar(&cfg.PasswordStdin, "password-stdin", false, "read the password from standard input")
	flags.StringVarP(&cfg.Output, "output", "o", "", "name of the PDF file to write")
	flags.StringVar(&cfg.Message, "message", "", "note printed below the QR code")
	flags.StringVar(&security, "security", cfg.Security.String(),
		"authentication type ("+strings.Join(wifiqr.SecurityNames(), ", ")+")")
	flags.BoolVar(&cfg.Hidden, "hidden", false, "the network does not broadcast its SSID")
	flags.BoolVar(&cfg.Escape, "escape", false, "escape special characters in the QR code")
	flags.StringVar(&level, "level", cfg.Level.String(), "QR code error correction level (L, M, Q, H)")
	flags.StringVar(&lang, "lang", cfg.Lang.String(), "language of the text on the sheet")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "show debug messages")

	for _, name := range []string{"ssid", "output"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
	cmd.MarkFlagsOneRequired("password", "password-stdin")
	cmd.MarkFlagsMutuallyExclusive("password", "password-stdin")

	return cmd
}

// generate lays out the sheet and writes the PDF file.
// The context is checked between stages, so that an interrupted run does
// not replace the output file.
func generate(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	err := cfg.Validate()
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	creds := cfg.Credentials()
	logger.Debug("encoding network",
		"ssid", creds.SSID,
		"security", creds.Security,
		"hidden", creds.Hidden,
		"escape", creds.Escape,
		"level", cfg.Level)

	if missing := sheet.Unsupported(creds, cfg.Message, cfg.SheetOptions()); len(missing) > 0 {
		logger.Warn("the font has no glyphs for some characters",
			"chars", string(missing))
	}

	pages, err := sheet.Layout(creds, cfg.Message, cfg.SheetOptions())
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	logger.Debug("layout done", "pages", len(pages))
	if len(pages) > 1 {
		logger.Warn("the sheet does not fit on one page", "pages", len(pages))
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	err = pdfout.WriteFile(cfg.Output, pages, cfg.OutputOptions(programName))
	if err != nil {
		return fmt.Errorf("writing %q: %w", cfg.Output, err)
	}
	logger.Info("sheet written", "file", cfg.Output)
	return nil
}

var errNoPassword = errors.New("no password on standard input")

// readPassword reads the password from stdin.  On a terminal, the user is
// prompted and the input is not echoed.  Otherwise the first line of input
// is used; an empty line gives an empty password.
func readPassword(stdin *os.File, prompt io.Writer) (string, error) {
	if stdin == nil {
		return "", errNoPassword
	}

	fd := int(stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(prompt, "Password: ")
		pw, err := term.ReadPassword(fd)
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(pw), nil
	}

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", errNoPassword
		}
	} else if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
