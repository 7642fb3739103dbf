// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/go-user-accounts/internal/adapter"
	"github.com/MKhiriev/go-user-accounts/models"
)

// tokenEnv holds the session token for the "me" command when -token is not
// given.
const tokenEnv = "ACCOUNTS_TOKEN"

const usage = `usage: accounts-client [-a address] <command> [flags]

commands:
  register -email EMAIL -password PASSWORD [-name NAME]
  login    -email EMAIL -password PASSWORD
  me       [-token TOKEN]   (defaults to $ACCOUNTS_TOKEN)
  version`

var errUsage = errors.New(usage)

type cli struct {
	adapter adapter.ServerAdapter
	out     io.Writer
	getenv  func(string) string
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	command, args := args[0], args[1:]
	switch command {
	case "register":
		return c.register(ctx, args)
	case "login":
		return c.login(ctx, args)
	case "me":
		return c.me(ctx, args)
	case "version":
		return c.version(ctx)
	default:
		return fmt.Errorf("%w\n\nunknown command %q", errUsage, command)
	}
}

func (c *cli) register(ctx context.Context, args []string) error {
	fs := newFlagSet("register")
	email := fs.String("email", "", "Account email")
	password := fs.String("password", "", "Account password")
	name := fs.String("name", "", "Optional display name")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w\n\n%w", errUsage, err)
	}

	req := models.RegisterRequest{Email: *email, Password: *password}
	if *name != "" {
		req.Name = name
	}

	user, err := c.adapter.Register(ctx, req)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return c.printJSON(user)
}

func (c *cli) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "Account email")
	password := fs.String("password", "", "Account password")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w\n\n%w", errUsage, err)
	}

	token, err := c.adapter.Login(ctx, models.Credentials{Email: *email, Password: *password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	// the bare token so it can be captured: export ACCOUNTS_TOKEN=$(... login ...)
	_, err = fmt.Fprintln(c.out, token.SignedString)
	return err
}

func (c *cli) me(ctx context.Context, args []string) error {
	fs := newFlagSet("me")
	token := fs.String("token", "", "Session token, defaults to $"+tokenEnv)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w\n\n%w", errUsage, err)
	}

	if *token == "" {
		*token = c.getenv(tokenEnv)
	}
	c.adapter.SetToken(*token)

	identity, err := c.adapter.Me(ctx)
	if err != nil {
		return fmt.Errorf("me: %w", err)
	}
	return c.printJSON(identity)
}

func (c *cli) version(ctx context.Context) error {
	client := models.VersionResponse{Version: buildVersion, Date: buildDate, Commit: buildCommit}

	server, err := c.adapter.ServerVersion(ctx)
	if err != nil {
		return fmt.Errorf("server version: %w", err)
	}

	return c.printJSON(map[string]models.VersionResponse{
		"client": client,
		"server": server,
	})
}

func (c *cli) printJSON(v any) error {
	encoder := json.NewEncoder(c.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}
