// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathstore/blob/master/LICENSE.txt.

package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tigerwill90/pathstore"
	"github.com/tigerwill90/pathstore/internal/config"
	"github.com/tigerwill90/pathstore/internal/slogpretty"
)

const (
	flagConfig    = "config"
	flagEnvPrefix = "env-prefix"
	flagJSON      = "json"
)

var ErrNoConfigFile = errors.New("no config file provided")

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pathstore",
		Short:         "Match pathnames against a set of patterns",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP(flagConfig, "c", "", "Path to the route file")
	cmd.PersistentFlags().String(flagEnvPrefix, config.DefaultEnvPrefix, "Prefix of the environment variables overriding the route file")

	cmd.AddCommand(
		newValidateCommand(),
		newMatchCommand(),
		newTreeCommand(),
	)

	return cmd
}

// loadStore reads the route file given on the command line and registers every route.
func loadStore(cmd *cobra.Command) (*pathstore.Store[config.Route], *slog.Logger, error) {
	path, _ := cmd.Flags().GetString(flagConfig)
	if path == "" {
		return nil, nil, ErrNoConfigFile
	}
	envPrefix, _ := cmd.Flags().GetString(flagEnvPrefix)

	cfg, err := config.Load(path, envPrefix)
	if err != nil {
		return nil, nil, err
	}

	h := slogpretty.New(cmd.ErrOrStderr(), cmd.ErrOrStderr(), cfg.Level())
	s, err := cfg.NewStore(pathstore.WithLogHandler(h))
	if err != nil {
		return nil, nil, err
	}

	return s, slog.New(h), nil
}
