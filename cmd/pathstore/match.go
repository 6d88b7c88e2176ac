// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathstore/blob/master/LICENSE.txt.

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tigerwill90/pathstore"
	"github.com/tigerwill90/pathstore/internal/config"
)

type matchParam struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type matchResult struct {
	Path    string       `json:"path"`
	Found   bool         `json:"found"`
	Pattern string       `json:"pattern,omitempty"`
	Target  string       `json:"target,omitempty"`
	Params  []matchParam `json:"params,omitempty"`
}

func (r matchResult) String() string {
	if !r.Found {
		return r.Path + " -> no match"
	}

	var sb strings.Builder
	sb.WriteString(r.Path)
	sb.WriteString(" -> ")
	sb.WriteString(r.Target)
	sb.WriteString(" (")
	sb.WriteString(r.Pattern)
	sb.WriteByte(')')
	for _, p := range r.Params {
		sb.WriteByte(' ')
		sb.WriteString(p.Key)
		sb.WriteByte('=')
		sb.WriteString(p.Value)
	}
	return sb.String()
}

func newMatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "match PATH...",
		Short:   "Matches pathnames against the route file",
		Example: "pathstore match -c routes.yaml /users/jKeyLu /files/to/the/pathname",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, logger, err := loadStore(cmd)
			if err != nil {
				return err
			}

			results := make([]matchResult, 0, len(args))
			for _, path := range args {
				results = append(results, match(s, logger, path))
			}

			if asJSON, _ := cmd.Flags().GetBool(flagJSON); asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err = enc.Encode(results); err != nil {
					return fmt.Errorf("failed to encode results: %w", err)
				}
				return nil
			}

			for _, r := range results {
				fmt.Fprintln(cmd.OutOrStdout(), r.String())
			}
			return nil
		},
	}

	cmd.Flags().Bool(flagJSON, false, "Print the results as JSON")
	return cmd
}

func match(s *pathstore.Store[config.Route], logger *slog.Logger, path string) matchResult {
	m, ok := s.Find(path)
	if !ok {
		logger.Debug("no match", slog.String("path", path))
		return matchResult{Path: path}
	}

	r := matchResult{
		Path:    path,
		Found:   true,
		Pattern: m.Box.Value.Pattern,
		Target:  m.Box.Value.Target,
	}
	for _, p := range m.Params() {
		r.Params = append(r.Params, matchParam{Key: p.Key, Value: p.Value})
	}
	logger.Debug("match", slog.String("path", path), slog.String("pattern", r.Pattern), slog.Any("values", m.Values))
	return r
}
