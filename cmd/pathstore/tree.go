// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathstore/blob/master/LICENSE.txt.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTreeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "tree",
		Short:   "Prints the tree built from the route file",
		Example: "pathstore tree -c routes.yaml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, _, err := loadStore(cmd)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), s.String())
			return nil
		},
	}
}
