// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathstore/blob/master/LICENSE.txt.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const flagList = "list"

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "validate",
		Short:   "Validates the route file",
		Example: "pathstore validate -c routes.yaml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, _, err := loadStore(cmd)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if list, _ := cmd.Flags().GetBool(flagList); list {
				for pattern := range s.Patterns() {
					fmt.Fprintln(w, pattern)
				}
			}

			fmt.Fprintf(w, "Configuration is valid: %d patterns registered\n", s.Len())
			return nil
		},
	}

	cmd.Flags().Bool(flagList, false, "Print the registered patterns")
	return cmd
}
