// Copyright 2024 The Inspektor Gadget authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inspektor-gadget/tablesort/internal/config"
	"github.com/inspektor-gadget/tablesort/pkg/logger"
)

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	cfg := config.New()

	l := log.New()
	l.SetOutput(errOut)

	var verbose bool

	rootCmd := &cobra.Command{
		Use:          "tablesort",
		Short:        "Sort tables of items by multiple columns",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Init(cmd.Flags()); err != nil {
				return err
			}
			if verbose {
				l.SetLevel(logger.DebugLevel)
			}
			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	cfg.AddConfigFlag(rootCmd)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug messages")

	rootCmd.AddCommand(
		newSortCmd(l),
		newColumnsCmd(),
		newVersionCmd(l),
	)
	return rootCmd
}
