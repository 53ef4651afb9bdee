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
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inspektor-gadget/tablesort/internal/version"
	"github.com/inspektor-gadget/tablesort/pkg/logger"
)

func newVersionCmd(l logger.Logger) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetBuildInfo()
			out := cmd.OutOrStdout()

			switch strings.ToLower(output) {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(info); err != nil {
					return err
				}
			case "":
				printBuildInfo(out, info)
			default:
				return fmt.Errorf("invalid output format %q", output)
			}

			l.Debugf("parsed version: %s", version.Version())
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format. One of: json")

	return cmd
}

func printBuildInfo(w io.Writer, info *version.BuildInfo) {
	fmt.Fprintf(w, "Version: %s\n", info.Version)
	fmt.Fprintf(w, "Go Version: %s\n", info.GoVersion)
	fmt.Fprintf(w, "Compiler: %s\n", info.Compiler)
	fmt.Fprintf(w, "Platform: %s\n", info.Platform)
}
