// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command istest runs feature files against the is package, and reports
// each scenario as it passes or fails.
//
//	istest features/*.feature
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "v0.1.0"

// errFailed is returned when some scenario failed, failures themselves
// having already been reported.
var errFailed = errors.New("some scenarios failed")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if err != errFailed {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "istest [flags] file.feature...",
		Short:         "Run feature files against typed references",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFile, cmd)
			if err != nil {
				return err
			}
			color, err := useColor(cfg.GetString(cfgKeyColor), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			r := &runner{
				out:      cmd.OutOrStdout(),
				color:    color,
				failFast: cfg.GetBool(cfgKeyFailFast),
			}
			if ok := r.runFeatures(args); !ok {
				return errFailed
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: istest.yaml in the current directory)")
	rootCmd.Flags().Bool("fail-fast", false, "stop at the first failing scenario")
	rootCmd.Flags().String("color", colorAuto, "color output: auto, always or never")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the istest version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "istest", version)
		},
	})

	return rootCmd
}
