// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// connect4 config
func Config() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the configuration in use",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			path, _ := cmd.Flags().GetString("config")
			fmt.Fprintf(cmd.OutOrStdout(), "\x1b[32mConfiguration\x1b[0m: %s\n\n", path)

			return config.Dump(cmd.OutOrStdout())
		},
	}
}
