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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/connect4/pkg/common"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:  "connect4",
		Args: cobra.NoArgs,

		Short: "Play connect four in the terminal",
		Long: heredoc.Doc(`connect4 is a two player game of connect four. The players
			take turns dropping tokens into the columns of a 6x7 board,
			and the first one to line up four tokens vertically,
			horizontally or diagonally wins. The game is drawn if the
			board fills up before that happens.`),

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// --trace and --debug raise the logging level.
			switch {
			case cmd.Flag("trace").Changed:
				logrus.SetLevel(logrus.TraceLevel)
			case cmd.Flag("debug").Changed:
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show connect4's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().Bool("debug", false, "Show Debug Information")
	root.PersistentFlags().StringP("config", "c", common.ConfigFile, "Configuration file to use")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(Play())
	root.AddCommand(Replay())
	root.AddCommand(Config())

	return root
}

// loadConfig loads the configuration file selected by the --config flag.
func loadConfig(cmd *cobra.Command) (common.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return common.Config{}, err
	}

	logrus.Debugf("Loading configuration from %s", path)
	return common.Load(path)
}
