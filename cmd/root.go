/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tourlog/trackd/params"
)

var optVerbose bool
var optDatadir string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "trackd",
	Short: "GPS track ingestion and route analytics",
	Long: `trackd turns a GPX track file into a simplified rendering polyline
and derived route statistics: distance, elevation gain/loss, gradient,
and stop detection.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Flags win over env (TRACKD_DATADIR) over the default.
		optDatadir = viper.GetString("datadir")
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	pFlags := rootCmd.PersistentFlags()
	pFlags.BoolVarP(&optVerbose, "verbose", "v", false, "Enable debug logging")
	pFlags.StringVar(&optDatadir, "datadir", params.DatadirRoot, "Data directory for the local store")

	viper.SetEnvPrefix("TRACKD")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("datadir", pFlags.Lookup("datadir"))
}

func setDefaultSlog(cmd *cobra.Command, args []string) {
	level := slog.LevelInfo
	if optVerbose {
		level = slog.LevelDebug
	}
	slog.SetLogLoggerLevel(level)
}
