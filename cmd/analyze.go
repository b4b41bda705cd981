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
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tourlog/trackd/api"
	"github.com/tourlog/trackd/params"
	"github.com/tourlog/trackd/state"
)

var optEpsilon float64
var optStore bool

// analyzeCmd processes one GPX file and prints the analysis as JSON.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.gpx>",
	Short: "Analyze a GPX track file",
	Long: `Parses the file, computes route statistics over the full-resolution
track, and derives a simplified rendering polyline. With --store, the
original bytes and the result are persisted to the local store.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)

		data, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatalln(err)
		}

		config := params.DefaultConfig()
		config.DouglasPeuckerThreshold = optEpsilon
		engine, err := api.NewEngine(config)
		if err != nil {
			log.Fatalln(err)
		}

		res, err := engine.Process(context.Background(), data)
		if err != nil {
			log.Fatalln(err)
		}

		if optStore {
			store, err := state.Open(optDatadir)
			if err != nil {
				log.Fatalln(err)
			}
			defer store.Close()
			key, err := store.PutAnalysis(data, res)
			if err != nil {
				log.Fatalln(err)
			}
			slog.Info("Stored analysis", "key", key, "datadir", optDatadir)
		}

		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			log.Fatalln(err)
		}
		os.Stdout.Write(out)
		os.Stdout.Write([]byte("\n"))
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	flags := analyzeCmd.Flags()
	flags.Float64Var(&optEpsilon, "epsilon",
		params.DefaultSimplificationConfig.DouglasPeuckerThreshold,
		"Douglas-Peucker tolerance in decimal degrees (0 disables simplification)")
	flags.BoolVar(&optStore, "store", false, "Persist the original file and result to the local store")
}
