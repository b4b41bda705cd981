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
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/tourlog/trackd/diag"
	"github.com/tourlog/trackd/params"
)

var optEpsilons []float64
var optRuns int

// benchCmd sweeps simplification epsilons over one file and reports the
// reduction/time tradeoff curve.
var benchCmd = &cobra.Command{
	Use:   "bench <file.gpx>",
	Short: "Benchmark the pipeline over a GPX file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)

		data, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatalln(err)
		}

		profiler, err := diag.NewProfiler(params.DefaultConfig())
		if err != nil {
			log.Fatalln(err)
		}

		ctx := context.Background()
		report, err := profiler.Profile(ctx, data,
			params.DefaultSimplificationConfig.DouglasPeuckerThreshold)
		if err != nil {
			log.Fatalln(err)
		}
		fmt.Println(report)

		rows, err := profiler.Sweep(ctx, data, optEpsilons, optRuns)
		if err != nil {
			log.Fatalln(err)
		}
		for _, row := range rows {
			fmt.Println(row)
		}
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)

	flags := benchCmd.Flags()
	flags.Float64SliceVar(&optEpsilons, "epsilons", params.BenchEpsilonDefaults,
		"Epsilon values to sweep")
	flags.IntVar(&optRuns, "runs", 5, "Simplification runs per epsilon")
}
