// Copyright 2025 Caia Tech
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
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	lingua "github.com/caiatech/lingua"
	"github.com/caiatech/lingua/language"
)

var (
	modelsDir   string
	languageArg []string
	lowAccuracy bool
)

var rootCmd = &cobra.Command{
	Use:   "lingua",
	Short: "Detect the natural language of text",
	Long: `lingua classifies the natural language of text using an n-gram
statistical model combined with a script- and alphabet-based rule engine.

It is a thin CLI wrapper over the lingua library; model data is read from
--models, a directory laid out as <iso-639-3>/<n>.json.zst.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&modelsDir, "models", "", "directory of <iso-639-3>/<n>.json.zst model files (required)")
	rootCmd.PersistentFlags().StringSliceVar(&languageArg, "lang", nil, "restrict candidates to these ISO-639-1 codes (default: all supported languages)")
	rootCmd.PersistentFlags().BoolVar(&lowAccuracy, "low-accuracy", false, "restrict the statistical scorer to trigrams only")
	rootCmd.MarkPersistentFlagRequired("models")

	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(detectMultipleCmd)
	rootCmd.AddCommand(confidenceValuesCmd)
}

// buildDetector wires the --models/--lang/--low-accuracy flags into a
// *lingua.Detector, exiting the process on a configuration error.
func buildDetector(logger *zap.Logger) *lingua.Detector {
	candidates := language.All()
	if len(languageArg) > 0 {
		candidates = nil
		for _, code := range languageArg {
			l, ok := language.ByIsoCode639_1(strings.ToLower(code))
			if !ok {
				fmt.Fprintf(os.Stderr, "lingua: unknown language code %q\n", code)
				os.Exit(1)
			}
			candidates = append(candidates, l)
		}
	}

	src := lingua.FSModelSource(os.DirFS(modelsDir))
	builder := lingua.NewBuilder(candidates, src).WithLogger(logger)
	if lowAccuracy {
		builder = builder.WithLowAccuracyMode()
	}

	det, errs := builder.Build()
	if det == nil {
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
	for _, err := range errs {
		logger.Warn(err.Error())
	}
	return det
}
