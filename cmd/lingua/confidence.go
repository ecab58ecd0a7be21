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

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	lingua "github.com/caiatech/lingua"
)

var normalizeConfidence bool

var confidenceValuesCmd = &cobra.Command{
	Use:   "confidence-values [text...]",
	Short: "Print the confidence ratio for every candidate language, descending",
	Run:   runConfidenceValues,
}

func init() {
	confidenceValuesCmd.Flags().BoolVar(&normalizeConfidence, "normalize", false, "renormalize ratios to sum to 1 instead of the raw best/score form")
}

func runConfidenceValues(cmd *cobra.Command, args []string) {
	logger := zap.NewNop()
	det := buildDetector(logger)

	texts, err := inputTexts(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for i, text := range texts {
		if i > 0 {
			fmt.Println()
		}
		var values []lingua.ConfidenceValue
		if normalizeConfidence {
			values = det.NormalizedConfidenceValues(text)
		} else {
			values = det.ConfidenceValues(text)
		}
		for _, v := range values {
			fmt.Printf("%s\t%.6f\n", v.Language.IsoCode639_1(), v.Ratio)
		}
	}
}
