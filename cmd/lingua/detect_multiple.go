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
)

var detectMultipleCmd = &cobra.Command{
	Use:   "detect-multiple [text...]",
	Short: "Partition each argument into per-language spans",
	Run:   runDetectMultiple,
}

func runDetectMultiple(cmd *cobra.Command, args []string) {
	logger := zap.NewNop()
	det := buildDetector(logger)

	texts, err := inputTexts(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, text := range texts {
		for _, r := range det.DetectMultiple(text) {
			label := "unknown"
			if !r.IsUnknown {
				label = r.Language.IsoCode639_1()
			}
			fmt.Printf("%d-%d\t%s\t%q\n", r.StartIndex, r.EndIndex, label, string([]rune(text)[r.StartIndex:r.EndIndex]))
		}
	}
}
