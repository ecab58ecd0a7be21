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
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var detectCmd = &cobra.Command{
	Use:   "detect [text...]",
	Short: "Print the detected language for each argument, or stdin if none given",
	Run:   runDetect,
}

func runDetect(cmd *cobra.Command, args []string) {
	logger := zap.NewNop()
	det := buildDetector(logger)

	texts, err := inputTexts(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, text := range texts {
		lang, ok := det.Detect(text)
		if !ok {
			fmt.Println("unknown")
			continue
		}
		fmt.Println(lang.IsoCode639_1())
	}
}

// inputTexts returns args verbatim if nonempty, or reads newline-
// delimited texts from stdin otherwise.
func inputTexts(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
