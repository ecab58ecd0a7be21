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

package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// parseFraction parses a "num/den" fraction string, both sides 32-bit
// unsigned integers, and returns ln(num/den). The conversion happens
// exactly once, at load, so lookups never pay for it.
func parseFraction(s string) (float64, error) {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return 0, fmt.Errorf("model: malformed fraction %q", s)
	}
	n, err := strconv.ParseUint(num, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("model: malformed fraction numerator %q: %w", s, err)
	}
	d, err := strconv.ParseUint(den, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("model: malformed fraction denominator %q: %w", s, err)
	}
	if d == 0 {
		return 0, fmt.Errorf("model: fraction %q has zero denominator", s)
	}
	return math.Log(float64(n) / float64(d)), nil
}
