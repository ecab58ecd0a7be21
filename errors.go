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

package lingua

import "fmt"

// ConfigurationError reports an invalid DetectorBuilder configuration:
// too few candidate languages, or a minimum relative distance outside
// [0.0, 0.99].
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("lingua: invalid configuration: %s", e.Reason)
}

// ModelMissingError reports that a language's model data could not be
// loaded. A ModelMissingError for one language demotes it from the
// candidate set for the life of the Detector rather than failing
// construction; DetectorBuilder.Build surfaces these as a slice
// alongside the built Detector so the caller can log or inspect them.
type ModelMissingError struct {
	Language string
	Cause    error
}

func (e *ModelMissingError) Error() string {
	return fmt.Sprintf("lingua: model missing for %s: %v", e.Language, e.Cause)
}

func (e *ModelMissingError) Unwrap() error {
	return e.Cause
}
