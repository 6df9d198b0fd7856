/*
   Copyright 2025 The DIRPX Authors

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

package generator

import (
	"io"

	"gopkg.in/yaml.v3"

	"dirpx.dev/acasm/asmcore/errors"
)

// DefaultLimit is the attempt budget used when none is configured.
const DefaultLimit = 1000

// Config is the persisted configuration of a Generator.
type Config struct {
	// Limit is the number of build attempts one Assemble call may make.
	Limit int `json:"limit" yaml:"limit"`
}

// DefaultConfig returns a Config with DefaultLimit.
func DefaultConfig() Config {
	return Config{Limit: DefaultLimit}
}

// Validate reports a *errors.FieldError for a non-positive Limit.
func (c Config) Validate() error {
	if c.Limit <= 0 {
		return &errors.FieldError{Type: "Config", Field: "limit", Reason: "must be positive", Value: c.Limit}
	}
	return nil
}

// LoadConfig decodes a YAML document from r. Missing fields keep their
// DefaultConfig values and unknown fields are rejected. An empty document
// yields DefaultConfig.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, &errors.UnmarshalError{Type: "Config", Reason: err.Error()}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
