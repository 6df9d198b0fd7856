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

package assembly

import (
	"encoding/json"

	"dirpx.dev/acasm/asmcore/errors"
	"dirpx.dev/acasm/asmcore/model"
	"dirpx.dev/acasm/asmcore/model/part"
	"gopkg.in/yaml.v3"
)

// Assembly is a RawAssembly together with its derived statistics.
//
// The zero Assembly has no parts. Assemblies are produced by New (directly
// from a RawAssembly) or by the random builder, and are immutable once
// built.
type Assembly struct {
	raw   RawAssembly
	stats Stats
}

var (
	_ model.Model                = (*Assembly)(nil)
	_ model.Comparable[Assembly] = Assembly{}
)

// New derives the statistics of raw and returns the resulting Assembly.
// New does not validate raw; call Validate when the parts come from an
// untrusted source.
func New(raw RawAssembly) Assembly {
	return Assembly{raw: raw, stats: computeStats(raw)}
}

// Raw returns the slot-to-part mapping of a.
func (a Assembly) Raw() RawAssembly { return a.raw }

// Part returns the part in slot s.
func (a Assembly) Part(s model.Slot) part.Part { return a.raw.Get(s) }

// Stats returns a copy of the derived statistics.
func (a Assembly) Stats() Stats { return a.stats }

// Validate checks the underlying RawAssembly.
func (a Assembly) Validate() error { return a.raw.Validate() }

// TypeName returns "Assembly".
func (a Assembly) TypeName() string { return "Assembly" }

// IsZero reports whether a was never built.
func (a Assembly) IsZero() bool { return a == Assembly{} }

// Equal reports whether a and other hold the same parts.
func (a Assembly) Equal(other Assembly) bool { return a.raw == other.raw }

// String lists the part identifiers in canonical slot order.
func (a Assembly) String() string { return a.raw.String() }

// Redacted returns the same representation as String; assemblies carry no
// sensitive data.
func (a Assembly) Redacted() string { return a.raw.String() }

var errMissingParts = &errors.FieldError{Type: "Assembly", Field: "parts", Reason: "must be present"}

type document struct {
	Parts RawAssembly `json:"parts" yaml:"parts"`
	Stats Stats       `json:"stats" yaml:"stats"`
}

// MarshalJSON encodes the parts and the derived statistics.
func (a Assembly) MarshalJSON() ([]byte, error) {
	return json.Marshal(document{Parts: a.raw, Stats: a.stats})
}

// UnmarshalJSON decodes the parts and recomputes the statistics. Any stats
// present in the input are ignored.
func (a *Assembly) UnmarshalJSON(data []byte) error {
	var doc struct {
		Parts *RawAssembly `json:"parts"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc.Parts == nil {
		return errMissingParts
	}
	*a = New(*doc.Parts)
	return nil
}

// MarshalYAML encodes the parts and the derived statistics.
func (a Assembly) MarshalYAML() (any, error) {
	return document{Parts: a.raw, Stats: a.stats}, nil
}

// UnmarshalYAML decodes the parts and recomputes the statistics.
func (a *Assembly) UnmarshalYAML(node *yaml.Node) error {
	var doc struct {
		Parts *RawAssembly `yaml:"parts"`
	}
	if err := node.Decode(&doc); err != nil {
		return err
	}
	if doc.Parts == nil {
		return errMissingParts
	}
	*a = New(*doc.Parts)
	return nil
}
