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

// Package catalog loads the parts published for one regulation and turns
// them into candidate pools.
//
// A catalog document is YAML (or JSON) of the form:
//
//	version: 1.06.1
//	parts:
//	  - id: hd-01
//	    name: HD-011 MELANDER
//	    classification: head
//	    ...
//
// Part identifiers are unique within a catalog. The not-equipped sentinel
// never needs to be listed: Candidates adds it to every optional slot and
// Find always resolves part.NotEquippedID.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"

	"dirpx.dev/acasm/asmcore/assembly"
	"dirpx.dev/acasm/asmcore/candidates"
	"dirpx.dev/acasm/asmcore/errors"
	"dirpx.dev/acasm/asmcore/model"
	"dirpx.dev/acasm/asmcore/model/part"
	"dirpx.dev/acasm/asmcore/model/semver"
)

// Catalog is an immutable, validated list of parts for one regulation.
type Catalog struct {
	version semver.Version
	parts   []part.Part
	index   map[string]int
}

type document struct {
	Version semver.Version `json:"version" yaml:"version"`
	Parts   []part.Part    `json:"parts" yaml:"parts"`
}

// New validates parts and returns a Catalog holding a copy of them.
//
// Every invalid part and every duplicate identifier is reported; the
// failures are aggregated with rxmerr.
func New(version semver.Version, parts []part.Part) (Catalog, error) {
	if err := version.Validate(); err != nil {
		return Catalog{}, err
	}
	c := rxmerr.NewCollector()
	if err := model.ValidateAll(parts); err != nil {
		c.Append(err)
	}
	index, err := indexParts(parts)
	if err != nil {
		c.Append(err)
	}
	if err := c.Err(); err != nil {
		return Catalog{}, err
	}
	return Catalog{version: version, parts: append([]part.Part(nil), parts...), index: index}, nil
}

// Load decodes a YAML catalog document from r.
//
// Parts are decoded one by one so that a single load reports every broken
// entry together with its line number.
func Load(r io.Reader) (Catalog, error) {
	var doc struct {
		Version semver.Version `yaml:"version"`
		Parts   []yaml.Node    `yaml:"parts"`
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return Catalog{}, &errors.UnmarshalError{Type: "Catalog", Reason: "empty document"}
		}
		return Catalog{}, &errors.UnmarshalError{Type: "Catalog", Reason: err.Error()}
	}

	c := rxmerr.NewCollector()
	parts := make([]part.Part, 0, len(doc.Parts))
	for i := range doc.Parts {
		node := &doc.Parts[i]
		var p part.Part
		if err := node.Decode(&p); err != nil {
			c.Append(fmt.Errorf("parts[%d] (line %d): %w", i, node.Line, err))
			continue
		}
		parts = append(parts, p)
	}
	if err := c.Err(); err != nil {
		return Catalog{}, err
	}
	return New(doc.Version, parts)
}

func indexParts(parts []part.Part) (map[string]int, error) {
	c := rxmerr.NewCollector()
	index := make(map[string]int, len(parts))
	for i, p := range parts {
		if first, dup := index[p.ID]; dup {
			c.Append(&errors.FieldError{
				Type:   "Catalog",
				Field:  "parts",
				Reason: fmt.Sprintf("duplicate id %s at %d and %d", p.ID, first, i),
				Value:  p.ID,
			})
			continue
		}
		index[p.ID] = i
	}
	return index, c.Err()
}

// Version returns the regulation the catalog was published for.
func (c Catalog) Version() semver.Version { return c.version }

// Parts returns a copy of the parts in document order.
func (c Catalog) Parts() []part.Part {
	return append([]part.Part(nil), c.parts...)
}

// Len returns the number of listed parts.
func (c Catalog) Len() int { return len(c.parts) }

// Find returns the part with the given identifier. part.NotEquippedID always
// resolves to the sentinel.
func (c Catalog) Find(id string) (part.Part, bool) {
	if i, ok := c.index[id]; ok {
		return c.parts[i], true
	}
	if id == part.NotEquippedID {
		return part.NotEquippedPart(), true
	}
	return part.Part{}, false
}

// Candidates returns the candidate pool of every slot, in document order.
// Optional slots start with the not-equipped sentinel. Back-unit slots also
// list arm-unit parts.
func (c Catalog) Candidates() candidates.Candidates {
	out := make(candidates.Candidates, model.SlotCount)
	for _, slot := range model.Slots() {
		var pool []part.Part
		if assembly.Optional(slot) {
			pool = append(pool, part.NotEquippedPart())
		}
		for _, p := range c.parts {
			if !p.IsNotEquipped() && p.Fits(slot) {
				pool = append(pool, p)
			}
		}
		out[slot] = pool
	}
	return out
}

// TypeName returns "Catalog".
func (c Catalog) TypeName() string { return "Catalog" }

// String returns "Catalog(version, N parts)".
func (c Catalog) String() string {
	return fmt.Sprintf("Catalog(%s, %d parts)", c.version, len(c.parts))
}

// MarshalJSON encodes c as a catalog document.
func (c Catalog) MarshalJSON() ([]byte, error) {
	return json.Marshal(document{Version: c.version, Parts: c.parts})
}

// UnmarshalJSON decodes a catalog document and validates it like New.
func (c *Catalog) UnmarshalJSON(data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	parsed, err := New(doc.Version, doc.Parts)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes c as a catalog document.
func (c Catalog) MarshalYAML() (any, error) {
	return document{Version: c.version, Parts: c.parts}, nil
}
