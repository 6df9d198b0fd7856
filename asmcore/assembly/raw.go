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

// Package assembly holds a complete build: one part per slot plus the
// statistics derived from those twelve parts.
//
// RawAssembly is the bare slot-to-part mapping. Assembly wraps a
// RawAssembly together with its Stats; the statistics are computed once by
// New and cannot be set independently. Both types are immutable values:
// With returns a modified copy and New recomputes every derived field.
package assembly

import (
	"encoding/json"
	"strings"

	"dirpx.dev/acasm/asmcore/errors"
	"dirpx.dev/acasm/asmcore/model"
	"dirpx.dev/acasm/asmcore/model/part"
	"gopkg.in/yaml.v3"
)

// RawAssembly maps every slot to exactly one part.
type RawAssembly struct {
	Head          part.Part
	Core          part.Part
	Arms          part.Part
	Legs          part.Part
	Booster       part.Part
	FCS           part.Part
	Generator     part.Part
	Expansion     part.Part
	RightArmUnit  part.Part
	LeftArmUnit   part.Part
	RightBackUnit part.Part
	LeftBackUnit  part.Part
}

// FromMap builds a RawAssembly from a slot-keyed map. Every slot must be
// present; a missing slot yields a *errors.FieldError naming it.
func FromMap(parts map[model.Slot]part.Part) (RawAssembly, error) {
	var raw RawAssembly
	for _, s := range model.Slots() {
		p, ok := parts[s]
		if !ok {
			return RawAssembly{}, &errors.FieldError{Type: "RawAssembly", Field: s.String(), Reason: "slot is missing"}
		}
		raw = raw.With(s, p)
	}
	return raw, nil
}

// Get returns the part in slot s. Invalid slots yield the zero Part.
func (r RawAssembly) Get(s model.Slot) part.Part {
	if f := r.field(s); f != nil {
		return *f
	}
	return part.Part{}
}

// With returns a copy of r with slot s set to p. Invalid slots leave the
// copy unchanged.
func (r RawAssembly) With(s model.Slot, p part.Part) RawAssembly {
	if f := r.field(s); f != nil {
		*f = p
	}
	return r
}

// field returns a pointer into r; callers operate on their own copy.
func (r *RawAssembly) field(s model.Slot) *part.Part {
	switch s {
	case model.Head:
		return &r.Head
	case model.Core:
		return &r.Core
	case model.Arms:
		return &r.Arms
	case model.Legs:
		return &r.Legs
	case model.Booster:
		return &r.Booster
	case model.FCS:
		return &r.FCS
	case model.Generator:
		return &r.Generator
	case model.Expansion:
		return &r.Expansion
	case model.RightArmUnit:
		return &r.RightArmUnit
	case model.LeftArmUnit:
		return &r.LeftArmUnit
	case model.RightBackUnit:
		return &r.RightBackUnit
	case model.LeftBackUnit:
		return &r.LeftBackUnit
	default:
		return nil
	}
}

// Map returns the slot-keyed form of r.
func (r RawAssembly) Map() map[model.Slot]part.Part {
	out := make(map[model.Slot]part.Part, model.SlotCount)
	for _, s := range model.Slots() {
		out[s] = r.Get(s)
	}
	return out
}

// Parts returns the twelve parts in canonical slot order.
func (r RawAssembly) Parts() []part.Part {
	out := make([]part.Part, 0, model.SlotCount)
	for _, s := range model.Slots() {
		out = append(out, r.Get(s))
	}
	return out
}

// Validate checks that every slot holds a valid part that fits it, that
// structural slots are not left empty, and that legs and booster are
// compatible.
func (r RawAssembly) Validate() error {
	for _, s := range model.Slots() {
		p := r.Get(s)
		if err := p.Validate(); err != nil {
			return &errors.FieldError{Type: "RawAssembly", Field: s.String(), Reason: err.Error()}
		}
		if !p.Fits(s) {
			return &errors.FieldError{Type: "RawAssembly", Field: s.String(), Reason: "part " + p.ID + " does not fit slot", Value: p.ID}
		}
		if p.IsNotEquipped() && !Optional(s) {
			return &errors.FieldError{Type: "RawAssembly", Field: s.String(), Reason: "slot must be equipped"}
		}
	}
	if !part.Compatible(r.Legs, r.Booster) {
		if r.Legs.IsTank() {
			return &errors.FieldError{Type: "RawAssembly", Field: "booster", Reason: "tank legs require no booster", Value: r.Booster.ID}
		}
		return &errors.FieldError{Type: "RawAssembly", Field: "booster", Reason: "non-tank legs require a booster"}
	}
	return nil
}

// Optional reports whether slot s may hold the not-equipped sentinel.
func Optional(s model.Slot) bool {
	switch s {
	case model.Booster, model.Expansion,
		model.RightArmUnit, model.LeftArmUnit, model.RightBackUnit, model.LeftBackUnit:
		return true
	default:
		return false
	}
}

// MarshalJSON encodes r as an object keyed by slot name.
func (r RawAssembly) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Map())
}

// UnmarshalJSON decodes an object keyed by slot name. All twelve slots are
// required.
func (r *RawAssembly) UnmarshalJSON(data []byte) error {
	var m map[model.Slot]part.Part
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	raw, err := FromMap(m)
	if err != nil {
		return err
	}
	*r = raw
	return nil
}

// MarshalYAML encodes r as a mapping keyed by slot name.
func (r RawAssembly) MarshalYAML() (any, error) {
	return r.Map(), nil
}

// UnmarshalYAML decodes a mapping keyed by slot name.
func (r *RawAssembly) UnmarshalYAML(node *yaml.Node) error {
	var m map[model.Slot]part.Part
	if err := node.Decode(&m); err != nil {
		return err
	}
	raw, err := FromMap(m)
	if err != nil {
		return err
	}
	*r = raw
	return nil
}

// String lists the part identifiers in canonical slot order.
func (r RawAssembly) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, s := range model.Slots() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(s.String())
		b.WriteString("=")
		b.WriteString(r.Get(s).ID)
	}
	b.WriteString("}")
	return b.String()
}
