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

package model

import (
	"encoding/json"

	"dirpx.dev/acasm/asmcore/errors"
	"gopkg.in/yaml.v3"
)

// Slot identifies one of the twelve fixed equipment positions of an
// assembly.
//
// Slot is a closed enumeration: every assembly holds exactly one part per
// slot, candidate pools and lock sets are keyed by Slot, and no other values
// are meaningful. The zero value is Head, which is a valid slot.
type Slot int

const (
	// Head is the head frame part.
	Head Slot = iota
	// Core is the core frame part.
	Core
	// Arms is the arms frame part.
	Arms
	// Legs is the legs frame part. Its category decides whether the
	// booster slot may be equipped.
	Legs
	// Booster is the booster inner part. It is left not-equipped for tank
	// legs and equipped otherwise.
	Booster
	// FCS is the fire control system inner part.
	FCS
	// Generator is the generator inner part.
	Generator
	// Expansion is the expansion slot.
	Expansion
	// RightArmUnit is the weapon held in the right hand.
	RightArmUnit
	// LeftArmUnit is the weapon held in the left hand.
	LeftArmUnit
	// RightBackUnit is the weapon mounted on the right shoulder.
	RightBackUnit
	// LeftBackUnit is the weapon mounted on the left shoulder.
	LeftBackUnit
)

// SlotCount is the number of defined slots.
const SlotCount = 12

// String constants for Slot values used in serialization, parsing,
// and human-facing output. Changing any of these strings is a breaking
// change for persisted lock sets and catalogs.
const (
	HeadStr          = "head"
	CoreStr          = "core"
	ArmsStr          = "arms"
	LegsStr          = "legs"
	BoosterStr       = "booster"
	FCSStr           = "fcs"
	GeneratorStr     = "generator"
	ExpansionStr     = "expansion"
	RightArmUnitStr  = "right-arm-unit"
	LeftArmUnitStr   = "left-arm-unit"
	RightBackUnitStr = "right-back-unit"
	LeftBackUnitStr  = "left-back-unit"
)

var slotNames = [SlotCount]string{
	HeadStr, CoreStr, ArmsStr, LegsStr, BoosterStr, FCSStr, GeneratorStr,
	ExpansionStr, RightArmUnitStr, LeftArmUnitStr, RightBackUnitStr, LeftBackUnitStr,
}

// Compile-time check that Slot implements model.Model interface.
var _ Model = (*Slot)(nil)

// Slots returns every slot in canonical order (Head first, LeftBackUnit
// last). The returned slice is a fresh copy.
func Slots() []Slot {
	out := make([]Slot, SlotCount)
	for i := range out {
		out[i] = Slot(i)
	}
	return out
}

// String returns the canonical kebab-case name of the slot, or "unknown"
// for values outside the enumeration.
func (s Slot) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return slotNames[s]
}

// ParseSlot converts a textual representation into a Slot value.
//
// Besides the canonical kebab-case names it accepts the capitalized form of
// every slot and, for the four weapon slots, camelCase, PascalCase and
// snake_case spellings, which are common in catalogs and lock files
// exported from other tools:
//
//	"legs", "Legs"                                                 -> Legs
//	"fcs", "FCS"                                                   -> FCS
//	"right-arm-unit", "rightArmUnit", "right_arm_unit", "RightArmUnit" -> RightArmUnit
//
// Matching is exact otherwise; "LEGS" or " legs" are rejected. Several
// spellings map to one Slot, so callers that key maps by user input SHOULD
// key them by the parsed Slot (or its String form) rather than the raw text.
//
// On failure ParseSlot returns a *ParseError carrying the input, and the
// returned Slot (Head) MUST NOT be used.
func ParseSlot(str string) (Slot, error) {
	switch str {
	case HeadStr, "Head":
		return Head, nil
	case CoreStr, "Core":
		return Core, nil
	case ArmsStr, "Arms":
		return Arms, nil
	case LegsStr, "Legs":
		return Legs, nil
	case BoosterStr, "Booster":
		return Booster, nil
	case FCSStr, "FCS":
		return FCS, nil
	case GeneratorStr, "Generator":
		return Generator, nil
	case ExpansionStr, "Expansion":
		return Expansion, nil
	case RightArmUnitStr, "rightArmUnit", "right_arm_unit", "RightArmUnit":
		return RightArmUnit, nil
	case LeftArmUnitStr, "leftArmUnit", "left_arm_unit", "LeftArmUnit":
		return LeftArmUnit, nil
	case RightBackUnitStr, "rightBackUnit", "right_back_unit", "RightBackUnit":
		return RightBackUnit, nil
	case LeftBackUnitStr, "leftBackUnit", "left_back_unit", "LeftBackUnit":
		return LeftBackUnit, nil
	default:
		return Head, &errors.ParseError{Type: "Slot", Value: str}
	}
}

// Valid reports whether the Slot value is one of the defined constants.
func (s Slot) Valid() bool {
	return s >= Head && s <= LeftBackUnit
}

// MarshalJSON implements json.Marshaler for Slot.
//
// A valid Slot is serialized as its canonical kebab-case string (for
// example, "right-back-unit"), never as its ordinal, so persisted assemblies
// and lock sets survive reordering of the constants. A value outside the
// enumeration returns a *MarshalError and produces no output, which keeps
// numeric casts gone wrong from leaking into JSON payloads.
func (s Slot) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Slot", Value: int(s)}
	}
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Slot.
//
// Two JSON forms are accepted:
//
//   - String: any spelling ParseSlot accepts, for example "legs" or
//     "rightArmUnit". An unknown name returns the *ParseError from
//     ParseSlot.
//
//   - Number: 0 (Head) through 11 (LeftBackUnit), the declaration order of
//     the constants. Out-of-range numbers return an *UnmarshalError.
//
// Empty input, or input that is neither a string nor a number, returns an
// *UnmarshalError. On any error the receiver MUST NOT be used.
func (s *Slot) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Slot", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "Slot", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseSlot(str)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Slot", Data: data, Reason: err.Error()}
	}
	*s = Slot(i)
	if !s.Valid() {
		return &errors.UnmarshalError{Type: "Slot", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler for Slot. It also makes
// Slot usable as a JSON object key.
func (s Slot) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Slot", Value: int(s)}
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Slot.
func (s *Slot) UnmarshalText(text []byte) error {
	parsed, err := ParseSlot(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// TypeName returns "Slot".
func (s Slot) TypeName() string {
	return "Slot"
}

// Redacted returns the same string representation as String().
func (s Slot) Redacted() string {
	return s.String()
}

// IsZero reports whether the Slot has its zero value (Head). Head is a
// valid slot, so IsZero returning true is not an error condition.
func (s Slot) IsZero() bool {
	return s == Head
}

// Equal reports whether other is the same Slot (or a non-nil *Slot pointing
// to it).
func (s Slot) Equal(other any) bool {
	switch v := other.(type) {
	case Slot:
		return s == v
	case *Slot:
		if v == nil {
			return false
		}
		return s == *v
	default:
		return false
	}
}

// Validate returns a *MarshalError for values outside the enumeration.
func (s Slot) Validate() error {
	if !s.Valid() {
		return &errors.MarshalError{Type: "Slot", Value: int(s)}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Slot.
func (s Slot) MarshalYAML() (any, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Slot", Value: int(s)}
	}
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Slot.
func (s *Slot) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Slot", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseSlot(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
