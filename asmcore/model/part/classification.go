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

package part

import (
	"encoding/json"

	"dirpx.dev/acasm/asmcore/errors"
	"dirpx.dev/acasm/asmcore/model"
	"gopkg.in/yaml.v3"
)

// Classification is the structural role of a part: which kind of slot it is
// built for, or the NotEquipped sentinel meaning "slot intentionally left
// empty".
//
// Classification is closed. The finer-grained kind of a part (tank legs,
// rifle, missile launcher) lives in Category, which is open.
type Classification int

const (
	// ClassHead marks head frame parts.
	ClassHead Classification = iota
	// ClassCore marks core frame parts.
	ClassCore
	// ClassArms marks arms frame parts.
	ClassArms
	// ClassLegs marks legs frame parts.
	ClassLegs
	// ClassBooster marks boosters.
	ClassBooster
	// ClassFCS marks fire control systems.
	ClassFCS
	// ClassGenerator marks generators.
	ClassGenerator
	// ClassExpansion marks expansions.
	ClassExpansion
	// ClassArmUnit marks hand-held weapons.
	ClassArmUnit
	// ClassBackUnit marks shoulder-mounted weapons.
	ClassBackUnit
	// NotEquipped is the sentinel for an intentionally empty slot.
	NotEquipped
)

// String constants for Classification values.
const (
	ClassHeadStr      = "head"
	ClassCoreStr      = "core"
	ClassArmsStr      = "arms"
	ClassLegsStr      = "legs"
	ClassBoosterStr   = "booster"
	ClassFCSStr       = "fcs"
	ClassGeneratorStr = "generator"
	ClassExpansionStr = "expansion"
	ClassArmUnitStr   = "arm-unit"
	ClassBackUnitStr  = "back-unit"
	NotEquippedStr    = "not-equipped"
)

var classificationNames = [...]string{
	ClassHeadStr, ClassCoreStr, ClassArmsStr, ClassLegsStr, ClassBoosterStr,
	ClassFCSStr, ClassGeneratorStr, ClassExpansionStr, ClassArmUnitStr,
	ClassBackUnitStr, NotEquippedStr,
}

var _ model.Model = (*Classification)(nil)

// String returns the canonical kebab-case name, or "unknown".
func (c Classification) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return classificationNames[c]
}

// ParseClassification converts a textual representation into a
// Classification.
//
// The canonical kebab-case names are accepted, plus camelCase and
// snake_case spellings of the multi-word values and the upper-case "FCS":
//
//	"arm-unit", "armUnit", "arm_unit"             -> ClassArmUnit
//	"not-equipped", "notEquipped", "not_equipped" -> NotEquipped
//
// Any other input returns a *ParseError; the returned Classification
// (ClassHead) MUST NOT be used in that case.
func ParseClassification(str string) (Classification, error) {
	switch str {
	case ClassHeadStr:
		return ClassHead, nil
	case ClassCoreStr:
		return ClassCore, nil
	case ClassArmsStr:
		return ClassArms, nil
	case ClassLegsStr:
		return ClassLegs, nil
	case ClassBoosterStr:
		return ClassBooster, nil
	case ClassFCSStr, "FCS":
		return ClassFCS, nil
	case ClassGeneratorStr:
		return ClassGenerator, nil
	case ClassExpansionStr:
		return ClassExpansion, nil
	case ClassArmUnitStr, "armUnit", "arm_unit":
		return ClassArmUnit, nil
	case ClassBackUnitStr, "backUnit", "back_unit":
		return ClassBackUnit, nil
	case NotEquippedStr, "notEquipped", "not_equipped":
		return NotEquipped, nil
	default:
		return ClassHead, &errors.ParseError{Type: "Classification", Value: str}
	}
}

// Valid reports whether the value is one of the defined constants.
func (c Classification) Valid() bool {
	return c >= ClassHead && c <= NotEquipped
}

// ForSlot returns the classification of regular (equipped) parts built for
// slot s. Arm-unit and back-unit slots map to ClassArmUnit and ClassBackUnit
// regardless of side.
func ForSlot(s model.Slot) Classification {
	switch s {
	case model.Head:
		return ClassHead
	case model.Core:
		return ClassCore
	case model.Arms:
		return ClassArms
	case model.Legs:
		return ClassLegs
	case model.Booster:
		return ClassBooster
	case model.FCS:
		return ClassFCS
	case model.Generator:
		return ClassGenerator
	case model.Expansion:
		return ClassExpansion
	case model.RightArmUnit, model.LeftArmUnit:
		return ClassArmUnit
	case model.RightBackUnit, model.LeftBackUnit:
		return ClassBackUnit
	default:
		return NotEquipped
	}
}

// MarshalJSON implements json.Marshaler for Classification.
//
// A valid value is written as its canonical string (for example,
// "back-unit"). A value outside the enumeration returns a *MarshalError
// and produces no output.
func (c Classification) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Classification", Value: int(c)}
	}
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Classification.
//
// Only a JSON string is accepted, resolved through ParseClassification;
// classification ordinals are not stable across catalog versions. A
// non-string token returns an *UnmarshalError and an unknown name returns
// the *ParseError from ParseClassification.
func (c *Classification) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "Classification", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseClassification(str)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Classification.
func (c Classification) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Classification", Value: int(c)}
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Classification.
func (c *Classification) UnmarshalText(text []byte) error {
	parsed, err := ParseClassification(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Classification.
func (c Classification) MarshalYAML() (any, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Classification", Value: int(c)}
	}
	return c.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Classification.
func (c *Classification) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Classification", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseClassification(str)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// TypeName returns "Classification".
func (c Classification) TypeName() string { return "Classification" }

// Redacted returns the same string representation as String().
func (c Classification) Redacted() string { return c.String() }

// IsZero reports whether c is ClassHead, the zero value.
func (c Classification) IsZero() bool { return c == ClassHead }

// Validate returns a *MarshalError for values outside the enumeration.
func (c Classification) Validate() error {
	if !c.Valid() {
		return &errors.MarshalError{Type: "Classification", Value: int(c)}
	}
	return nil
}
