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

// Package part models catalog entries: immutable parts that can be placed
// into assembly slots.
//
// A Part carries two tags. Classification is the closed structural role
// (which slot kind the part is built for, or the NotEquipped sentinel).
// Category is the open, finer-grained kind; for legs it decides the
// tank/booster rule (tank legs carry their own thrusters and take no
// booster).
//
// Parts are owned by the catalog and never mutated. All numeric attributes
// are optional and default to zero; each slot reads only the attributes it
// understands.
package part

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/acasm/asmcore/errors"
	"dirpx.dev/acasm/asmcore/model"
	"gopkg.in/yaml.v3"
)

// Category is the specific kind of a part within its classification.
//
// The set of categories is open: catalogs introduce weapon categories freely.
// Only the legs categories below carry engine semantics.
type Category string

// Legs categories.
const (
	Bipedal      Category = "bipedal"
	ReverseJoint Category = "reverse-joint"
	Tetrapod     Category = "tetrapod"
	Tank         Category = "tank"
)

// NotEquippedCategory is the category of the not-equipped sentinel.
const NotEquippedCategory Category = "not-equipped"

// NotEquippedID is the identifier of the not-equipped sentinel part.
const NotEquippedID = "not-equipped"

// Part is an immutable catalog entry.
type Part struct {
	ID             string         `json:"id" yaml:"id"`
	Name           string         `json:"name,omitempty" yaml:"name,omitempty"`
	Manufacturer   string         `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
	Classification Classification `json:"classification" yaml:"classification"`
	Category       Category       `json:"category,omitempty" yaml:"category,omitempty"`

	Price  int `json:"price,omitempty" yaml:"price,omitempty"`
	Weight int `json:"weight,omitempty" yaml:"weight,omitempty"`
	ENLoad int `json:"en_load,omitempty" yaml:"en_load,omitempty"`

	// Frame attributes.
	AP                int `json:"ap,omitempty" yaml:"ap,omitempty"`
	AntiKinetic       int `json:"anti_kinetic_defense,omitempty" yaml:"anti_kinetic_defense,omitempty"`
	AntiEnergy        int `json:"anti_energy_defense,omitempty" yaml:"anti_energy_defense,omitempty"`
	AntiExplosive     int `json:"anti_explosive_defense,omitempty" yaml:"anti_explosive_defense,omitempty"`
	AttitudeStability int `json:"attitude_stability,omitempty" yaml:"attitude_stability,omitempty"`

	// Load limits, read from legs and arms.
	LoadLimit     int `json:"load_limit,omitempty" yaml:"load_limit,omitempty"`
	ArmsLoadLimit int `json:"arms_load_limit,omitempty" yaml:"arms_load_limit,omitempty"`

	// Generator attributes.
	ENOutput          int `json:"en_output,omitempty" yaml:"en_output,omitempty"`
	SupplyRecovery    int `json:"supply_recovery,omitempty" yaml:"supply_recovery,omitempty"`
	PostRecoveryDelay int `json:"post_recovery_delay,omitempty" yaml:"post_recovery_delay,omitempty"`

	// Core adjustments, in percent.
	GeneratorOutputAdj   int `json:"generator_output_adj,omitempty" yaml:"generator_output_adj,omitempty"`
	BoosterEfficiencyAdj int `json:"booster_efficiency_adj,omitempty" yaml:"booster_efficiency_adj,omitempty"`

	// QBENConsumption is read from boosters and from tank legs.
	QBENConsumption int `json:"qb_en_consumption,omitempty" yaml:"qb_en_consumption,omitempty"`
}

var (
	_ model.Model            = (*Part)(nil)
	_ model.Comparable[Part] = Part{}
)

// NotEquippedPart returns the sentinel part used for slots that are
// intentionally left empty.
func NotEquippedPart() Part {
	return Part{
		ID:             NotEquippedID,
		Name:           "(not equipped)",
		Classification: NotEquipped,
		Category:       NotEquippedCategory,
	}
}

// IsTank reports whether p is a tank legs part.
func (p Part) IsTank() bool {
	return p.Category == Tank
}

// IsNotEquipped reports whether p is the not-equipped sentinel.
func (p Part) IsNotEquipped() bool {
	return p.Classification == NotEquipped
}

// Compatible reports whether legs and booster may appear together in one
// assembly: tank legs require the not-equipped booster, every other legs
// category requires an equipped one.
//
// This is the single tank/booster rule of the engine. Candidate derivation,
// lock sets, the random builder and assembly validation all call it.
func Compatible(legs, booster Part) bool {
	return legs.IsTank() == booster.IsNotEquipped()
}

// Fits reports whether p may be placed into slot s. The not-equipped
// sentinel fits any slot.
func (p Part) Fits(s model.Slot) bool {
	if p.IsNotEquipped() {
		return true
	}
	want := ForSlot(s)
	if p.Classification == want {
		return true
	}
	// Hand-held weapons may be mounted on the shoulder.
	return want == ClassBackUnit && p.Classification == ClassArmUnit
}

// Validate checks identifier, classification and non-negative attributes.
func (p Part) Validate() error {
	if p.ID == "" {
		return &errors.FieldError{Type: "Part", Field: "ID", Reason: "must not be empty"}
	}
	if !p.Classification.Valid() {
		return &errors.FieldError{Type: "Part", Field: "Classification", Reason: "unknown classification", Value: int(p.Classification)}
	}
	for _, f := range []struct {
		name  string
		value int
	}{{"Price", p.Price}, {"Weight", p.Weight}, {"ENLoad", p.ENLoad}} {
		if f.value < 0 {
			return &errors.FieldError{Type: "Part", Field: f.name, Reason: "must be non-negative", Value: f.value}
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Part. Invalid parts are refused.
func (p Part) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	type alias Part
	return json.Marshal(alias(p))
}

// UnmarshalJSON implements json.Unmarshaler for Part and validates the
// decoded value.
func (p *Part) UnmarshalJSON(data []byte) error {
	type alias Part
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if err := Part(a).Validate(); err != nil {
		return err
	}
	*p = Part(a)
	return nil
}

// MarshalYAML implements yaml.Marshaler for Part.
func (p Part) MarshalYAML() (any, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	type alias Part
	return alias(p), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Part.
func (p *Part) UnmarshalYAML(node *yaml.Node) error {
	type alias Part
	var a alias
	if err := node.Decode(&a); err != nil {
		return err
	}
	if err := Part(a).Validate(); err != nil {
		return err
	}
	*p = Part(a)
	return nil
}

// TypeName returns "Part".
func (p Part) TypeName() string { return "Part" }

// IsZero reports whether p is the zero Part. The zero Part stands for
// "no part" in optional contexts; it is never a valid catalog entry.
func (p Part) IsZero() bool { return p == Part{} }

// Equal reports whether p and other are the same catalog entry.
func (p Part) Equal(other Part) bool { return p == other }

// Redacted returns the classification and identifier only.
func (p Part) Redacted() string {
	return p.Classification.String() + ":" + p.ID
}

// String returns a short human-readable description of the part.
func (p Part) String() string {
	if p.Name == "" {
		return fmt.Sprintf("%s[%s/%s]", p.ID, p.Classification, p.Category)
	}
	return fmt.Sprintf("%s %q[%s/%s]", p.ID, p.Name, p.Classification, p.Category)
}
