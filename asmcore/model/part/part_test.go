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
	"testing"

	"dirpx.dev/acasm/asmcore/model"
	"gopkg.in/yaml.v3"
)

func TestParseClassification(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Classification
		wantErr bool
	}{
		{"head", "head", ClassHead, false},
		{"legs", "legs", ClassLegs, false},
		{"FCS", "FCS", ClassFCS, false},
		{"arm-unit", "arm-unit", ClassArmUnit, false},
		{"armUnit", "armUnit", ClassArmUnit, false},
		{"back_unit", "back_unit", ClassBackUnit, false},
		{"not-equipped", "not-equipped", NotEquipped, false},
		{"notEquipped", "notEquipped", NotEquipped, false},
		{"empty", "", ClassHead, true},
		{"invalid", "wing", ClassHead, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClassification(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseClassification() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseClassification() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassification_String(t *testing.T) {
	tests := []struct {
		c    Classification
		want string
	}{
		{ClassHead, "head"},
		{ClassBackUnit, "back-unit"},
		{NotEquipped, "not-equipped"},
		{Classification(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.c.String(); got != tt.want {
				t.Errorf("Classification.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassification_JSON(t *testing.T) {
	data, err := json.Marshal(ClassGenerator)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `"generator"` {
		t.Errorf("json.Marshal() = %s", data)
	}

	var c Classification
	if err := json.Unmarshal([]byte(`"not-equipped"`), &c); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if c != NotEquipped {
		t.Errorf("json.Unmarshal() = %v, want %v", c, NotEquipped)
	}

	if err := json.Unmarshal([]byte(`3`), &c); err == nil {
		t.Error("json.Unmarshal() should reject numeric classification")
	}
	if _, err := json.Marshal(Classification(-1)); err == nil {
		t.Error("json.Marshal() should reject invalid classification")
	}
}

func TestForSlot(t *testing.T) {
	tests := []struct {
		slot model.Slot
		want Classification
	}{
		{model.Head, ClassHead},
		{model.Legs, ClassLegs},
		{model.Booster, ClassBooster},
		{model.Expansion, ClassExpansion},
		{model.LeftArmUnit, ClassArmUnit},
		{model.RightArmUnit, ClassArmUnit},
		{model.LeftBackUnit, ClassBackUnit},
		{model.Slot(99), NotEquipped},
	}

	for _, tt := range tests {
		t.Run(tt.slot.String(), func(t *testing.T) {
			if got := ForSlot(tt.slot); got != tt.want {
				t.Errorf("ForSlot() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPart_Predicates(t *testing.T) {
	tank := Part{ID: "tk", Classification: ClassLegs, Category: Tank}
	biped := Part{ID: "bp", Classification: ClassLegs, Category: Bipedal}
	none := NotEquippedPart()

	if !tank.IsTank() || biped.IsTank() {
		t.Errorf("IsTank() tank=%v biped=%v", tank.IsTank(), biped.IsTank())
	}
	if !none.IsNotEquipped() || tank.IsNotEquipped() {
		t.Errorf("IsNotEquipped() none=%v tank=%v", none.IsNotEquipped(), tank.IsNotEquipped())
	}
	if err := none.Validate(); err != nil {
		t.Errorf("NotEquippedPart().Validate() error = %v", err)
	}
}

func TestPart_Fits(t *testing.T) {
	rifle := Part{ID: "rifle", Classification: ClassArmUnit}
	missile := Part{ID: "missile", Classification: ClassBackUnit}

	tests := []struct {
		name string
		part Part
		slot model.Slot
		want bool
	}{
		{"arm unit in hand", rifle, model.RightArmUnit, true},
		{"arm unit on shoulder", rifle, model.LeftBackUnit, true},
		{"back unit in hand", missile, model.LeftArmUnit, false},
		{"back unit on shoulder", missile, model.RightBackUnit, true},
		{"sentinel anywhere", NotEquippedPart(), model.Booster, true},
		{"weapon as head", rifle, model.Head, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.part.Fits(tt.slot); got != tt.want {
				t.Errorf("Part.Fits() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPart_Validate(t *testing.T) {
	tests := []struct {
		name    string
		part    Part
		wantErr bool
	}{
		{"valid", Part{ID: "h1", Classification: ClassHead, Weight: 3000}, false},
		{"missing id", Part{Classification: ClassHead}, true},
		{"bad classification", Part{ID: "x", Classification: Classification(50)}, true},
		{"negative weight", Part{ID: "x", Classification: ClassHead, Weight: -1}, true},
		{"negative price", Part{ID: "x", Classification: ClassHead, Price: -5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.part.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Part.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPart_YAML(t *testing.T) {
	input := `
id: lg-tank-01
name: VE-42B
classification: legs
category: tank
weight: 24000
load_limit: 80000
qb_en_consumption: 600
`
	var p Part
	if err := yaml.Unmarshal([]byte(input), &p); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if p.ID != "lg-tank-01" || !p.IsTank() || p.LoadLimit != 80000 || p.QBENConsumption != 600 {
		t.Errorf("yaml.Unmarshal() = %+v", p)
	}

	if err := yaml.Unmarshal([]byte("classification: legs\n"), &p); err == nil {
		t.Error("yaml.Unmarshal() should fail for part without id")
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	var back Part
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if !back.Equal(p) {
		t.Errorf("YAML round-trip = %+v, want %+v", back, p)
	}
}

func TestPart_JSON(t *testing.T) {
	p := Part{ID: "gen", Classification: ClassGenerator, ENOutput: 3000}
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	var back Part
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if !back.Equal(p) {
		t.Errorf("JSON round-trip = %+v, want %+v", back, p)
	}

	if _, err := json.Marshal(Part{}); err == nil {
		t.Error("json.Marshal() should refuse the zero part")
	}
}

func TestPart_Loggable(t *testing.T) {
	p := Part{ID: "rf", Name: "Rifle", Classification: ClassArmUnit, Category: "rifle"}
	if got, want := p.Redacted(), "arm-unit:rf"; got != want {
		t.Errorf("Redacted() = %q, want %q", got, want)
	}
	if got, want := p.String(), `rf "Rifle"[arm-unit/rifle]`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if !(Part{}).IsZero() || p.IsZero() {
		t.Error("IsZero() mismatch")
	}
}

func TestCompatible(t *testing.T) {
	tank := Part{ID: "tk", Classification: ClassLegs, Category: Tank}
	biped := Part{ID: "bp", Classification: ClassLegs, Category: Bipedal}
	booster := Part{ID: "bst", Classification: ClassBooster}
	none := NotEquippedPart()

	tests := []struct {
		name    string
		legs    Part
		booster Part
		want    bool
	}{
		{"tank without booster", tank, none, true},
		{"tank with booster", tank, booster, false},
		{"biped with booster", biped, booster, true},
		{"biped without booster", biped, none, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compatible(tt.legs, tt.booster); got != tt.want {
				t.Errorf("Compatible() = %v, want %v", got, tt.want)
			}
		})
	}
}
