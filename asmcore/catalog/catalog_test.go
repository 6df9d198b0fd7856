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

package catalog_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"dirpx.dev/acasm/asmcore/catalog"
	"dirpx.dev/acasm/asmcore/internal/fixture"
	"dirpx.dev/acasm/asmcore/model"
	"dirpx.dev/acasm/asmcore/model/part"
	"dirpx.dev/acasm/asmcore/model/semver"
)

const doc = `version: 1.06.1
parts:
  - id: hd-01
    name: HD-011 MELANDER
    classification: head
    weight: 3250
  - id: lg-tk-01
    classification: legs
    category: tank
    weight: 47650
  - id: bs-01
    classification: booster
  - id: wp-rifle
    classification: arm-unit
  - id: wp-missile
    classification: back-unit
`

func allParts() []part.Part {
	return []part.Part{
		fixture.Head, fixture.Core, fixture.Arms, fixture.Bipedal, fixture.Tank,
		fixture.BoosterA, fixture.BoosterB, fixture.FCS, fixture.Generator,
		fixture.Expansion, fixture.Rifle, fixture.Blade, fixture.Missile,
	}
}

func TestLoad(t *testing.T) {
	c, err := catalog.Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := c.Version(); got != (semver.Version{Major: 1, Minor: 6, Patch: 1}) {
		t.Errorf("Version() = %v", got)
	}
	if c.Len() != 5 {
		t.Errorf("Len() = %d, want 5", c.Len())
	}
	tank, ok := c.Find("lg-tk-01")
	if !ok || !tank.IsTank() || tank.Weight != 47650 {
		t.Errorf("Find(lg-tk-01) = %v, %v", tank, ok)
	}
	if c.String() != "Catalog(1.6.1, 5 parts)" {
		t.Errorf("String() = %q", c.String())
	}
}

func TestLoad_ReportsEveryBrokenPart(t *testing.T) {
	input := `version: 1.0
parts:
  - id: ok
    classification: head
  - id: ""
    classification: core
  - id: bad-class
    classification: turret
  - id: heavy
    classification: arms
    weight: -1
`
	_, err := catalog.Load(strings.NewReader(input))
	if err == nil {
		t.Fatal("Load() error = nil")
	}
	msg := err.Error()
	for _, want := range []string{"parts[1] (line 5)", "parts[2] (line 7)", "parts[3] (line 9)"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Load() error = %q, missing %q", msg, want)
		}
	}
	if strings.Contains(msg, "parts[0]") {
		t.Errorf("Load() error = %q, reports a valid part", msg)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"unknown field", "version: 1.0\nregulation: x\n"},
		{"bad version", "version: one\nparts: []\n"},
		{"parts not a list", "version: 1.0\nparts: head\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := catalog.Load(strings.NewReader(tt.input)); err == nil {
				t.Error("Load() error = nil")
			}
		})
	}
}

func TestNew_RejectsDuplicates(t *testing.T) {
	parts := []part.Part{fixture.Head, fixture.Core, fixture.Head}
	_, err := catalog.New(semver.Version{Major: 1}, parts)
	if err == nil || !strings.Contains(err.Error(), "duplicate id hd-01 at 0 and 2") {
		t.Errorf("New() error = %v, want duplicate hd-01", err)
	}
}

func TestNew_CopiesParts(t *testing.T) {
	parts := allParts()
	c, err := catalog.New(semver.Version{Major: 1}, parts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	parts[0] = fixture.Core
	if got, _ := c.Find("hd-01"); got != fixture.Head {
		t.Errorf("Find(hd-01) = %v after caller mutation", got)
	}
	c.Parts()[0] = fixture.Core
	if c.Parts()[0] != fixture.Head {
		t.Error("Parts() exposes internal storage")
	}
}

func TestFind(t *testing.T) {
	c, _ := catalog.New(semver.Version{Major: 1}, allParts())

	tests := []struct {
		id     string
		wantOK bool
	}{
		{"wp-rifle", true},
		{part.NotEquippedID, true},
		{"missing", false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, ok := c.Find(tt.id)
			if ok != tt.wantOK {
				t.Fatalf("Find(%q) ok = %v, want %v", tt.id, ok, tt.wantOK)
			}
			if ok && got.ID != tt.id {
				t.Errorf("Find(%q) = %v", tt.id, got.ID)
			}
		})
	}
}

func TestCandidates(t *testing.T) {
	c, _ := catalog.New(semver.Version{Major: 1}, allParts())
	pool := c.Candidates()

	if err := pool.Validate(); err != nil {
		t.Fatalf("Candidates().Validate() = %v", err)
	}

	ids := func(slot model.Slot) string {
		var out []string
		for _, p := range pool[slot] {
			out = append(out, p.ID)
		}
		return strings.Join(out, ",")
	}

	tests := []struct {
		slot model.Slot
		want string
	}{
		{model.Head, "hd-01"},
		{model.Legs, "lg-bp-01,lg-tk-01"},
		{model.Booster, "not-equipped,bs-01,bs-02"},
		{model.Expansion, "not-equipped,ex-01"},
		{model.RightArmUnit, "not-equipped,wp-rifle,wp-blade"},
		{model.LeftBackUnit, "not-equipped,wp-rifle,wp-blade,wp-missile"},
	}
	for _, tt := range tests {
		t.Run(tt.slot.String(), func(t *testing.T) {
			if got := ids(tt.slot); got != tt.want {
				t.Errorf("Candidates()[%s] = %s, want %s", tt.slot, got, tt.want)
			}
		})
	}
}

func TestCatalog_Encoding(t *testing.T) {
	c, err := catalog.Load(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	var back catalog.Catalog
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if back.Version() != c.Version() || back.Len() != c.Len() {
		t.Errorf("JSON round trip = %v, want %v", back, c)
	}

	out, err := yaml.Marshal(c)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	again, err := catalog.Load(strings.NewReader(string(out)))
	if err != nil {
		t.Fatalf("Load(yaml.Marshal()) error = %v", err)
	}
	if again.String() != c.String() {
		t.Errorf("YAML round trip = %v, want %v", again, c)
	}
}

func writeCatalog(t *testing.T, dir, name, version string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	body := "version: " + version + "\nparts:\n  - id: hd-" + version + "\n    classification: head\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSet(t *testing.T) {
	dir := t.TempDir()
	s, err := catalog.LoadFiles(
		writeCatalog(t, dir, "b.yaml", "1.06"),
		writeCatalog(t, dir, "a.yaml", "1.03.1"),
		writeCatalog(t, dir, "c.yaml", "1.07.0-beta"),
	)
	if err != nil {
		t.Fatalf("LoadFiles() error = %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	var got []string
	for _, v := range s.Versions() {
		got = append(got, v.String())
	}
	if strings.Join(got, " ") != "1.3.1 1.6.0 1.7.0-beta" {
		t.Errorf("Versions() = %v", got)
	}

	c, ok := s.Select(semver.MustParse("1.6"))
	if !ok || c.Version().String() != "1.6.0" {
		t.Errorf("Select(1.6) = %v, %v", c, ok)
	}
	if _, ok := s.Select(semver.MustParse("1.5")); ok {
		t.Error("Select(1.5) ok = true")
	}

	latest, ok := s.Latest()
	if !ok || latest.Version().String() != "1.7.0-beta" {
		t.Errorf("Latest() = %v, %v", latest, ok)
	}
}

func TestSet_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := catalog.LoadFiles(writeCatalog(t, dir, "a.yaml", "1.6"), writeCatalog(t, dir, "b.yaml", "1.06.0")); err == nil {
		t.Error("LoadFiles(duplicate versions) error = nil")
	}
	if _, err := catalog.LoadFiles(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFiles(missing) error = %v", err)
	}
	if _, ok := (catalog.Set{}).Latest(); ok {
		t.Error("Set{}.Latest() ok = true")
	}
}
