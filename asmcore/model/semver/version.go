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

// Package semver holds the regulation version a part catalog was published
// for.
//
// Regulations are balance revisions of the part catalog. They are numbered
// like semantic versions but are often written loosely ("1.06", "v1.3"), so
// parsing is tolerant while ordering follows SemVer 2.0.0 precedence.
package semver

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"

	bsemver "github.com/blang/semver/v4"
	"gopkg.in/yaml.v3"

	"dirpx.dev/acasm/asmcore/errors"
)

// Version identifies one regulation. The zero value is 0.0.0 and stands for
// "unversioned".
type Version struct {
	// Major changes when the catalog is rebuilt, typically with a new
	// expansion.
	Major int

	// Minor counts balance patches within a major regulation.
	Minor int

	// Patch counts hotfixes to a balance patch.
	Patch int

	// Prerelease marks test regulations such as "beta.1". A prerelease
	// orders before the plain version with the same numbers.
	Prerelease string
}

// ParseVersion parses s as a regulation version.
//
// A leading "v", surrounding spaces, leading zeroes ("1.06") and a missing
// patch component ("1.6") are accepted. Build metadata is dropped. Anything
// else blang/semver rejects yields a *errors.ParseError.
func ParseVersion(s string) (Version, error) {
	bv, err := bsemver.ParseTolerant(s)
	if err != nil {
		return Version{}, &errors.ParseError{Type: "Version", Value: s}
	}
	v := Version{Major: int(bv.Major), Minor: int(bv.Minor), Patch: int(bv.Patch)}
	if len(bv.Pre) > 0 {
		pre := make([]string, len(bv.Pre))
		for i, p := range bv.Pre {
			pre[i] = p.String()
		}
		v.Prerelease = strings.Join(pre, ".")
	}
	return v, nil
}

// MustParse is like ParseVersion but panics on error. Intended for constants
// in tests and fixtures.
func MustParse(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns "Major.Minor.Patch[-Prerelease]".
func (v Version) String() string {
	s := strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor) + "." + strconv.Itoa(v.Patch)
	if v.Prerelease != "" {
		s += "-" + v.Prerelease
	}
	return s
}

// TypeName returns "Version".
func (v Version) TypeName() string { return "Version" }

// Redacted returns String; versions carry nothing sensitive.
func (v Version) Redacted() string { return v.String() }

// IsZero reports whether v is 0.0.0 without a prerelease.
func (v Version) IsZero() bool { return v == Version{} }

// Validate reports a *errors.FieldError for negative components or a
// malformed prerelease.
func (v Version) Validate() error {
	for _, c := range []struct {
		field string
		value int
	}{{"major", v.Major}, {"minor", v.Minor}, {"patch", v.Patch}} {
		if c.value < 0 {
			return &errors.FieldError{Type: "Version", Field: c.field, Reason: "must be non-negative", Value: c.value}
		}
	}
	if _, err := v.blang(); err != nil {
		return &errors.FieldError{Type: "Version", Field: "prerelease", Reason: err.Error(), Value: v.Prerelease}
	}
	return nil
}

// Compare returns -1, 0 or +1 as v orders before, equal to or after other.
// Invalid versions order before every valid one and compare equal among
// themselves.
func (v Version) Compare(other Version) int {
	a, aerr := v.blang()
	b, berr := other.blang()
	switch {
	case aerr != nil && berr != nil:
		return 0
	case aerr != nil:
		return -1
	case berr != nil:
		return 1
	}
	return a.Compare(b)
}

// Less reports whether v orders before other.
func (v Version) Less(other Version) bool { return v.Compare(other) < 0 }

// Equal reports whether v and other have the same precedence.
func (v Version) Equal(other Version) bool { return v.Compare(other) == 0 }

func (v Version) blang() (bsemver.Version, error) {
	if v.Major < 0 || v.Minor < 0 || v.Patch < 0 {
		return bsemver.Version{}, &errors.ParseError{Type: "Version", Value: v.String()}
	}
	bv := bsemver.Version{Major: uint64(v.Major), Minor: uint64(v.Minor), Patch: uint64(v.Patch)}
	if v.Prerelease != "" {
		for _, id := range strings.Split(v.Prerelease, ".") {
			pr, err := bsemver.NewPRVersion(id)
			if err != nil {
				return bsemver.Version{}, err
			}
			bv.Pre = append(bv.Pre, pr)
		}
	}
	return bv, nil
}

// Sort orders vs ascending by precedence, in place.
func Sort(vs []Version) {
	slices.SortStableFunc(vs, Version.Compare)
}

// Max returns the highest version in vs and false when vs is empty.
func Max(vs []Version) (Version, bool) {
	if len(vs) == 0 {
		return Version{}, false
	}
	return slices.MaxFunc(vs, Version.Compare), true
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(data []byte) error {
	parsed, err := ParseVersion(string(data))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalJSON encodes v as a JSON string.
func (v Version) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(v.String())
}

// UnmarshalJSON accepts a JSON string in any form ParseVersion accepts.
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Version", Data: data, Reason: err.Error()}
	}
	return v.UnmarshalText([]byte(s))
}

// MarshalYAML encodes v as a YAML string scalar.
func (v Version) MarshalYAML() (any, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v.String(), nil
}

// UnmarshalYAML decodes a scalar node. Numeric scalars such as 1.06 are read
// by their literal text, so the value is not rounded through a float.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return &errors.UnmarshalError{Type: "Version", Reason: "expected a scalar"}
	}
	return v.UnmarshalText([]byte(node.Value))
}
