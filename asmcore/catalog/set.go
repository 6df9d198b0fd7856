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

package catalog

import (
	"os"
	"slices"

	"dirpx.dev/acasm/asmcore/errors"
	"dirpx.dev/acasm/asmcore/model/semver"
)

// Set holds the catalogs of several regulations, ordered by version.
type Set struct {
	catalogs []Catalog
}

// NewSet returns a Set of cs. Two catalogs with the same version precedence
// are rejected.
func NewSet(cs ...Catalog) (Set, error) {
	sorted := slices.Clone(cs)
	slices.SortStableFunc(sorted, func(a, b Catalog) int { return a.version.Compare(b.version) })
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].version.Equal(sorted[i].version) {
			return Set{}, &errors.FieldError{
				Type:   "CatalogSet",
				Field:  "version",
				Reason: "duplicate regulation " + sorted[i].version.String(),
				Value:  sorted[i].version.String(),
			}
		}
	}
	return Set{catalogs: sorted}, nil
}

// LoadFiles loads one catalog per path and returns them as a Set.
func LoadFiles(paths ...string) (Set, error) {
	cs := make([]Catalog, 0, len(paths))
	for _, path := range paths {
		c, err := loadFile(path)
		if err != nil {
			return Set{}, err
		}
		cs = append(cs, c)
	}
	return NewSet(cs...)
}

func loadFile(path string) (c Catalog, err error) {
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Load(f)
}

// Versions lists the regulations in ascending order.
func (s Set) Versions() []semver.Version {
	vs := make([]semver.Version, len(s.catalogs))
	for i, c := range s.catalogs {
		vs[i] = c.version
	}
	return vs
}

// Len returns the number of catalogs.
func (s Set) Len() int { return len(s.catalogs) }

// Select returns the catalog published for v.
func (s Set) Select(v semver.Version) (Catalog, bool) {
	i, found := slices.BinarySearchFunc(s.catalogs, v, func(c Catalog, v semver.Version) int {
		return c.version.Compare(v)
	})
	if !found {
		return Catalog{}, false
	}
	return s.catalogs[i], true
}

// Latest returns the catalog with the highest regulation version.
func (s Set) Latest() (Catalog, bool) {
	if len(s.catalogs) == 0 {
		return Catalog{}, false
	}
	return s.catalogs[len(s.catalogs)-1], true
}
