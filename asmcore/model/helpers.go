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
	"fmt"

	"dirpx.dev/rxmerr"
)

// ValidateAll runs Validate on every element of models and reports all
// failures together. Each failure is prefixed with its index and type name,
// for example "[3] Part: ...". A nil or empty slice is valid.
func ValidateAll[T Validatable](models []T) error {
	c := rxmerr.NewCollector()
	for i, m := range models {
		err := m.Validate()
		if err == nil {
			continue
		}
		c.Append(fmt.Errorf("[%d] %s: %w", i, typeName(m), err))
	}
	return c.Err()
}

// MustValidate returns m, or panics when m is invalid. Use it for
// package-level values whose validity is a programming invariant.
//
// The constraint names only the methods used here, so value types whose
// decoders have pointer receivers (Slot, Part) are accepted.
func MustValidate[T interface {
	Validatable
	Loggable
	Identifiable
}](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("invalid %s %s: %v", m.TypeName(), m.Redacted(), err))
	}
	return m
}

func typeName(v any) string {
	if id, ok := v.(Identifiable); ok {
		return id.TypeName()
	}
	return fmt.Sprintf("%T", v)
}
