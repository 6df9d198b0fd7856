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

// Package model defines the contracts shared by every acasm domain type and
// the closed Slot enumeration that keys assemblies, candidate pools and lock
// sets.
//
// Domain types (Slot, Classification, Part, Assembly, Catalog) implement
// Model or its constituent parts: Validatable, Serializable, Loggable,
// Identifiable and ZeroCheckable. ValidateAll and MustValidate rely on
// that contract.
//
// Model types are immutable value types. Concurrent reads are safe; none of
// the types in acasm expose in-place mutation.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts required
// for acasm domain types.
//
// Implementations MUST satisfy all embedded interfaces: Validatable checks
// invariants; Serializable provides JSON and YAML encoding; Loggable offers
// both safe and full string representations; Identifiable supplies a
// canonical type name; ZeroCheckable detects empty instances.
//
//	var _ Model = (*Part)(nil) // Compile-time check
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state.
//
// Validate MUST be fast and deterministic, MUST NOT perform I/O, and MUST
// return nil if and only if the instance is fully valid. Failures SHOULD be
// reported with *errors.FieldError so callers can tell which field is wrong.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants and is
	// ready for use.
	Validate() error
}

// Serializable defines the contract for types with JSON and YAML forms.
//
// Marshal implementations SHOULD refuse invalid values; unmarshal
// implementations SHOULD validate the decoded value before returning.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that can be written to logs.
type Loggable interface {
	// Redacted returns a compact representation suitable for structured
	// logs (for example, part identifiers instead of full attribute sets).
	Redacted() string

	// String returns a human-readable representation of the instance.
	String() string
}

// Identifiable defines the contract for types exposing a canonical name.
type Identifiable interface {
	// TypeName returns the canonical name of this model type, in CamelCase
	// and without a package prefix.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report emptiness.
type ZeroCheckable interface {
	// IsZero reports whether this instance is in a zero or empty state.
	IsZero() bool
}

// Comparable defines the contract for types with a logical equality.
type Comparable[T any] interface {
	// Equal reports whether this instance is equal to other.
	Equal(other T) bool
}
