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

// Package lock implements pinned parts: a partial slot-to-part mapping that
// the random builder must honor instead of choosing at random.
//
// Set is an immutable value. Lock and Unlock return a new Set and never
// modify the receiver, so a Set can be shared freely between goroutines.
//
// Every Set keeps one cross-slot invariant: when both legs and booster are
// locked, they satisfy part.Compatible. Lock restores the invariant by
// dropping the lock on the other slot of the pair, so locking is not purely
// additive.
package lock

import (
	"encoding/json"
	"strings"

	"dirpx.dev/acasm/asmcore/candidates"
	"dirpx.dev/acasm/asmcore/errors"
	"dirpx.dev/acasm/asmcore/model"
	"dirpx.dev/acasm/asmcore/model/part"
	"gopkg.in/yaml.v3"
)

// Set is a partial mapping from slots to locked parts. The zero Set is
// empty and ready to use.
type Set struct {
	parts map[model.Slot]part.Part
}

// Entry is one locked slot.
type Entry struct {
	Slot model.Slot
	Part part.Part
}

var _ candidates.Pins = Set{}

// Empty returns a Set with no locks.
func Empty() Set {
	return Set{}
}

// Lock returns a copy of s with slot pinned to p.
//
// If both legs and booster end up locked and incompatible, the lock on the
// other slot of the pair (not the one just set) is dropped. Invalid slots
// leave the copy unchanged.
func (s Set) Lock(slot model.Slot, p part.Part) Set {
	if !slot.Valid() {
		return s
	}
	next := s.clone()
	next.parts[slot] = p
	next.enforce(slot)
	return next
}

// Unlock returns a copy of s without a lock on slot. Removing a lock cannot
// break the legs/booster invariant, so nothing else changes.
func (s Set) Unlock(slot model.Slot) Set {
	if _, ok := s.parts[slot]; !ok {
		return s
	}
	next := s.clone()
	delete(next.parts, slot)
	return next
}

// IsLocking reports whether slot is locked.
func (s Set) IsLocking(slot model.Slot) bool {
	_, ok := s.parts[slot]
	return ok
}

// Lookup returns the locked part of slot, if any.
func (s Set) Lookup(slot model.Slot) (part.Part, bool) {
	p, ok := s.parts[slot]
	return p, ok
}

// Get returns the locked part of slot, or the result of fallback when the
// slot is not locked. fallback is not called for locked slots.
func (s Set) Get(slot model.Slot, fallback func() part.Part) part.Part {
	if p, ok := s.parts[slot]; ok {
		return p
	}
	return fallback()
}

// Keys returns the locked slots in canonical order.
func (s Set) Keys() []model.Slot {
	keys := make([]model.Slot, 0, len(s.parts))
	for _, slot := range model.Slots() {
		if _, ok := s.parts[slot]; ok {
			keys = append(keys, slot)
		}
	}
	return keys
}

// List returns the locked entries in canonical slot order.
func (s Set) List() []Entry {
	entries := make([]Entry, 0, len(s.parts))
	for _, slot := range s.Keys() {
		entries = append(entries, Entry{Slot: slot, Part: s.parts[slot]})
	}
	return entries
}

// Len returns the number of locked slots.
func (s Set) Len() int {
	return len(s.parts)
}

// Filter narrows c using the current locks, falling back to ctx for legs
// and booster when they are not locked. It applies exactly the rules of
// candidates.Derive.
func (s Set) Filter(c candidates.Candidates, ctx candidates.Context) (candidates.Candidates, error) {
	return candidates.Derive(c, s, ctx)
}

func (s Set) clone() Set {
	parts := make(map[model.Slot]part.Part, len(s.parts)+1)
	for k, v := range s.parts {
		parts[k] = v
	}
	return Set{parts: parts}
}

// enforce drops the lock paired with changed when legs and booster clash.
func (s Set) enforce(changed model.Slot) {
	legs, legsOK := s.parts[model.Legs]
	booster, boosterOK := s.parts[model.Booster]
	if !legsOK || !boosterOK || part.Compatible(legs, booster) {
		return
	}
	switch changed {
	case model.Legs:
		delete(s.parts, model.Booster)
	case model.Booster:
		delete(s.parts, model.Legs)
	}
}

// Resolve builds a Set from part identifiers, looking each one up with
// find. Slots are locked in canonical order, so a document that pins
// incompatible legs and booster keeps the booster.
func Resolve(find func(id string) (part.Part, bool), ids map[model.Slot]string) (Set, error) {
	s := Empty()
	for _, slot := range model.Slots() {
		id, ok := ids[slot]
		if !ok {
			continue
		}
		p, found := find(id)
		if !found {
			return Set{}, &errors.FieldError{Type: "LockSet", Field: slot.String(), Reason: "unknown part " + id, Value: id}
		}
		if !p.Fits(slot) {
			return Set{}, &errors.FieldError{Type: "LockSet", Field: slot.String(), Reason: "part " + id + " does not fit slot", Value: id}
		}
		s = s.Lock(slot, p)
	}
	return s, nil
}

func fromMap(m map[model.Slot]part.Part) Set {
	s := Empty()
	for _, slot := range model.Slots() {
		if p, ok := m[slot]; ok {
			s = s.Lock(slot, p)
		}
	}
	return s
}

// MarshalJSON encodes s as an object keyed by slot name.
func (s Set) MarshalJSON() ([]byte, error) {
	if s.parts == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.parts)
}

// UnmarshalJSON decodes an object keyed by slot name, locking slots in
// canonical order.
func (s *Set) UnmarshalJSON(data []byte) error {
	var m map[model.Slot]part.Part
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*s = fromMap(m)
	return nil
}

// MarshalYAML encodes s as a mapping keyed by slot name.
func (s Set) MarshalYAML() (any, error) {
	if s.parts == nil {
		return map[model.Slot]part.Part{}, nil
	}
	return s.parts, nil
}

// UnmarshalYAML decodes a mapping keyed by slot name.
func (s *Set) UnmarshalYAML(node *yaml.Node) error {
	var m map[model.Slot]part.Part
	if err := node.Decode(&m); err != nil {
		return err
	}
	*s = fromMap(m)
	return nil
}

// String lists the locked slots and part identifiers.
func (s Set) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, e := range s.List() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(e.Slot.String() + "=" + e.Part.ID)
	}
	b.WriteString("}")
	return b.String()
}
