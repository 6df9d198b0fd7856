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

// Package candidates narrows per-slot candidate pools so that any pick from
// the narrowed pools respects the tank/booster rule.
//
// A Candidates value is produced by an external catalog. Derive never
// modifies its input: it returns a new map whose slices are either the
// original ones or freshly filtered copies. Callers MUST treat both the
// input and the result as read-only.
package candidates

import (
	"dirpx.dev/acasm/asmcore/errors"
	"dirpx.dev/acasm/asmcore/model"
	"dirpx.dev/acasm/asmcore/model/part"
)

// Candidates maps every slot to its ordered list of eligible parts.
type Candidates map[model.Slot][]part.Part

// Context carries what is already known about the legs and booster of the
// assembly being built. A zero Part means "not known".
type Context struct {
	Legs    part.Part
	Booster part.Part
}

// Pins exposes locked parts to Derive. lock.Set satisfies it.
type Pins interface {
	Lookup(s model.Slot) (part.Part, bool)
}

// Derive narrows c according to the locked legs and booster in pins, falling
// back to ctx for slots that are not locked. pins may be nil.
//
// The rules, in order of precedence:
//
//  1. booster locked to not-equipped: legs become tank-only, booster becomes
//     not-equipped only;
//  2. legs (locked or from ctx) are tank: booster becomes not-equipped only,
//     legs stay as they are;
//  3. booster known and equipped: legs become non-tank only, booster becomes
//     equipped only;
//  4. otherwise: booster becomes equipped only (non-tank legs assumed).
//
// If any slot ends up with no candidates, Derive returns a
// *errors.CandidatePoolExhaustedError for the first such slot in canonical
// order.
func Derive(c Candidates, pins Pins, ctx Context) (Candidates, error) {
	lockedLegs, legsLocked := lookup(pins, model.Legs)
	lockedBooster, boosterLocked := lookup(pins, model.Booster)

	legs := ctx.Legs
	if legsLocked {
		legs = lockedLegs
	}
	booster := ctx.Booster
	if boosterLocked {
		booster = lockedBooster
	}

	boosterLockedNotEquipped := boosterLocked && lockedBooster.IsNotEquipped()
	legsTank := (!legs.IsZero() && legs.IsTank()) || (legsLocked && lockedLegs.IsTank())

	out := c.Clone()
	switch {
	case boosterLockedNotEquipped:
		out[model.Legs] = filter(c[model.Legs], part.Part.IsTank)
		out[model.Booster] = filter(c[model.Booster], part.Part.IsNotEquipped)
	case legsTank:
		out[model.Booster] = filter(c[model.Booster], part.Part.IsNotEquipped)
	case !booster.IsZero() && !booster.IsNotEquipped():
		out[model.Legs] = filter(c[model.Legs], not(part.Part.IsTank))
		out[model.Booster] = filter(c[model.Booster], not(part.Part.IsNotEquipped))
	default:
		out[model.Booster] = filter(c[model.Booster], not(part.Part.IsNotEquipped))
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// Validate reports the first slot, in canonical order, without candidates.
func (c Candidates) Validate() error {
	for _, s := range model.Slots() {
		if len(c[s]) == 0 {
			return &errors.CandidatePoolExhaustedError{Slot: s.String()}
		}
	}
	return nil
}

// Clone returns a shallow copy of c. Slices are shared.
func (c Candidates) Clone() Candidates {
	out := make(Candidates, len(c))
	for s, parts := range c {
		out[s] = parts
	}
	return out
}

// Pick returns the candidate of slot s at floor(r * len). r must be in
// [0, 1); values outside that range are clamped to the first or last
// candidate. The boolean is false when s has no candidates.
func (c Candidates) Pick(s model.Slot, r float64) (part.Part, bool) {
	parts := c[s]
	if len(parts) == 0 {
		return part.Part{}, false
	}
	i := int(r * float64(len(parts)))
	if i < 0 {
		i = 0
	}
	if i >= len(parts) {
		i = len(parts) - 1
	}
	return parts[i], true
}

func lookup(pins Pins, s model.Slot) (part.Part, bool) {
	if pins == nil {
		return part.Part{}, false
	}
	return pins.Lookup(s)
}

func filter(parts []part.Part, keep func(part.Part) bool) []part.Part {
	out := make([]part.Part, 0, len(parts))
	for _, p := range parts {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func not(f func(part.Part) bool) func(part.Part) bool {
	return func(p part.Part) bool { return !f(p) }
}
