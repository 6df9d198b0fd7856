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

// Package build produces one concrete assembly from a candidate pool, a
// lock set and a random source.
//
// The builder derives candidates twice: once without legs context to choose
// the legs, then again with the chosen legs so the booster pool follows the
// tank/booster rule. Every assembly it returns satisfies part.Compatible for
// its legs and booster by construction.
package build

import (
	"io"
	"log/slog"
	"math/rand/v2"

	"dirpx.dev/acasm/asmcore/assembly"
	"dirpx.dev/acasm/asmcore/candidates"
	"dirpx.dev/acasm/asmcore/errors"
	"dirpx.dev/acasm/asmcore/lock"
	"dirpx.dev/acasm/asmcore/model"
	"dirpx.dev/acasm/asmcore/model/part"
)

// Options configure a single random build.
type Options struct {
	// Randomizer returns values in [0, 1). A nil Randomizer uses the
	// process-wide source of math/rand/v2; supply a seeded source for
	// reproducible builds.
	Randomizer func() float64

	// Locks pins slots that must not be chosen at random.
	Locks lock.Set

	// OnLockBypassed, if set, is called when tank legs force the booster to
	// not-equipped while the booster slot holds a different lock. The lock
	// itself is neither consulted nor removed.
	OnLockBypassed func(slot model.Slot, locked part.Part)

	// Logger receives debug records. Nil discards them.
	Logger *slog.Logger
}

func (o Options) randomizer() func() float64 {
	if o.Randomizer != nil {
		return o.Randomizer
	}
	return rand.Float64
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Random builds one assembly from c.
//
// Candidate derivation errors (*errors.CandidatePoolExhaustedError) are
// returned unchanged. errors.ErrBoosterNotEquipped signals a defect in
// derivation and is not expected in practice.
func Random(c candidates.Candidates, opts Options) (assembly.Assembly, error) {
	rnd := opts.randomizer()
	locks := opts.Locks
	log := opts.logger()

	forLegs, err := candidates.Derive(c, locks, candidates.Context{})
	if err != nil {
		return assembly.Assembly{}, err
	}
	legs := locks.Get(model.Legs, pick(forLegs, model.Legs, rnd))

	derived, err := candidates.Derive(c, locks, candidates.Context{Legs: legs})
	if err != nil {
		return assembly.Assembly{}, err
	}

	raw := assembly.RawAssembly{}.With(model.Legs, legs)
	for _, slot := range model.Slots() {
		if slot == model.Legs || slot == model.Booster {
			continue
		}
		raw = raw.With(slot, locks.Get(slot, pick(derived, slot, rnd)))
	}

	var booster part.Part
	if legs.IsTank() {
		booster, _ = derived.Pick(model.Booster, 0)
		if locked, ok := locks.Lookup(model.Booster); ok && locked != booster {
			log.Debug("booster lock bypassed for tank legs", "legs", legs.ID, "locked", locked.ID)
			if opts.OnLockBypassed != nil {
				opts.OnLockBypassed(model.Booster, locked)
			}
		}
	} else {
		booster = locks.Get(model.Booster, pick(derived, model.Booster, rnd))
		if booster.IsNotEquipped() {
			return assembly.Assembly{}, errors.ErrBoosterNotEquipped
		}
	}
	raw = raw.With(model.Booster, booster)

	a := assembly.New(raw)
	log.Debug("assembly built", "assembly", a.Redacted())
	return a, nil
}

func pick(c candidates.Candidates, slot model.Slot, rnd func() float64) func() part.Part {
	return func() part.Part {
		p, _ := c.Pick(slot, rnd())
		return p
	}
}
