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

package build_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"dirpx.dev/acasm/asmcore/build"
	"dirpx.dev/acasm/asmcore/candidates"
	dxerrors "dirpx.dev/acasm/asmcore/errors"
	"dirpx.dev/acasm/asmcore/internal/fixture"
	"dirpx.dev/acasm/asmcore/lock"
	"dirpx.dev/acasm/asmcore/model"
	"dirpx.dev/acasm/asmcore/model/part"
)

func seeded(seed int64) func() float64 {
	return rand.New(rand.NewSource(seed)).Float64
}

func TestRandom_NeverBreaksTankBoosterRule(t *testing.T) {
	pool := candidates.Candidates(fixture.Pool())
	pool[model.Booster] = []part.Part{fixture.NotEquipped, fixture.BoosterA}

	opts := build.Options{Randomizer: seeded(42)}
	var tanks, bipeds int
	for i := 0; i < 1000; i++ {
		a, err := build.Random(pool, opts)
		if err != nil {
			t.Fatalf("Random() error = %v", err)
		}
		legs, booster := a.Part(model.Legs), a.Part(model.Booster)
		if legs.IsTank() && booster.ID == fixture.BoosterA.ID {
			t.Fatalf("build %d: tank legs with equipped booster", i)
		}
		if !legs.IsTank() && booster.IsNotEquipped() {
			t.Fatalf("build %d: non-tank legs without booster", i)
		}
		if err := a.Validate(); err != nil {
			t.Fatalf("build %d: Validate() error = %v", i, err)
		}
		if legs.IsTank() {
			tanks++
		} else {
			bipeds++
		}
	}
	if tanks == 0 || bipeds == 0 {
		t.Errorf("legs distribution tanks=%d bipeds=%d, want both present", tanks, bipeds)
	}
}

func TestRandom_Deterministic(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		a, err := build.Random(fixture.Pool(), build.Options{Randomizer: seeded(seed)})
		if err != nil {
			t.Fatalf("Random() error = %v", err)
		}
		b, err := build.Random(fixture.Pool(), build.Options{Randomizer: seeded(seed)})
		if err != nil {
			t.Fatalf("Random() error = %v", err)
		}
		if a != b {
			t.Errorf("seed %d: Random() = %v and %v", seed, a, b)
		}
	}
}

func TestRandom_HonorsLocks(t *testing.T) {
	locks := lock.Empty().
		Lock(model.RightArmUnit, fixture.Blade).
		Lock(model.LeftBackUnit, fixture.Rifle).
		Lock(model.Booster, fixture.BoosterB)

	rnd := seeded(7)
	for i := 0; i < 200; i++ {
		a, err := build.Random(fixture.Pool(), build.Options{Randomizer: rnd, Locks: locks})
		if err != nil {
			t.Fatalf("Random() error = %v", err)
		}
		if a.Part(model.RightArmUnit) != fixture.Blade || a.Part(model.LeftBackUnit) != fixture.Rifle {
			t.Fatalf("Random() ignored weapon locks: %v", a)
		}
		if a.Part(model.Booster) != fixture.BoosterB {
			t.Fatalf("Random() booster = %v, want locked %v", a.Part(model.Booster).ID, fixture.BoosterB.ID)
		}
		if a.Part(model.Legs).IsTank() {
			t.Fatalf("Random() picked tank legs with an equipped booster lock")
		}
	}
}

func TestRandom_LockedTankLegs(t *testing.T) {
	locks := lock.Empty().Lock(model.Legs, fixture.Tank)

	rnd := seeded(3)
	for i := 0; i < 50; i++ {
		a, err := build.Random(fixture.Pool(), build.Options{Randomizer: rnd, Locks: locks})
		if err != nil {
			t.Fatalf("Random() error = %v", err)
		}
		if a.Part(model.Legs) != fixture.Tank || !a.Part(model.Booster).IsNotEquipped() {
			t.Fatalf("Random() = %v, want tank legs and no booster", a)
		}
	}
}

func TestRandom_LockedNotEquippedBoosterForcesTank(t *testing.T) {
	locks := lock.Empty().Lock(model.Booster, fixture.NotEquipped)

	a, err := build.Random(fixture.Pool(), build.Options{Randomizer: seeded(11), Locks: locks})
	if err != nil {
		t.Fatalf("Random() error = %v", err)
	}
	if !a.Part(model.Legs).IsTank() {
		t.Errorf("Random() legs = %v, want tank", a.Part(model.Legs).ID)
	}
}

func TestRandom_BypassSignal(t *testing.T) {
	other := part.NotEquippedPart()
	other.ID = "none-legacy"
	locks := lock.Empty().Lock(model.Booster, other)

	var buf bytes.Buffer
	var bypassed []model.Slot
	opts := build.Options{
		Randomizer: seeded(5),
		Locks:      locks,
		Logger:     slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
		OnLockBypassed: func(slot model.Slot, locked part.Part) {
			if locked.ID != "none-legacy" {
				t.Errorf("OnLockBypassed() locked = %v", locked.ID)
			}
			bypassed = append(bypassed, slot)
		},
	}

	a, err := build.Random(fixture.Pool(), opts)
	if err != nil {
		t.Fatalf("Random() error = %v", err)
	}
	if a.Part(model.Booster).ID != part.NotEquippedID {
		t.Errorf("booster = %v, want catalog sentinel", a.Part(model.Booster).ID)
	}
	if len(bypassed) != 1 || bypassed[0] != model.Booster {
		t.Errorf("OnLockBypassed calls = %v, want [booster]", bypassed)
	}
	if !strings.Contains(buf.String(), "booster lock bypassed") {
		t.Errorf("log output = %q", buf.String())
	}
	if !locks.IsLocking(model.Booster) {
		t.Error("Random() removed the bypassed lock")
	}
}

func TestRandom_PoolExhausted(t *testing.T) {
	pool := candidates.Candidates(fixture.Pool())
	pool[model.Legs] = nil

	_, err := build.Random(pool, build.Options{Randomizer: seeded(1)})
	var exhausted *dxerrors.CandidatePoolExhaustedError
	if !errors.As(err, &exhausted) || exhausted.Slot != "legs" {
		t.Errorf("Random() error = %v, want CandidatePoolExhaustedError(legs)", err)
	}
}

func TestRandom_DefaultRandomizer(t *testing.T) {
	a, err := build.Random(fixture.Pool(), build.Options{})
	if err != nil {
		t.Fatalf("Random() error = %v", err)
	}
	if err := a.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
