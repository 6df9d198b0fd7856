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

// Package fixture provides a small, hand-made parts catalog shared by the
// acasm tests.
package fixture

import (
	"dirpx.dev/acasm/asmcore/assembly"
	"dirpx.dev/acasm/asmcore/model"
	"dirpx.dev/acasm/asmcore/model/part"
)

// Fixture parts, one or more per classification. Every part is valid and
// the set is small enough to reason about build outcomes by hand.
var (
	// Head, Core and Arms are the only frame parts for their slots.
	Head = part.Part{ID: "hd-01", Name: "HD-011 MELANDER", Classification: part.ClassHead, Category: "head",
		Price: 75000, Weight: 3250, ENLoad: 118, AP: 1100, AntiKinetic: 220, AntiEnergy: 214, AntiExplosive: 221, AttitudeStability: 420}
	Core = part.Part{ID: "cr-01", Name: "CC-2000 ORBITER", Classification: part.ClassCore, Category: "core",
		Price: 110000, Weight: 15100, ENLoad: 266, AP: 3150, AntiKinetic: 321, AntiEnergy: 301, AntiExplosive: 314, AttitudeStability: 505,
		GeneratorOutputAdj: 100, BoosterEfficiencyAdj: 100}
	Arms = part.Part{ID: "ar-01", Name: "AR-011 MELANDER", Classification: part.ClassArms, Category: "arms",
		Price: 80000, Weight: 11380, ENLoad: 165, AP: 2030, AntiKinetic: 184, AntiEnergy: 198, AntiExplosive: 189, ArmsLoadLimit: 15000}
	// Bipedal and Tank are the two legs; Tank forbids an equipped booster.
	Bipedal = part.Part{ID: "lg-bp-01", Name: "LG-011 MELANDER", Classification: part.ClassLegs, Category: part.Bipedal,
		Price: 90000, Weight: 19600, ENLoad: 300, AP: 4000, AntiKinetic: 392, AntiEnergy: 376, AntiExplosive: 388, AttitudeStability: 964, LoadLimit: 60000}
	Tank = part.Part{ID: "lg-tk-01", Name: "VE-42B", Classification: part.ClassLegs, Category: part.Tank,
		Price: 200000, Weight: 47650, ENLoad: 1010, AP: 9500, AntiKinetic: 535, AntiEnergy: 550, AntiExplosive: 571, AttitudeStability: 1655, LoadLimit: 110000,
		QBENConsumption: 760}
	// BoosterA and BoosterB are the equippable boosters.
	BoosterA = part.Part{ID: "bs-01", Name: "BST-G1/P10", Classification: part.ClassBooster, Category: "booster",
		Price: 65000, Weight: 1330, ENLoad: 220, QBENConsumption: 550}
	BoosterB = part.Part{ID: "bs-02", Name: "ALULA/21E", Classification: part.ClassBooster, Category: "booster",
		Price: 130000, Weight: 1500, ENLoad: 260, QBENConsumption: 600}
	// FCS is the only fire control system.
	FCS = part.Part{ID: "fc-01", Name: "FCS-G1/P01", Classification: part.ClassFCS, Category: "fcs",
		Price: 52000, Weight: 120, ENLoad: 198}
	// Generator covers the EN load of any fixture build; WeakGenerator
	// covers none of them.
	Generator = part.Part{ID: "gn-01", Name: "AG-J-098 JOSO", Classification: part.ClassGenerator, Category: "generator",
		Price: 94000, Weight: 2500, ENOutput: 3300, SupplyRecovery: 1000, PostRecoveryDelay: 140}
	WeakGenerator = part.Part{ID: "gn-weak", Name: "AG-T-005 HOKUSHI", Classification: part.ClassGenerator, Category: "generator",
		Price: 30000, Weight: 2800, ENOutput: 400, SupplyRecovery: 800, PostRecoveryDelay: 160}
	// Expansion is the only expansion part.
	Expansion = part.Part{ID: "ex-01", Name: "ASSAULT ARMOR", Classification: part.ClassExpansion, Category: "expansion"}
	// Rifle and Blade are arm units; Missile is the only back unit.
	Rifle = part.Part{ID: "wp-rifle", Name: "MA-J-200 RANSETSU-RF", Classification: part.ClassArmUnit, Category: "burst-rifle",
		Price: 80000, Weight: 3900, ENLoad: 110}
	Blade = part.Part{ID: "wp-blade", Name: "HI-32: BU-TT/A", Classification: part.ClassArmUnit, Category: "pulse-blade",
		Price: 113000, Weight: 2540, ENLoad: 215}
	Missile = part.Part{ID: "wp-missile", Name: "BML-G1/P20MLT-04", Classification: part.ClassBackUnit, Category: "missile-launcher",
		Price: 45000, Weight: 2230, ENLoad: 120}
	// NotEquipped is the shared not-equipped sentinel part.
	NotEquipped = part.NotEquippedPart()
)

func init() {
	for _, p := range []part.Part{
		Head, Core, Arms, Bipedal, Tank, BoosterA, BoosterB, FCS, Generator,
		WeakGenerator, Expansion, Rifle, Blade, Missile, NotEquipped,
	} {
		model.MustValidate(p)
	}
}

// Pool returns a fresh candidate pool covering every slot. Booster and
// expansion start with the not-equipped sentinel; the back-unit slots accept
// the rifle so duplicate-weapon checks have something to catch.
func Pool() map[model.Slot][]part.Part {
	return map[model.Slot][]part.Part{
		model.Head:          {Head},
		model.Core:          {Core},
		model.Arms:          {Arms},
		model.Legs:          {Bipedal, Tank},
		model.Booster:       {NotEquipped, BoosterA, BoosterB},
		model.FCS:           {FCS},
		model.Generator:     {Generator},
		model.Expansion:     {NotEquipped, Expansion},
		model.RightArmUnit:  {Rifle, Blade},
		model.LeftArmUnit:   {Rifle, Blade},
		model.RightBackUnit: {Missile, Rifle},
		model.LeftBackUnit:  {Missile, Rifle},
	}
}

// Raw returns a complete, valid raw assembly on bipedal legs.
func Raw() assembly.RawAssembly {
	return assembly.RawAssembly{
		Head:          Head,
		Core:          Core,
		Arms:          Arms,
		Legs:          Bipedal,
		Booster:       BoosterA,
		FCS:           FCS,
		Generator:     Generator,
		Expansion:     Expansion,
		RightArmUnit:  Rifle,
		LeftArmUnit:   Blade,
		RightBackUnit: Missile,
		LeftBackUnit:  Missile,
	}
}

// TankRaw returns a complete, valid raw assembly on tank legs.
func TankRaw() assembly.RawAssembly {
	return Raw().With(model.Legs, Tank).With(model.Booster, NotEquipped)
}
