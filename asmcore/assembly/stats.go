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

package assembly

import "dirpx.dev/acasm/asmcore/model/part"

// Stats are the statistics derived from the twelve parts of an assembly.
//
// Every field is a pure function of the RawAssembly. Stats values returned
// from Assembly.Stats are copies; changing them has no effect on the
// assembly.
type Stats struct {
	AP int `json:"ap" yaml:"ap"`

	AntiKineticDefense   int `json:"anti_kinetic_defense" yaml:"anti_kinetic_defense"`
	AntiEnergyDefense    int `json:"anti_energy_defense" yaml:"anti_energy_defense"`
	AntiExplosiveDefense int `json:"anti_explosive_defense" yaml:"anti_explosive_defense"`

	Weight          int  `json:"weight" yaml:"weight"`
	Load            int  `json:"load" yaml:"load"`
	LoadLimit       int  `json:"load_limit" yaml:"load_limit"`
	WithinLoadLimit bool `json:"within_load_limit" yaml:"within_load_limit"`

	ArmsLoad            int  `json:"arms_load" yaml:"arms_load"`
	ArmsLoadLimit       int  `json:"arms_load_limit" yaml:"arms_load_limit"`
	WithinArmsLoadLimit bool `json:"within_arms_load_limit" yaml:"within_arms_load_limit"`

	ENLoad             int  `json:"en_load" yaml:"en_load"`
	ENOutput           int  `json:"en_output" yaml:"en_output"`
	ENSurplus          int  `json:"en_surplus" yaml:"en_surplus"`
	SufficientENOutput bool `json:"sufficient_en_output" yaml:"sufficient_en_output"`
	ENSupplyEfficiency int  `json:"en_supply_efficiency" yaml:"en_supply_efficiency"`
	ENRechargeDelay    int  `json:"en_recharge_delay" yaml:"en_recharge_delay"`

	AttitudeStability int `json:"attitude_stability" yaml:"attitude_stability"`
	QBENConsumption   int `json:"qb_en_consumption" yaml:"qb_en_consumption"`

	Cost int `json:"cost" yaml:"cost"`
}

// computeStats derives Stats from r.
func computeStats(r RawAssembly) Stats {
	var st Stats
	for _, p := range [...]part.Part{r.Head, r.Core, r.Arms, r.Legs} {
		st.AP += p.AP
		st.AntiKineticDefense += p.AntiKinetic
		st.AntiEnergyDefense += p.AntiEnergy
		st.AntiExplosiveDefense += p.AntiExplosive
	}

	for _, p := range r.Parts() {
		st.Weight += p.Weight
		st.Cost += p.Price
		st.ENLoad += p.ENLoad
	}
	st.Load = st.Weight - r.Legs.Weight
	st.LoadLimit = r.Legs.LoadLimit
	st.WithinLoadLimit = st.Load <= st.LoadLimit

	st.ArmsLoad = r.RightArmUnit.Weight + r.LeftArmUnit.Weight
	st.ArmsLoadLimit = r.Arms.ArmsLoadLimit
	st.WithinArmsLoadLimit = st.ArmsLoad <= st.ArmsLoadLimit

	st.ENLoad -= r.Generator.ENLoad
	st.ENOutput = r.Generator.ENOutput * percent(r.Core.GeneratorOutputAdj) / 100
	st.ENSurplus = st.ENOutput - st.ENLoad
	st.SufficientENOutput = st.ENOutput >= st.ENLoad
	st.ENSupplyEfficiency = supplyEfficiency(r.Generator.SupplyRecovery, st.ENSurplus, st.ENOutput)
	st.ENRechargeDelay = r.Generator.PostRecoveryDelay * 100 / percent(r.Core.GeneratorOutputAdj)

	st.AttitudeStability = r.Head.AttitudeStability + r.Core.AttitudeStability + r.Legs.AttitudeStability

	thrust := r.Booster
	if r.Legs.IsTank() {
		thrust = r.Legs
	}
	st.QBENConsumption = thrust.QBENConsumption * (200 - percent(r.Core.BoosterEfficiencyAdj)) / 100

	return st
}

// percent treats an unset (zero) adjustment as 100%.
func percent(v int) int {
	if v == 0 {
		return 100
	}
	return v
}

// supplyEfficiency scales the generator's supply recovery by the share of
// output left over after the load: full recovery at 100% surplus, half at
// none. A deficit yields half recovery as well.
func supplyEfficiency(recovery, surplus, output int) int {
	if output <= 0 {
		return 0
	}
	ratio := surplus * 100 / output
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 100 {
		ratio = 100
	}
	return recovery * (100 + ratio) / 200
}
