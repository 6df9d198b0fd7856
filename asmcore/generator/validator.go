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

package generator

import (
	"strings"

	"dirpx.dev/acasm/asmcore/assembly"
	"dirpx.dev/acasm/asmcore/errors"
	"dirpx.dev/acasm/asmcore/model"
)

// Validator checks a complete assembly. It returns nil when the assembly is
// acceptable and one entry per failed check otherwise.
//
// Validators MUST be pure: the generator calls them once per attempt and may
// call them many times for the same assembly. An empty Validator field in a
// returned error is filled with the key the validator is registered under.
type Validator interface {
	Validate(a assembly.Assembly) []*errors.ValidationError
}

// Func adapts an ordinary function to the Validator interface.
type Func func(a assembly.Assembly) []*errors.ValidationError

// Validate calls f(a).
func (f Func) Validate(a assembly.Assembly) []*errors.ValidationError {
	return f(a)
}

// ReservedPrefix marks the key namespace of the built-in validators.
const ReservedPrefix = "builtin:"

const (
	// KeySufficientENOutput is the key of the energy output check.
	KeySufficientENOutput = ReservedPrefix + "sufficient-en-output"

	// KeyNoOverlappedWeapons is the key of the same-side weapon check.
	KeyNoOverlappedWeapons = ReservedPrefix + "no-overlapped-weapons"
)

// IsReserved reports whether key belongs to the built-in namespace.
func IsReserved(key string) bool {
	return strings.HasPrefix(key, ReservedPrefix)
}

type builtin struct {
	key string
	v   Validator
}

// builtins run first, in this order, on every validation pass.
var builtins = [...]builtin{
	{KeySufficientENOutput, Func(sufficientENOutput)},
	{KeyNoOverlappedWeapons, Func(noOverlappedWeapons)},
}

func sufficientENOutput(a assembly.Assembly) []*errors.ValidationError {
	if a.Stats().SufficientENOutput {
		return nil
	}
	return []*errors.ValidationError{{
		Validator:  KeySufficientENOutput,
		Reason:     "EN load exceeds generator output",
		Adjustable: true,
	}}
}

// sides pairs every arm-mounted slot with the back-mounted slot on the same
// side.
var sides = [...][2]model.Slot{
	{model.RightArmUnit, model.RightBackUnit},
	{model.LeftArmUnit, model.LeftBackUnit},
}

func noOverlappedWeapons(a assembly.Assembly) []*errors.ValidationError {
	var errs []*errors.ValidationError
	for _, side := range sides {
		arm, back := a.Part(side[0]), a.Part(side[1])
		if arm.IsNotEquipped() || back.IsNotEquipped() || arm.ID != back.ID {
			continue
		}
		errs = append(errs, &errors.ValidationError{
			Validator:  KeyNoOverlappedWeapons,
			Reason:     arm.ID + " mounted on both " + side[0].String() + " and " + side[1].String(),
			Adjustable: true,
		})
	}
	return errs
}
