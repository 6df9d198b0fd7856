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

// Package errors provides the error types shared by every acasm package.
//
// The package has two groups of errors. The first group are simple value
// carriers used by enum-like model types (Slot, Classification) when parsing,
// marshaling and unmarshaling, plus FieldError for model Validate methods.
// The second group is the configuration engine taxonomy:
//
//   - CandidatePoolExhaustedError
//     A candidate derivation produced an empty list for a slot. Fatal to the
//     derivation call; the caller MUST NOT proceed with that Candidates value.
//
//   - ReservedValidatorKeyError
//     A caller tried to add or remove a validator under a key reserved for
//     the built-in validators. Rejected before any state change.
//
//   - ValidationError / ValidationErrors
//     A single failed check reported by a validator, and the flattened batch
//     of all failures produced by one validation pass. These are returned,
//     never used to abort a pass early.
//
//   - RetryBudgetExhaustedError
//     The generator used its whole attempt budget without producing a valid
//     assembly. Carries the complete error history of the failed call.
//
//   - ErrBoosterNotEquipped
//     Internal invariant violation raised by the random builder. Reaching it
//     indicates a defect in candidate derivation, not bad user input.
//
// All types use pointer receivers and stable message formats prefixed with
// "asmcore: ". Callers SHOULD prefer errors.As over message matching.
package errors

import (
	"errors"
	"strconv"
	"strings"
)

// ParseError reports text that names no value of an enumerated or
// structured type, such as an unknown slot name or a malformed regulation.
type ParseError struct {
	// Type names the target type, for example "Slot" or "Version".
	Type string

	// Value is the rejected input, verbatim.
	Value string
}

// Error formats e.
//
// The error message format is:
//
//	"asmcore: invalid {Type} value: {Value}"
func (e *ParseError) Error() string {
	return "asmcore: invalid " + e.Type + " value: " + e.Value
}

// MarshalError reports an enum holding a number outside its constants,
// typically produced by an unchecked conversion like model.Slot(40).
type MarshalError struct {
	// Type names the enum.
	Type string

	// Value is the out-of-range number.
	Value int
}

// Error formats e.
//
// The error message format is:
//
//	"asmcore: cannot marshal invalid {Type} value: {Value}"
func (e *MarshalError) Error() string {
	return "asmcore: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError reports a document whose shape does not match the target
// type: a number where a slot name belongs, an unknown configuration key, an
// empty catalog file. Data is kept out of the message.
type UnmarshalError struct {
	// Type names the target type.
	Type string

	// Data holds the offending JSON input, when there is one.
	Data []byte

	// Reason is the decoder's explanation.
	Reason string
}

// Error formats e.
//
// The error message format is:
//
//	"asmcore: cannot unmarshal {Type}: {Reason}"
func (e *UnmarshalError) Error() string {
	return "asmcore: cannot unmarshal " + e.Type + ": " + e.Reason
}

// FieldError is returned by model Validate methods when a field violates a
// structural constraint (missing identifier, unknown classification, a slot
// left empty in an assembly).
type FieldError struct {
	// Type names the validated type, for example "Part" or "LockSet".
	Type string

	// Field names the offending field or slot. Empty when the whole value
	// is at fault.
	Field string

	// Reason says which constraint was broken.
	Reason string

	// Value is the rejected field value, if useful for diagnostics.
	Value any
}

// Error formats e.
//
// The error message format is:
//
//	"asmcore: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"asmcore: invalid {Type}: {Reason}" (when Field is empty)
func (e *FieldError) Error() string {
	if e.Field != "" {
		return "asmcore: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "asmcore: invalid " + e.Type + ": " + e.Reason
}

// CandidatePoolExhaustedError is returned when candidate derivation leaves
// a slot without any eligible part.
//
// Slot holds the canonical slot name (for example, "legs"). The package does
// not import the model package, so the slot travels as its string form.
type CandidatePoolExhaustedError struct {
	// Slot is the canonical name of the slot whose candidate list is empty.
	Slot string
}

// Error implements the error interface for CandidatePoolExhaustedError.
//
// The error message format is:
//
//	"asmcore: candidate pool exhausted for slot {Slot}"
func (e *CandidatePoolExhaustedError) Error() string {
	return "asmcore: candidate pool exhausted for slot " + e.Slot
}

// ReservedValidatorKeyError is returned when a caller attempts to add or
// remove a validator under a key that belongs to the built-in validators.
type ReservedValidatorKeyError struct {
	// Key is the rejected validator key.
	Key string
}

// Error implements the error interface for ReservedValidatorKeyError.
//
// The error message format is:
//
//	"asmcore: validator key {Key} is reserved"
func (e *ReservedValidatorKeyError) Error() string {
	return "asmcore: validator key " + e.Key + " is reserved"
}

// ValidationError describes one failed validator check against an assembly.
//
// Adjustable is true when the user can plausibly fix the failure by relaxing
// constraints (unlocking parts, widening candidate pools). It is false when
// the failure is structurally infeasible under the current inputs.
type ValidationError struct {
	// Validator is the key of the validator that reported the failure.
	Validator string

	// Reason is a short, human-readable explanation of the failure.
	Reason string

	// Adjustable reports whether relaxing constraints may resolve the failure.
	Adjustable bool
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"asmcore: validator {Validator} failed: {Reason}"
func (e *ValidationError) Error() string {
	return "asmcore: validator " + e.Validator + " failed: " + e.Reason
}

// ValidationErrors is the flattened list of failures from one validation pass
// over a single assembly. It is never returned empty as a non-nil error.
type ValidationErrors []*ValidationError

// Error implements the error interface for ValidationErrors by joining the
// individual messages with "; ".
func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Error())
	}
	return strings.Join(msgs, "; ")
}

// Adjustable reports whether every failure in the batch is adjustable.
// An empty batch is not adjustable.
func (e ValidationErrors) Adjustable() bool {
	if len(e) == 0 {
		return false
	}
	for _, v := range e {
		if !v.Adjustable {
			return false
		}
	}
	return true
}

// RetryBudgetExhaustedError is returned after exactly Limit failed attempts
// inside one generator call.
//
// Errors holds the failures of every attempt, in attempt order, flattened
// into a single list.
type RetryBudgetExhaustedError struct {
	// Limit is the attempt budget that was used up.
	Limit int

	// Errors is the complete validation history of the call.
	Errors ValidationErrors
}

// Error implements the error interface for RetryBudgetExhaustedError.
//
// The error message format is:
//
//	"asmcore: retry budget exhausted after {Limit} attempts ({N} validation errors)"
func (e *RetryBudgetExhaustedError) Error() string {
	return "asmcore: retry budget exhausted after " + strconv.Itoa(e.Limit) +
		" attempts (" + strconv.Itoa(len(e.Errors)) + " validation errors)"
}

// Unwrap exposes the accumulated validation errors to errors.Is/As.
func (e *RetryBudgetExhaustedError) Unwrap() []error {
	errs := make([]error, 0, len(e.Errors))
	for _, v := range e.Errors {
		errs = append(errs, v)
	}
	return errs
}

// ErrBoosterNotEquipped is raised when the random builder resolves the
// not-equipped booster for non-tank legs.
var ErrBoosterNotEquipped = errors.New("asmcore: booster must be equipped for non-tank legs")
