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

// Package generator produces assemblies that pass a set of validators,
// retrying random builds up to a fixed attempt budget.
//
// A Generator is an immutable value. AddValidator, RemoveValidator and
// WithLogger return modified copies and never change the receiver, so a
// Generator may be shared between goroutines. Assemble keeps its attempt
// counter and error history in local variables; concurrent calls on the
// same Generator are independent.
package generator

import (
	"io"
	"log/slog"
	"maps"
	"slices"

	"dirpx.dev/acasm/asmcore/assembly"
	"dirpx.dev/acasm/asmcore/build"
	"dirpx.dev/acasm/asmcore/candidates"
	"dirpx.dev/acasm/asmcore/errors"
)

// Generator validates assemblies and drives the build-validate-retry loop.
//
// The zero Generator is usable: it runs only the built-in validators with
// DefaultLimit attempts and discards its logs.
type Generator struct {
	limit  int
	user   map[string]Validator
	logger *slog.Logger
}

// New returns a Generator configured by cfg. A non-positive cfg.Limit falls
// back to DefaultLimit; use cfg.Validate to reject it instead.
func New(cfg Config) Generator {
	return Generator{limit: cfg.Limit}
}

// Limit returns the attempt budget of one Assemble call.
func (g Generator) Limit() int {
	if g.limit <= 0 {
		return DefaultLimit
	}
	return g.limit
}

// WithLogger returns a copy of g that writes debug records to l.
func (g Generator) WithLogger(l *slog.Logger) Generator {
	g.logger = l
	return g
}

// AddValidator returns a copy of g with v registered under key. An existing
// validator under the same key is replaced.
//
// Keys in the built-in namespace are rejected with
// *errors.ReservedValidatorKeyError and g is returned unchanged.
func (g Generator) AddValidator(key string, v Validator) (Generator, error) {
	if IsReserved(key) {
		return g, &errors.ReservedValidatorKeyError{Key: key}
	}
	next := g.clone()
	next.user[key] = v
	return next, nil
}

// RemoveValidator returns a copy of g without the validator under key.
// Removing an absent key returns g unchanged.
func (g Generator) RemoveValidator(key string) (Generator, error) {
	if IsReserved(key) {
		return g, &errors.ReservedValidatorKeyError{Key: key}
	}
	if _, ok := g.user[key]; !ok {
		return g, nil
	}
	next := g.clone()
	delete(next.user, key)
	return next, nil
}

// Validator returns the validator registered under key, built-ins included.
func (g Generator) Validator(key string) (Validator, bool) {
	for _, b := range builtins {
		if b.key == key {
			return b.v, true
		}
	}
	v, ok := g.user[key]
	return v, ok
}

// Keys lists every registered key: built-ins first, then user keys sorted.
func (g Generator) Keys() []string {
	keys := make([]string, 0, len(builtins)+len(g.user))
	for _, b := range builtins {
		keys = append(keys, b.key)
	}
	return append(keys, slices.Sorted(maps.Keys(g.user))...)
}

// Len returns the number of registered validators, built-ins included.
func (g Generator) Len() int {
	return len(builtins) + len(g.user)
}

// Validate runs every registered validator against a. It does not stop at
// the first failure: the returned errors.ValidationErrors holds the failures
// of all validators in Keys order. On success a is returned with a nil error.
func (g Generator) Validate(a assembly.Assembly) (assembly.Assembly, error) {
	var errs errors.ValidationErrors
	for _, key := range g.Keys() {
		v, _ := g.Validator(key)
		for _, e := range v.Validate(a) {
			if e == nil {
				continue
			}
			if e.Validator == "" {
				stamped := *e
				stamped.Validator = key
				e = &stamped
			}
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return a, errs
	}
	return a, nil
}

// Assemble builds random assemblies from c until one passes Validate or
// Limit attempts have failed.
//
// Build errors, such as *errors.CandidatePoolExhaustedError, are returned
// immediately. After Limit rejected attempts Assemble returns
// *errors.RetryBudgetExhaustedError carrying the failures of every attempt.
// opts.Logger defaults to the Generator's logger.
func (g Generator) Assemble(c candidates.Candidates, opts build.Options) (assembly.Assembly, error) {
	limit := g.Limit()
	log := g.log()
	if opts.Logger == nil {
		opts.Logger = g.logger
	}

	var history errors.ValidationErrors
	for attempt := 1; attempt <= limit; attempt++ {
		a, err := build.Random(c, opts)
		if err != nil {
			return assembly.Assembly{}, err
		}
		if _, err := g.Validate(a); err != nil {
			rejected := err.(errors.ValidationErrors)
			history = append(history, rejected...)
			log.Debug("assembly rejected",
				"attempt", attempt,
				"assembly", a.Redacted(),
				"errors", len(rejected),
			)
			continue
		}
		log.Debug("assembly accepted", "attempt", attempt, "assembly", a.Redacted())
		return a, nil
	}
	return assembly.Assembly{}, &errors.RetryBudgetExhaustedError{Limit: limit, Errors: history}
}

func (g Generator) clone() Generator {
	next := g
	next.user = make(map[string]Validator, len(g.user)+1)
	maps.Copy(next.user, g.user)
	return next
}

func (g Generator) log() *slog.Logger {
	if g.logger != nil {
		return g.logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
