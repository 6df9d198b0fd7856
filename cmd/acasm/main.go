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

// Command acasm loads part catalogs and prints one random assembly that
// passes the built-in validators.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"gopkg.in/yaml.v3"

	"dirpx.dev/acasm/asmcore/assembly"
	"dirpx.dev/acasm/asmcore/build"
	"dirpx.dev/acasm/asmcore/catalog"
	dxerrors "dirpx.dev/acasm/asmcore/errors"
	"dirpx.dev/acasm/asmcore/generator"
	"dirpx.dev/acasm/asmcore/lock"
	"dirpx.dev/acasm/asmcore/model"
	"dirpx.dev/acasm/asmcore/model/part"
	"dirpx.dev/acasm/asmcore/model/semver"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// result is the document printed on success.
type result struct {
	Regulation string            `json:"regulation" yaml:"regulation"`
	Seed       uint64            `json:"seed" yaml:"seed"`
	Assembly   assembly.Assembly `json:"assembly" yaml:"assembly"`
}

func run(out, errOut io.Writer, args []string) error {
	cfg, shouldExit, err := parseArgs(args, errOut)
	if err != nil || shouldExit {
		return err
	}

	level, _ := parseLevel(cfg.LogLevel)
	log := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	set, err := catalog.LoadFiles(cfg.Catalogs...)
	if err != nil {
		return err
	}
	cat, err := selectCatalog(set, cfg.Regulation)
	if err != nil {
		return err
	}
	log.Info("catalog selected", "catalog", cat.String())

	locks, err := lock.Resolve(cat.Find, cfg.lockIDs())
	if err != nil {
		return err
	}

	seed := rand.Uint64()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	rnd := rand.New(rand.NewPCG(seed, seed))

	gen := generator.New(generator.Config{Limit: cfg.Limit}).WithLogger(log)
	a, err := gen.Assemble(cat.Candidates(), build.Options{
		Randomizer: rnd.Float64,
		Locks:      locks,
		OnLockBypassed: func(slot model.Slot, locked part.Part) {
			log.Warn("lock ignored for tank legs", "slot", slot.String(), "part", locked.ID)
		},
	})
	if err != nil {
		return describe(err)
	}

	return write(out, cfg.Format, result{
		Regulation: cat.Version().String(),
		Seed:       seed,
		Assembly:   a,
	})
}

func selectCatalog(set catalog.Set, regulation string) (catalog.Catalog, error) {
	if regulation == "" {
		c, ok := set.Latest()
		if !ok {
			return catalog.Catalog{}, fmt.Errorf("no catalog loaded")
		}
		return c, nil
	}
	v, err := semver.ParseVersion(regulation)
	if err != nil {
		return catalog.Catalog{}, err
	}
	c, ok := set.Select(v)
	if !ok {
		return catalog.Catalog{}, fmt.Errorf("no catalog for regulation %s", v)
	}
	return c, nil
}

// describe turns an exhausted retry budget into a message that says whether
// relaxing locks or pools could help.
func describe(err error) error {
	var exhausted *dxerrors.RetryBudgetExhaustedError
	if !errors.As(err, &exhausted) {
		return err
	}
	hint := "the failures are not adjustable; check the catalog"
	if exhausted.Errors.Adjustable() {
		hint = "unlock parts or widen the catalog and try again"
	}
	last := ""
	if n := len(exhausted.Errors); n > 0 {
		last = "\nlast failure: " + exhausted.Errors[n-1].Error()
	}
	return &ExitError{Code: 1, Message: exhausted.Error() + last + "\n" + hint}
}

func write(w io.Writer, format string, v any) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
