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

package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"dirpx.dev/acasm/asmcore/generator"
	"dirpx.dev/acasm/asmcore/model"
)

// ExitError carries the process exit code of a failed run.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the run configuration, read from an optional YAML file and then
// overridden by flags.
type Config struct {
	Catalogs   []string          `yaml:"catalogs"`
	Regulation string            `yaml:"regulation,omitempty"`
	Seed       *uint64           `yaml:"seed,omitempty"`
	Limit      int               `yaml:"limit,omitempty"`
	Locks      map[string]string `yaml:"locks,omitempty"`
	Format     string            `yaml:"format,omitempty"`
	LogLevel   string            `yaml:"log_level,omitempty"`
}

func defaultConfig() Config {
	return Config{
		Limit:    generator.DefaultLimit,
		Format:   "yaml",
		LogLevel: "warn",
		Locks:    map[string]string{},
	}
}

func loadConfigFile(path string) (Config, error) {
	cfg := defaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.Locks == nil {
		cfg.Locks = map[string]string{}
	}
	return cfg, nil
}

// stringList collects a repeatable flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// parseArgs returns the configuration for one run, or shouldExit when only
// help was requested.
func parseArgs(args []string, output io.Writer) (cfg Config, shouldExit bool, err error) {
	fs := flag.NewFlagSet("acasm", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
acasm - generate a random assembly from a part catalog.

Usage:
  acasm -catalog parts.yaml [options]

Options:
`)
		fs.PrintDefaults()
	}

	var catalogs, locks stringList
	fs.Var(&catalogs, "catalog", "Path to a catalog file. Repeat for several regulations.")
	fs.Var(&locks, "lock", "Pin a slot to a part id, as slot=id. Repeatable.")
	configPath := fs.String("config", "", "Path to a YAML run configuration.")
	regulation := fs.String("regulation", "", "Regulation version to use. Defaults to the latest loaded.")
	seed := fs.Uint64("seed", 0, "Random seed. Defaults to a fresh seed, printed with the result.")
	limit := fs.Int("limit", generator.DefaultLimit, "Attempt budget of the generator.")
	format := fs.String("format", "yaml", "Output format: 'yaml' or 'json'.")
	logLevel := fs.String("log-level", "warn", "Log level: 'debug', 'info', 'warn' or 'error'.")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return Config{}, true, nil
		}
		return Config{}, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg = defaultConfig()
	if *configPath != "" {
		if cfg, err = loadConfigFile(*configPath); err != nil {
			return Config{}, false, &ExitError{Code: 2, Message: err.Error()}
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "catalog":
			cfg.Catalogs = catalogs
		case "regulation":
			cfg.Regulation = *regulation
		case "seed":
			s := *seed
			cfg.Seed = &s
		case "limit":
			cfg.Limit = *limit
		case "format":
			cfg.Format = *format
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if cfg.Locks, err = canonicalLocks(cfg.Locks); err != nil {
		return Config{}, false, &ExitError{Code: 2, Message: err.Error()}
	}
	flagged := make(map[model.Slot]string, len(locks))
	for _, l := range locks {
		name, id, ok := strings.Cut(l, "=")
		if !ok || name == "" || id == "" {
			return Config{}, false, &ExitError{Code: 2, Message: "invalid lock " + strconv.Quote(l) + ": want slot=id"}
		}
		slot, err := model.ParseSlot(name)
		if err != nil {
			return Config{}, false, &ExitError{Code: 2, Message: err.Error()}
		}
		if prev, dup := flagged[slot]; dup {
			return Config{}, false, &ExitError{Code: 2, Message: fmt.Sprintf("slot %s locked twice: %q and %q", slot, prev, l)}
		}
		flagged[slot] = l
		cfg.Locks[slot.String()] = id
	}

	if err := cfg.validate(); err != nil {
		return Config{}, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("arguments parsed", "catalogs", cfg.Catalogs, "locks", len(cfg.Locks))
	return cfg, false, nil
}

func (c Config) validate() error {
	if len(c.Catalogs) == 0 {
		return fmt.Errorf("no catalog given")
	}
	if err := (generator.Config{Limit: c.Limit}).Validate(); err != nil {
		return err
	}
	switch c.Format {
	case "yaml", "json":
	default:
		return fmt.Errorf("invalid format %q: must be 'yaml' or 'json'", c.Format)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	for slot := range c.Locks {
		if _, err := model.ParseSlot(slot); err != nil {
			return err
		}
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}

// canonicalLocks rekeys locks by canonical slot name. Two spellings of one
// slot are an error, since either could win.
func canonicalLocks(locks map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(locks))
	seen := make(map[model.Slot]string, len(locks))
	for name, id := range locks {
		slot, err := model.ParseSlot(name)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[slot]; dup {
			a, b := prev, name
			if b < a {
				a, b = b, a
			}
			return nil, fmt.Errorf("slot %s locked twice: as %q and %q", slot, a, b)
		}
		seen[slot] = name
		out[slot.String()] = id
	}
	return out, nil
}

// lockIDs maps the configured lock slots to part identifiers.
func (c Config) lockIDs() map[model.Slot]string {
	ids := make(map[model.Slot]string, len(c.Locks))
	for name, id := range c.Locks {
		slot, _ := model.ParseSlot(name)
		ids[slot] = id
	}
	return ids
}
