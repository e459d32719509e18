// Copyright 2024 The Stratos Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

// Package extension loads engine extensions and gives their entry
// points a chance to populate the process-wide type and function
// registries.
//
// An extension exports a single fixed-name entry point, Registry, a
// niladic function. The loader resolves it, calls it exactly once and
// trusts it completely: there is no sandboxing, no argument passing
// and no way to unregister. Statically linked extensions announce
// their entry point through RegisterBuiltin; shared libraries (.so on
// Linux, .dylib on macOS) are resolved through the Go plugin
// machinery.
//
// Binary compatibility between a shared library and the hosting engine
// is an assumed precondition, not verified: the library must be built
// against the identical engine version. A mismatch is undefined
// behavior, outside this package's error-handling responsibility.
package extension

import (
	"context"
	"os"
	"plugin"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/google/uuid"
	"github.com/stratosdb/stratos/pkg/util/log"
	"github.com/stratosdb/stratos/pkg/util/syncutil"
	"gopkg.in/yaml.v3"
)

// EntryPointSymbol is the fixed name of the exported entry point every
// extension library must provide.
const EntryPointSymbol = "Registry"

// EntryPoint is the signature of the entry point: no arguments, no
// return value. It registers the extension's types and functions as a
// side effect.
type EntryPoint func()

// builtinMu guards the table of statically linked extensions, keyed by
// name.
var builtinMu struct {
	syncutil.Mutex
	entries map[string]EntryPoint
}

// RegisterBuiltin announces the entry point of a statically linked
// extension under the given name, making it loadable without dynamic
// linking. Meant to be called from an init function.
func RegisterBuiltin(name string, fn EntryPoint) {
	builtinMu.Lock()
	defer builtinMu.Unlock()
	if builtinMu.entries == nil {
		builtinMu.entries = make(map[string]EntryPoint)
	}
	builtinMu.entries[name] = fn
}

func builtinEntry(name string) (EntryPoint, bool) {
	builtinMu.Lock()
	defer builtinMu.Unlock()
	fn, ok := builtinMu.entries[name]
	return fn, ok
}

// Record describes one loaded extension. Records live for the
// remainder of the process; loaded code is never released.
type Record struct {
	ID       uuid.UUID
	Path     string
	LoadedAt time.Time

	entry EntryPoint
}

// Loader loads extensions and keeps the records of everything loaded
// so far. Loading is a rare, synchronous, one-time operation per
// library; it is expected to finish before concurrent query execution
// begins.
type Loader struct {
	// resolve maps a library path to its entry point. Overridden in
	// tests; defaults to the builtin table plus dynamic loading.
	resolve func(path string) (EntryPoint, error)

	mu struct {
		syncutil.Mutex
		loaded []*Record
	}
}

// NewLoader returns a Loader using the default resolution order:
// statically linked extensions first, then dynamic loading.
func NewLoader() *Loader {
	return &Loader{resolve: resolveEntryPoint}
}

// Load resolves the entry point of the library at path and invokes it
// exactly once, letting it register whatever the library provides.
// Open failures and a missing entry point are fatal and returned to
// the caller.
func (l *Loader) Load(ctx context.Context, path string) (*Record, error) {
	ctx = logtags.AddTag(ctx, "ext", path)
	entry, err := l.resolve(path)
	if err != nil {
		return nil, err
	}
	entry()
	rec := &Record{
		ID:       uuid.New(),
		Path:     path,
		LoadedAt: time.Now(),
		entry:    entry,
	}
	l.mu.Lock()
	l.mu.loaded = append(l.mu.loaded, rec)
	l.mu.Unlock()
	log.Infof(ctx, "loaded extension library")
	return rec, nil
}

// Loaded returns a snapshot of the records of all loaded extensions,
// in load order.
func (l *Loader) Loaded() []*Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]*Record(nil), l.mu.loaded...)
}

func resolveEntryPoint(path string) (EntryPoint, error) {
	if fn, ok := builtinEntry(path); ok {
		return fn, nil
	}
	p, err := plugin.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open extension library %q", path)
	}
	sym, err := p.Lookup(EntryPointSymbol)
	if err != nil {
		return nil, errors.Wrapf(err,
			"extension library %q does not export entry point %q", path, EntryPointSymbol)
	}
	fn, ok := sym.(func())
	if !ok {
		return nil, errors.Newf(
			"extension library %q: entry point %q has the wrong signature", path, EntryPointSymbol)
	}
	return fn, nil
}

// Config lists the extension libraries to load at startup.
type Config struct {
	Libraries []string `yaml:"libraries"`
}

// LoadConfig reads a YAML config file and loads every library it
// lists, stopping at the first failure.
func (l *Loader) LoadConfig(ctx context.Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading extension config %q", path)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return errors.Wrapf(err, "parsing extension config %q", path)
	}
	for _, lib := range cfg.Libraries {
		if _, err := l.Load(ctx, lib); err != nil {
			return err
		}
	}
	return nil
}
