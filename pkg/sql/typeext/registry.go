// Copyright 2024 The Stratos Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

// Package typeext holds the process-wide registry of extension-defined
// logical types. Extensions register a factory under a type name; the
// engine later looks the type up by name and discovers its vectorized
// conversions through the factory's cast operator.
//
// Registration is expected to happen before concurrent query execution
// begins, or under external synchronization. Lookups are the hot path
// and are safe for any number of concurrent readers.
package typeext

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/stratosdb/stratos/pkg/sql/colexec/colexecbase"
	"github.com/stratosdb/stratos/pkg/sql/types"
	"github.com/stratosdb/stratos/pkg/util/syncutil"
)

// ErrTypeNotFound is the sentinel marking "type not found" lookup
// failures; test with errors.Is.
var ErrTypeNotFound = errors.New("type not found")

// Factory produces the singleton logical type instance for one
// registered custom type, and optionally its cast operator. Both are
// immutable after construction and shared read-only across all
// lookups.
type Factory interface {
	// Type returns the shared type instance. The factory validates the
	// parameter list; most custom types accept none.
	Type(params []*types.T) (*types.T, error)
	// CastOperator returns the type's batch conversion capability, nil
	// when the type supports no casts.
	CastOperator() colexecbase.CastOperator
}

// Registry maps custom type names to their factories. The zero value
// is not usable; use NewRegistry. Default is the process-wide
// instance; tests construct isolated registries.
type Registry struct {
	mu struct {
		syncutil.RWMutex
		factories map[string]Factory
	}
}

// Default is the process-wide type registry populated by extension
// entry points.
var Default = NewRegistry()

// NewRegistry returns an empty type registry.
func NewRegistry() *Registry {
	r := &Registry{}
	r.mu.factories = make(map[string]Factory)
	return r
}

// Register stores the factory under name, overwriting any previous
// registration for the same name. Last registration wins; no attempt
// is made to detect conflicting physical layouts. Names are
// case-insensitive.
func (r *Registry) Register(name string, f Factory) {
	key := strings.ToLower(name)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mu.factories[key] = f
}

// Exists reports whether a type is registered under name.
func (r *Registry) Exists(name string) bool {
	key := strings.ToLower(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.mu.factories[key]
	return ok
}

// Lookup returns the shared type instance registered under name,
// letting the factory validate the parameter list. Lookup of an
// unregistered name fails with ErrTypeNotFound.
func (r *Registry) Lookup(name string, params []*types.T) (*types.T, error) {
	f, ok := r.factory(name)
	if !ok {
		return nil, errors.Wrapf(ErrTypeNotFound, "%s", name)
	}
	return f.Type(params)
}

// CastOperator returns the cast operator of the type registered under
// name, or false when the type is unregistered or supports no casts.
func (r *Registry) CastOperator(name string) (colexecbase.CastOperator, bool) {
	f, ok := r.factory(name)
	if !ok {
		return nil, false
	}
	op := f.CastOperator()
	return op, op != nil
}

// ResolveCast finds the cast operator for a (from, to) conversion
// pair. When the destination is the custom type the returned operator
// is to be invoked through CastInto, otherwise through CastFrom;
// intoCustom distinguishes the two. Pairs where neither side is a
// registered custom type, or where the operator's predicates reject
// the other side, fail with a setup-level error.
func (r *Registry) ResolveCast(
	from, to *types.T,
) (op colexecbase.CastOperator, intoCustom bool, _ error) {
	if op, ok := r.CastOperator(to.Name()); ok && op.SupportsSourceType(from) {
		return op, true, nil
	}
	if op, ok := r.CastOperator(from.Name()); ok && op.SupportsDestinationType(to) {
		return op, false, nil
	}
	return nil, false, colexecbase.UnhandledCastError(from, to)
}

func (r *Registry) factory(name string) (Factory, bool) {
	key := strings.ToLower(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.mu.factories[key]
	return f, ok
}
