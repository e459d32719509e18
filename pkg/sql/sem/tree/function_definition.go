// Copyright 2024 The Stratos Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package tree

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/stratosdb/stratos/pkg/sql/types"
	"github.com/stratosdb/stratos/pkg/util/syncutil"
)

// ErrNoMatchingSignature is the sentinel marking failed function
// resolution; test with errors.Is. Reporting the failure to the user
// is the expression binder's job, not ours.
var ErrNoMatchingSignature = errors.New("no function matches the given name and argument types")

// Overload is one implementation of a function for one ordered
// argument type list. A function's identity is (name, Types); the
// return type is never part of the lookup key.
type Overload struct {
	// Types is the exact ordered argument type list.
	Types []*types.T
	// ReturnType is the fixed return type.
	ReturnType *types.T
	// Fn is the implementation. Implementations are stateless and
	// reentrant; NULL argument handling is the caller's concern unless
	// NullableArgs is set.
	Fn func(args Datums) (Datum, error)
	// NullableArgs is true when Fn wants to see NULL arguments instead
	// of having the call short-circuit to NULL.
	NullableArgs bool
}

// Signature renders the (name, argument types) identity of the
// overload, e.g. "is_subnet_of(IPPREFIX, IPADDRESS)".
func (o *Overload) Signature(name string) string {
	args := make([]string, len(o.Types))
	for i, t := range o.Types {
		args[i] = t.String()
	}
	return name + "(" + strings.Join(args, ", ") + ")"
}

// FunctionRegistry maps (name, ordered argument types) to an
// implementation. Overloads differing in argument count or any
// argument type coexist; re-registering an identical signature
// overwrites the previous entry, even when only the return type
// differs. FunDefs is the process-wide instance; tests construct
// isolated registries.
type FunctionRegistry struct {
	mu struct {
		syncutil.RWMutex
		defs map[string][]*Overload
	}
}

// FunDefs is the process-wide function registry populated by extension
// entry points.
var FunDefs = NewFunctionRegistry()

// NewFunctionRegistry returns an empty function registry.
func NewFunctionRegistry() *FunctionRegistry {
	r := &FunctionRegistry{}
	r.mu.defs = make(map[string][]*Overload)
	return r
}

// Register stores the overload under name. Names are case-insensitive.
func (r *FunctionRegistry) Register(name string, ov *Overload) {
	key := strings.ToLower(name)
	r.mu.Lock()
	defer r.mu.Unlock()
	ovs := r.mu.defs[key]
	for i, existing := range ovs {
		if types.IdenticalArgs(existing.Types, ov.Types) {
			ovs[i] = ov
			return
		}
	}
	r.mu.defs[key] = append(ovs, ov)
}

// Resolve returns the implementation registered for the exact (name,
// argument types) signature. No coercion or best-match search is
// performed; absence fails with ErrNoMatchingSignature.
func (r *FunctionRegistry) Resolve(name string, argTypes []*types.T) (*Overload, error) {
	key := strings.ToLower(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ov := range r.mu.defs[key] {
		if types.IdenticalArgs(ov.Types, argTypes) {
			return ov, nil
		}
	}
	return nil, errors.Wrapf(ErrNoMatchingSignature,
		"%s", (&Overload{Types: argTypes}).Signature(name))
}

// Overloads returns a copy of the overload list registered under name.
func (r *FunctionRegistry) Overloads(name string) []*Overload {
	key := strings.ToLower(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Overload(nil), r.mu.defs[key]...)
}

// FunctionNames returns all registered function names, sorted, for a
// deterministic walk through the registry.
func (r *FunctionRegistry) FunctionNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.mu.defs))
	for name := range r.mu.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call resolves the function by the argument values' types and invokes
// it. NULL arguments short-circuit to NULL unless the overload opts in
// to seeing them.
func (r *FunctionRegistry) Call(name string, args Datums) (Datum, error) {
	ov, err := r.Resolve(name, args.ArgTypes())
	if err != nil {
		return nil, err
	}
	if !ov.NullableArgs && args.HasNulls() {
		return DNull, nil
	}
	return ov.Fn(args)
}
