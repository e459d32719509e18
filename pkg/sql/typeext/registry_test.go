// Copyright 2024 The Stratos Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package typeext

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/stratosdb/stratos/pkg/col/coltypes"
	"github.com/stratosdb/stratos/pkg/sql/colexec/colexecbase"
	"github.com/stratosdb/stratos/pkg/sql/types"
	"golang.org/x/sync/errgroup"
)

type testFactory struct {
	typ *types.T
	op  colexecbase.CastOperator
}

func (f *testFactory) Type(params []*types.T) (*types.T, error) {
	if len(params) != 0 {
		return nil, errors.Newf("%s does not take type parameters", f.typ.Name())
	}
	return f.typ, nil
}

func (f *testFactory) CastOperator() colexecbase.CastOperator { return f.op }

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	typ := types.MakeScalar(coltypes.Int128, "JSONPATH")
	r.Register("jsonpath", &testFactory{typ: typ})

	require.True(t, r.Exists("jsonpath"))
	// Names are case-insensitive.
	require.True(t, r.Exists("JSONPATH"))
	require.False(t, r.Exists("nope"))

	got, err := r.Lookup("JSONPATH", nil)
	require.NoError(t, err)
	// The shared instance, not a copy.
	require.Same(t, typ, got)

	_, err = r.Lookup("jsonpath", []*types.T{types.Int})
	require.Error(t, err)

	_, err = r.Lookup("nope", nil)
	require.ErrorIs(t, err, ErrTypeNotFound)
}

func TestRegistryLastRegistrationWins(t *testing.T) {
	r := NewRegistry()
	first := types.MakeScalar(coltypes.Int128, "THING")
	second := types.MakeScalar(coltypes.Bytes, "THING")
	r.Register("thing", &testFactory{typ: first})
	r.Register("thing", &testFactory{typ: second})

	got, err := r.Lookup("thing", nil)
	require.NoError(t, err)
	require.Same(t, second, got)
}

func TestResolveCastUnhandled(t *testing.T) {
	r := NewRegistry()
	r.Register("thing", &testFactory{typ: types.MakeScalar(coltypes.Int128, "THING")})

	// No cast operator registered at all.
	_, _, err := r.ResolveCast(types.String, types.MakeScalar(coltypes.Int128, "THING"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unhandled cast")
}

func TestRegistryConcurrentLookups(t *testing.T) {
	r := NewRegistry()
	typ := types.MakeScalar(coltypes.Int128, "THING")
	r.Register("thing", &testFactory{typ: typ})

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j := 0; j < 1000; j++ {
				if !r.Exists("thing") {
					return errors.New("lost registration")
				}
				got, err := r.Lookup("thing", nil)
				if err != nil {
					return err
				}
				if got != typ {
					return errors.New("lookup returned a different instance")
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
