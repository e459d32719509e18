// Copyright 2024 The Stratos Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package ipnet

import (
	"github.com/stratosdb/stratos/pkg/sql/sem/tree"
	"github.com/stratosdb/stratos/pkg/sql/types"
	"github.com/stratosdb/stratos/pkg/util/ipaddr"
	"github.com/stratosdb/stratos/pkg/util/uint128"
)

// RegisterFunctions registers the ip_* scalar functions, optionally
// under a name prefix.
func RegisterFunctions(reg *tree.FunctionRegistry, prefix string) {
	reg.Register(prefix+"ip_prefix", &tree.Overload{
		Types:      []*types.T{IPAddressType, types.Int},
		ReturnType: IPPrefixType,
		Fn: func(args tree.Datums) (tree.Datum, error) {
			return makeIPPrefix(args[0].(DIPAddr).IP, int64(args[1].(tree.DInt)))
		},
	})
	reg.Register(prefix+"ip_prefix", &tree.Overload{
		Types:      []*types.T{types.String, types.Int},
		ReturnType: IPPrefixType,
		Fn: func(args tree.Datums) (tree.Datum, error) {
			ip, err := ipaddr.ParseIP(string(args[0].(tree.DString)))
			if err != nil {
				return nil, err
			}
			return makeIPPrefix(ip, int64(args[1].(tree.DInt)))
		},
	})
	reg.Register(prefix+"ip_subnet_min", &tree.Overload{
		Types:      []*types.T{IPPrefixType},
		ReturnType: IPAddressType,
		Fn: func(args tree.Datums) (tree.Datum, error) {
			return DIPAddr{IP: args[0].(DIPPrefix).Prefix.SubnetMin()}, nil
		},
	})
	reg.Register(prefix+"ip_subnet_max", &tree.Overload{
		Types:      []*types.T{IPPrefixType},
		ReturnType: IPAddressType,
		Fn: func(args tree.Datums) (tree.Datum, error) {
			return DIPAddr{IP: args[0].(DIPPrefix).Prefix.SubnetMax()}, nil
		},
	})
	reg.Register(prefix+"ip_subnet_range", &tree.Overload{
		Types:      []*types.T{IPPrefixType},
		ReturnType: types.MakeArray(IPAddressType),
		Fn: func(args tree.Datums) (tree.Datum, error) {
			r := args[0].(DIPPrefix).Prefix.SubnetRange()
			arr := tree.NewDArray(IPAddressType)
			arr.Append(DIPAddr{IP: r[0]})
			arr.Append(DIPAddr{IP: r[1]})
			return arr, nil
		},
	})
	reg.Register(prefix+"is_subnet_of", &tree.Overload{
		Types:      []*types.T{IPPrefixType, IPAddressType},
		ReturnType: types.Bool,
		Fn: func(args tree.Datums) (tree.Datum, error) {
			outer := args[0].(DIPPrefix).Prefix
			return tree.DBool(outer.ContainsIP(args[1].(DIPAddr).IP)), nil
		},
	})
	reg.Register(prefix+"is_subnet_of", &tree.Overload{
		Types:      []*types.T{IPPrefixType, IPPrefixType},
		ReturnType: types.Bool,
		Fn: func(args tree.Datums) (tree.Datum, error) {
			outer := args[0].(DIPPrefix).Prefix
			return tree.DBool(outer.ContainsPrefix(args[1].(DIPPrefix).Prefix)), nil
		},
	})
}

func makeIPPrefix(ip uint128.Uint128, bits int64) (tree.Datum, error) {
	p, err := ipaddr.MakePrefix(ip, int(bits))
	if err != nil {
		return nil, err
	}
	return DIPPrefix{Prefix: p}, nil
}
