// Copyright 2024 The Stratos Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

// Package ipnet is the network-address extension: the IPADDRESS and
// IPPREFIX custom logical types, their batch-vectorized string casts
// and the ip_* scalar functions. It is the reference extension for the
// custom-type machinery and registers itself through the standard
// extension entry point.
package ipnet

import (
	"github.com/cockroachdb/errors"
	"github.com/stratosdb/stratos/pkg/col/coltypes"
	"github.com/stratosdb/stratos/pkg/sql/colexec/colexecbase"
	"github.com/stratosdb/stratos/pkg/sql/types"
	"github.com/stratosdb/stratos/pkg/util/ipaddr"
	"github.com/stratosdb/stratos/pkg/util/uint128"
)

// IPAddressType is the IPADDRESS logical type: a 128-bit integer
// holding the canonical IPv6 form of an address.
var IPAddressType = types.MakeScalar(coltypes.Int128, "IPADDRESS")

// IPPrefixType is the IPPREFIX logical type, materialized as a
// two-field composite of the 128-bit network address and the 8-bit
// prefix length. It takes no type parameters.
var IPPrefixType = types.MakeComposite("IPPREFIX", types.HugeInt, types.TinyInt)

// Field positions within the IPPREFIX composite.
const (
	ipFieldIdx     = 0
	prefixFieldIdx = 1
)

// DIPAddr is the IPADDRESS datum.
type DIPAddr struct {
	IP uint128.Uint128
}

func (d DIPAddr) ResolvedType() *types.T { return IPAddressType }
func (d DIPAddr) String() string         { return ipaddr.FormatIP(d.IP) }

// DIPPrefix is the IPPREFIX datum.
type DIPPrefix struct {
	Prefix ipaddr.IPPrefix
}

func (d DIPPrefix) ResolvedType() *types.T { return IPPrefixType }
func (d DIPPrefix) String() string         { return d.Prefix.String() }

// ipAddressFactory produces the shared IPADDRESS type instance and its
// cast operator.
type ipAddressFactory struct{}

func (ipAddressFactory) Type(params []*types.T) (*types.T, error) {
	if len(params) != 0 {
		return nil, errors.Newf("IPADDRESS does not take type parameters")
	}
	return IPAddressType, nil
}

func (ipAddressFactory) CastOperator() colexecbase.CastOperator {
	return ipAddressCastOp{}
}

// ipPrefixFactory produces the shared IPPREFIX type instance and its
// cast operator.
type ipPrefixFactory struct{}

func (ipPrefixFactory) Type(params []*types.T) (*types.T, error) {
	if len(params) != 0 {
		return nil, errors.Newf("IPPREFIX does not take type parameters")
	}
	return IPPrefixType, nil
}

func (ipPrefixFactory) CastOperator() colexecbase.CastOperator {
	return ipPrefixCastOp{}
}
