// Copyright 2024 The Stratos Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package ipnet

import (
	"github.com/stratosdb/stratos/pkg/col/coldata"
	"github.com/stratosdb/stratos/pkg/col/coltypes"
	"github.com/stratosdb/stratos/pkg/sql/colexec/colexecbase"
	"github.com/stratosdb/stratos/pkg/sql/types"
	"github.com/stratosdb/stratos/pkg/util/ipaddr"
)

// ipPrefixCastOp converts between IPPREFIX and other types over a
// batch of rows. Stateless; one shared instance serves all calls.
type ipPrefixCastOp struct{}

var _ colexecbase.CastOperator = ipPrefixCastOp{}

func (ipPrefixCastOp) SupportsSourceType(t *types.T) bool {
	switch t.Kind() {
	case coltypes.Bytes:
		return true
	case coltypes.Int128:
		// Only the IPADDRESS logical type qualifies among
		// 128-bit-integer-backed types.
		return t.Name() == IPAddressType.Name()
	default:
		return false
	}
}

func (ipPrefixCastOp) SupportsDestinationType(t *types.T) bool {
	switch t.Kind() {
	case coltypes.Bytes:
		return true
	case coltypes.Int128:
		return t.Name() == IPAddressType.Name()
	default:
		return false
	}
}

func (ipPrefixCastOp) CastInto(
	evalCtx *colexecbase.EvalCtx, input coldata.Vec, rows coldata.Sel, toType *types.T,
) (coldata.Vec, error) {
	if input.Type().Kind() != coltypes.Bytes {
		return nil, colexecbase.UnhandledCastError(input.Type(), toType)
	}
	n := input.Length()
	out := coldata.NewMemColumn(IPPrefixType, n)
	ipVec, prefixVec := out.Field(ipFieldIdx), out.Field(prefixFieldIdx)
	// Rows start out null; successful rows are flipped as they are
	// written, so failed and inactive rows stay null.
	out.Nulls().SetNulls()
	ipVec.Nulls().SetNulls()
	prefixVec.Nulls().SetNulls()

	strs := input.Bytes()
	inNulls := input.Nulls()
	ips, prefixes := ipVec.Int128(), prefixVec.Uint8()
	evalCtx.ApplyToSelected(rows, func(row int) error {
		if input.MaybeHasNulls() && inNulls.NullAt(row) {
			return nil
		}
		p, err := ipaddr.ParseIPPrefix(strs.GetString(row))
		if err != nil {
			return err
		}
		ips[row] = p.IP
		prefixes[row] = p.PrefixLen
		ipVec.Nulls().UnsetNull(row)
		prefixVec.Nulls().UnsetNull(row)
		out.Nulls().UnsetNull(row)
		return nil
	})
	return out, nil
}

func (ipPrefixCastOp) CastFrom(
	evalCtx *colexecbase.EvalCtx, input coldata.Vec, rows coldata.Sel, toType *types.T,
) (coldata.Vec, error) {
	if toType.Kind() != coltypes.Bytes {
		return nil, colexecbase.UnhandledCastError(input.Type(), toType)
	}
	n := input.Length()
	out := coldata.NewMemColumn(toType, n)
	out.Nulls().SetNulls()

	ips := input.Field(ipFieldIdx).Int128()
	prefixes := input.Field(prefixFieldIdx).Uint8()
	inNulls := input.Nulls()
	outBytes := out.Bytes()
	// No validation in this direction: stored values are assumed
	// canonical.
	evalCtx.ApplyToSelected(rows, func(row int) error {
		if input.MaybeHasNulls() && inNulls.NullAt(row) {
			return nil
		}
		p := ipaddr.IPPrefix{IP: ips[row], PrefixLen: prefixes[row]}
		outBytes.SetString(row, p.String())
		out.Nulls().UnsetNull(row)
		return nil
	})
	outBytes.UpdateOffsetsToBeNonDecreasing(n)
	return out, nil
}

// ipAddressCastOp converts between IPADDRESS and strings over a batch
// of rows.
type ipAddressCastOp struct{}

var _ colexecbase.CastOperator = ipAddressCastOp{}

func (ipAddressCastOp) SupportsSourceType(t *types.T) bool {
	return t.Kind() == coltypes.Bytes
}

func (ipAddressCastOp) SupportsDestinationType(t *types.T) bool {
	return t.Kind() == coltypes.Bytes
}

func (ipAddressCastOp) CastInto(
	evalCtx *colexecbase.EvalCtx, input coldata.Vec, rows coldata.Sel, toType *types.T,
) (coldata.Vec, error) {
	if input.Type().Kind() != coltypes.Bytes {
		return nil, colexecbase.UnhandledCastError(input.Type(), toType)
	}
	n := input.Length()
	out := coldata.NewMemColumn(IPAddressType, n)
	out.Nulls().SetNulls()

	strs := input.Bytes()
	inNulls := input.Nulls()
	ips := out.Int128()
	evalCtx.ApplyToSelected(rows, func(row int) error {
		if input.MaybeHasNulls() && inNulls.NullAt(row) {
			return nil
		}
		ip, err := ipaddr.ParseIP(strs.GetString(row))
		if err != nil {
			return err
		}
		ips[row] = ip
		out.Nulls().UnsetNull(row)
		return nil
	})
	return out, nil
}

func (ipAddressCastOp) CastFrom(
	evalCtx *colexecbase.EvalCtx, input coldata.Vec, rows coldata.Sel, toType *types.T,
) (coldata.Vec, error) {
	if toType.Kind() != coltypes.Bytes {
		return nil, colexecbase.UnhandledCastError(input.Type(), toType)
	}
	n := input.Length()
	out := coldata.NewMemColumn(toType, n)
	out.Nulls().SetNulls()

	ips := input.Int128()
	inNulls := input.Nulls()
	outBytes := out.Bytes()
	evalCtx.ApplyToSelected(rows, func(row int) error {
		if input.MaybeHasNulls() && inNulls.NullAt(row) {
			return nil
		}
		outBytes.SetString(row, ipaddr.FormatIP(ips[row]))
		out.Nulls().UnsetNull(row)
		return nil
	})
	outBytes.UpdateOffsetsToBeNonDecreasing(n)
	return out, nil
}
