// Copyright 2024 The Stratos Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package ipnet

import (
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
	"github.com/stratosdb/stratos/pkg/col/coldata"
	"github.com/stratosdb/stratos/pkg/sql/colexec/colexecbase"
	"github.com/stratosdb/stratos/pkg/sql/typeext"
	"github.com/stratosdb/stratos/pkg/sql/types"
)

// makeStringVec builds a VARCHAR vector from vals, with the given
// indices set to null.
func makeStringVec(t *testing.T, vals []string, nullIdxs ...int) coldata.Vec {
	t.Helper()
	vec := coldata.NewMemColumn(types.String, len(vals))
	bytes := vec.Bytes()
	for i, v := range vals {
		bytes.SetString(i, v)
	}
	for _, i := range nullIdxs {
		vec.Nulls().SetNull(i)
	}
	return vec
}

func TestCastStringToIPPrefix(t *testing.T) {
	input := makeStringVec(t, []string{
		"10.1.2.3/8",
		"not-a-cidr",
		"2001:db8::1/32",
		"", // null
		"10.0.0.1/33",
		"::ffff:1.2.3.4/24",
	}, 3)
	n := input.Length()

	evalCtx := colexecbase.NewEvalCtx()
	out, err := ipPrefixCastOp{}.CastInto(evalCtx, input, coldata.AllRows(n), IPPrefixType)
	require.NoError(t, err)
	require.True(t, out.Type().Identical(IPPrefixType))

	// Rows 1 and 4 fail; row 3 is a null passthrough, not an error.
	require.Equal(t, 2, evalCtx.NumErrors())
	require.Equal(t, []int{1, 4}, evalCtx.FailedRows())
	require.EqualError(t, evalCtx.RowError(1),
		"Invalid CIDR IP address specified. Expected IP/PREFIX format, got 'not-a-cidr'")
	require.EqualError(t, evalCtx.RowError(4), "CIDR value '33' is > network bit count '32'")

	for _, row := range []int{1, 3, 4} {
		require.True(t, out.Nulls().NullAt(row), "row %d", row)
	}

	// Surviving rows format back to their canonical strings.
	back, err := ipPrefixCastOp{}.CastFrom(colexecbase.NewEvalCtx(), out, coldata.AllRows(n), types.String)
	require.NoError(t, err)
	require.Equal(t, "10.0.0.0/8", back.Bytes().GetString(0))
	require.Equal(t, "2001:db8::/32", back.Bytes().GetString(2))
	require.Equal(t, "1.2.3.0/24", back.Bytes().GetString(5))
	for _, row := range []int{1, 3, 4} {
		require.True(t, back.Nulls().NullAt(row), "row %d", row)
	}
}

func TestCastSelectionVector(t *testing.T) {
	input := makeStringVec(t, []string{
		"10.0.0.0/8",
		"garbage",
		"192.168.0.0/16",
		"also garbage",
	})

	// Rows 1 and 3 are inactive; their bad values must not surface.
	evalCtx := colexecbase.NewEvalCtx()
	out, err := ipPrefixCastOp{}.CastInto(evalCtx, input, coldata.Rows([]int{0, 2}), IPPrefixType)
	require.NoError(t, err)
	require.Equal(t, 0, evalCtx.NumErrors())
	require.False(t, out.Nulls().NullAt(0))
	require.True(t, out.Nulls().NullAt(1))
	require.False(t, out.Nulls().NullAt(2))
	require.True(t, out.Nulls().NullAt(3))
}

func TestCastSkipErrorDetails(t *testing.T) {
	input := makeStringVec(t, []string{"bogus/8"})

	evalCtx := colexecbase.NewEvalCtx()
	evalCtx.SkipErrorDetails = true
	_, err := ipPrefixCastOp{}.CastInto(evalCtx, input, coldata.AllRows(1), IPPrefixType)
	require.NoError(t, err)
	require.ErrorIs(t, evalCtx.RowError(0), colexecbase.ErrRowRejected)
	require.NotContains(t, evalCtx.RowError(0).Error(), "bogus")
}

func TestCastUnsupportedSource(t *testing.T) {
	input := coldata.NewMemColumn(types.Int, 4)

	// A failing setup is a call-level error, before any row runs.
	evalCtx := colexecbase.NewEvalCtx()
	_, err := ipPrefixCastOp{}.CastInto(evalCtx, input, coldata.AllRows(4), IPPrefixType)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unhandled cast")
	require.Equal(t, 0, evalCtx.NumErrors())
}

func TestCastSupportsPredicates(t *testing.T) {
	op := ipPrefixCastOp{}
	require.True(t, op.SupportsSourceType(types.String))
	require.True(t, op.SupportsSourceType(IPAddressType))
	require.False(t, op.SupportsSourceType(types.Int))
	// A plain 128-bit integer is not an IPADDRESS.
	require.False(t, op.SupportsSourceType(types.HugeInt))
	require.True(t, op.SupportsDestinationType(types.String))
	require.False(t, op.SupportsDestinationType(types.Bool))
}

func TestResolveCastDispatch(t *testing.T) {
	reg := typeext.NewRegistry()
	RegisterTypes(reg)

	// VARCHAR -> IPPREFIX resolves through the destination's operator.
	op, intoCustom, err := reg.ResolveCast(types.String, IPPrefixType)
	require.NoError(t, err)
	require.True(t, intoCustom)
	require.Equal(t, ipPrefixCastOp{}, op)

	// IPPREFIX -> VARCHAR resolves through the source's operator.
	op, intoCustom, err = reg.ResolveCast(IPPrefixType, types.String)
	require.NoError(t, err)
	require.False(t, intoCustom)
	require.Equal(t, ipPrefixCastOp{}, op)

	_, _, err = reg.ResolveCast(types.Bool, IPPrefixType)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unhandled cast")
}

func TestCastStringToIPAddress(t *testing.T) {
	input := makeStringVec(t, []string{"1.2.3.4", "::ffff:1.2.3.4", "2001:db8::1", "junk"})
	n := input.Length()

	evalCtx := colexecbase.NewEvalCtx()
	out, err := ipAddressCastOp{}.CastInto(evalCtx, input, coldata.AllRows(n), IPAddressType)
	require.NoError(t, err)
	require.Equal(t, []int{3}, evalCtx.FailedRows())
	require.EqualError(t, evalCtx.RowError(3), "Invalid IP address 'junk'")

	ips := out.Int128()
	// The dotted and mapped spellings are the same stored value.
	require.Equal(t, ips[0], ips[1])

	back, err := ipAddressCastOp{}.CastFrom(colexecbase.NewEvalCtx(), out, coldata.AllRows(n), types.String)
	require.NoError(t, err)
	require.Equal(t, "1.2.3.4", back.Bytes().GetString(0))
	require.Equal(t, "1.2.3.4", back.Bytes().GetString(1))
	require.Equal(t, "2001:db8::1", back.Bytes().GetString(2))
	require.True(t, back.Nulls().NullAt(3))
}

func TestCastDataDriven(t *testing.T) {
	datadriven.RunTest(t, "testdata/cast", func(t *testing.T, d *datadriven.TestData) string {
		var op colexecbase.CastOperator
		var toType *types.T
		switch d.Cmd {
		case "parse-prefix":
			op, toType = ipPrefixCastOp{}, IPPrefixType
		case "parse-address":
			op, toType = ipAddressCastOp{}, IPAddressType
		default:
			d.Fatalf(t, "unknown command %q", d.Cmd)
		}

		lines := strings.Split(strings.TrimSpace(d.Input), "\n")
		input := makeStringVec(t, lines)
		evalCtx := colexecbase.NewEvalCtx()
		out, err := op.CastInto(evalCtx, input, coldata.AllRows(len(lines)), toType)
		if err != nil {
			return "error: " + err.Error()
		}
		back, err := op.CastFrom(colexecbase.NewEvalCtx(), out, coldata.AllRows(len(lines)), types.String)
		if err != nil {
			return "error: " + err.Error()
		}

		var sb strings.Builder
		for row := range lines {
			if rowErr := evalCtx.RowError(row); rowErr != nil {
				sb.WriteString("error: " + rowErr.Error())
			} else {
				sb.WriteString(back.Bytes().GetString(row))
			}
			sb.WriteByte('\n')
		}
		return sb.String()
	})
}
