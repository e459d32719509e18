// Copyright 2024 The Stratos Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

// Package ipaddr implements the value semantics of the IPADDRESS and
// IPPREFIX logical types. Addresses are uniformly represented as
// 128-bit integers holding the IPv6 form of the address; IPv4
// addresses are stored IPv4-mapped (::ffff:a.b.c.d). An IPPrefix
// additionally carries a prefix length and always stores the canonical
// network address: every bit beyond the prefix length is zero.
package ipaddr

import (
	"net/netip"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/stratosdb/stratos/pkg/util/uint128"
)

// Address bit widths per family.
const (
	V4Bits = 32
	V6Bits = 128
)

var one = uint128.FromInts(0, 1)

// v4MappedPattern and v4MappedMask describe the IPv4-mapped IPv6 bit
// pattern ::ffff:0:0/96.
var (
	v4MappedPattern = uint128.FromInts(0, 0x0000FFFF00000000)
	v4MappedMask    = uint128.FromInts(^uint64(0), 0xFFFFFFFF00000000)
)

// IsIPv4Mapped reports whether the address matches the IPv4-mapped
// IPv6 bit pattern exactly. This is the sole criterion by which an
// address is treated as IPv4 for masking purposes.
func IsIPv4Mapped(ip uint128.Uint128) bool {
	return ip.And(v4MappedMask).Equal(v4MappedPattern)
}

// IPPrefix is an IP network: a canonical 128-bit network address plus
// a prefix length. The zero value is ::/0.
type IPPrefix struct {
	IP        uint128.Uint128
	PrefixLen uint8
}

// MakePrefix canonicalizes ip down to prefixLen bits and returns the
// resulting IPPrefix. The prefix length is validated against the
// address family bound: 32 when ip is IPv4-mapped, 128 otherwise.
func MakePrefix(ip uint128.Uint128, prefixLen int) (IPPrefix, error) {
	bits := V6Bits
	if IsIPv4Mapped(ip) {
		bits = V4Bits
	}
	if prefixLen < 0 || prefixLen > bits {
		return IPPrefix{}, errors.Newf(
			"CIDR value '%d' is > network bit count '%d'", prefixLen, bits)
	}
	return IPPrefix{IP: Mask(ip, prefixLen), PrefixLen: uint8(prefixLen)}, nil
}

// Mask zeroes all bits of ip beyond prefixLen, where the number of
// host bits is determined by the address family of ip itself. Masking
// an IPv4-mapped address never touches the ::ffff: marker bits, so the
// result stays IPv4-mapped.
func Mask(ip uint128.Uint128, prefixLen int) uint128.Uint128 {
	return mask(ip, prefixLen, IsIPv4Mapped(ip))
}

func mask(ip uint128.Uint128, prefixLen int, v4 bool) uint128.Uint128 {
	hostBits := uint(V6Bits - prefixLen)
	if v4 {
		hostBits = uint(V4Bits - prefixLen)
	}
	// one<<hostBits - 1 is the host-bits mask; its complement keeps the
	// network bits. hostBits == 128 wraps around to an all-ones host
	// mask, which is still the right answer (the network part is empty).
	return ip.And(one.Lsh(hostBits).Sub(1).Not())
}

// ParseIP parses a dotted-decimal IPv4 or colon-hex IPv6 literal into
// the canonical 128-bit form.
func ParseIP(s string) (uint128.Uint128, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil || addr.Zone() != "" {
		return uint128.Uint128{}, errors.Newf("Invalid IP address '%s'", s)
	}
	b := addr.As16()
	return uint128.FromBytes(b[:]), nil
}

// ParseIPPrefix parses CIDR notation (<address>"/"<prefix-length>,
// exactly one separator) into a canonical IPPrefix. Error messages
// quote the offending portion of the original input.
func ParseIPPrefix(s string) (IPPrefix, error) {
	if strings.Count(s, "/") != 1 {
		return IPPrefix{}, errors.Newf(
			"Invalid CIDR IP address specified. Expected IP/PREFIX format, got '%s'", s)
	}
	slash := strings.IndexByte(s, '/')
	ipPart, maskPart := s[:slash], s[slash+1:]

	addr, err := netip.ParseAddr(ipPart)
	if err != nil || addr.Zone() != "" {
		return IPPrefix{}, errors.Newf("Invalid IP address '%s'", ipPart)
	}
	prefixLen, err := strconv.ParseUint(maskPart, 10, 64)
	if err != nil {
		return IPPrefix{}, errors.Newf("Mask value '%s' not a valid mask", maskPart)
	}
	bits := V6Bits
	if addr.Is4() || addr.Is4In6() {
		bits = V4Bits
	}
	if prefixLen > uint64(bits) {
		return IPPrefix{}, errors.Newf(
			"CIDR value '%s' is > network bit count '%d'", maskPart, bits)
	}
	b := addr.As16()
	ip := uint128.FromBytes(b[:])
	return IPPrefix{
		IP:        mask(ip, int(prefixLen), bits == V4Bits),
		PrefixLen: uint8(prefixLen),
	}, nil
}

// SubnetMin returns the smallest address in the network. The stored
// address is already canonical, so this is the address itself.
func (p IPPrefix) SubnetMin() uint128.Uint128 {
	return p.IP
}

// SubnetMax returns the largest address in the network: the network
// address with every host bit set.
func (p IPPrefix) SubnetMax() uint128.Uint128 {
	if IsIPv4Mapped(p.IP) {
		return p.IP.Or(one.Lsh(uint(V4Bits - p.PrefixLen)).Sub(1))
	}
	// A zero prefix over a full-width address has 128 host bits; the
	// shift-then-subtract trick overflows there, so produce the all-ones
	// value explicitly.
	if p.PrefixLen == 0 {
		return uint128.Max
	}
	return p.IP.Or(one.Lsh(uint(V6Bits - p.PrefixLen)).Sub(1))
}

// SubnetRange returns the ordered [SubnetMin, SubnetMax] pair.
func (p IPPrefix) SubnetRange() [2]uint128.Uint128 {
	return [2]uint128.Uint128{p.SubnetMin(), p.SubnetMax()}
}

// ContainsIP reports whether ip falls inside the network: masking ip
// to p's prefix length (under p's address family) yields p's network
// address.
func (p IPPrefix) ContainsIP(ip uint128.Uint128) bool {
	return mask(ip, int(p.PrefixLen), IsIPv4Mapped(p.IP)).Equal(p.IP)
}

// ContainsPrefix reports whether other is a subnet of p: other's
// network address falls inside p and other is at least as specific.
func (p IPPrefix) ContainsPrefix(other IPPrefix) bool {
	return p.ContainsIP(other.IP) && other.PrefixLen >= p.PrefixLen
}

// FormatIP renders the 128-bit address: dotted-decimal when it is
// IPv4-mapped, the canonical IPv6 literal otherwise.
func FormatIP(ip uint128.Uint128) string {
	addr := netip.AddrFrom16([16]byte(ip.GetBytes()))
	if addr.Is4In6() {
		return addr.Unmap().String()
	}
	return addr.String()
}

// String renders the prefix in CIDR notation. Stored values are
// canonical, so formatting performs no validation.
func (p IPPrefix) String() string {
	return redact.StringWithoutMarkers(p)
}

// SafeFormat implements the redact.SafeFormatter interface. Canonical
// prefixes contain no user-controlled text and are safe to report.
func (p IPPrefix) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeString(redact.SafeString(FormatIP(p.IP) + "/" + strconv.Itoa(int(p.PrefixLen))))
}
