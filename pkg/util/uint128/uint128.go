// Copyright 2024 The Stratos Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package uint128

import (
	"encoding/binary"
	"fmt"

	"github.com/cockroachdb/errors"
)

// Uint128 is a big-endian 128 bit unsigned integer which wraps two
// uint64s.
type Uint128 struct {
	Hi, Lo uint64
}

// Max is the largest possible Uint128 value.
var Max = Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}

// GetBytes returns a big-endian byte representation.
func (u Uint128) GetBytes() []byte {
	buf := make([]byte, 16)
	binary.BigEndian.PutUint64(buf[:8], u.Hi)
	binary.BigEndian.PutUint64(buf[8:], u.Lo)
	return buf
}

// AppendBytes appends a big-endian byte representation to b.
func (u Uint128) AppendBytes(b []byte) []byte {
	b = binary.BigEndian.AppendUint64(b, u.Hi)
	return binary.BigEndian.AppendUint64(b, u.Lo)
}

// String returns a hexadecimal string representation.
func (u Uint128) String() string {
	return fmt.Sprintf("%016x%016x", u.Hi, u.Lo)
}

// Equal returns whether the two Uint128s are identical.
func (u Uint128) Equal(o Uint128) bool {
	return u.Hi == o.Hi && u.Lo == o.Lo
}

// Compare compares the two Uint128s and returns -1, 0 or 1.
func (u Uint128) Compare(o Uint128) int {
	if u.Hi > o.Hi {
		return 1
	} else if u.Hi < o.Hi {
		return -1
	} else if u.Lo > o.Lo {
		return 1
	} else if u.Lo < o.Lo {
		return -1
	}
	return 0
}

// And returns the bitwise AND of two Uint128s.
func (u Uint128) And(o Uint128) Uint128 {
	return Uint128{Hi: u.Hi & o.Hi, Lo: u.Lo & o.Lo}
}

// Or returns the bitwise OR of two Uint128s.
func (u Uint128) Or(o Uint128) Uint128 {
	return Uint128{Hi: u.Hi | o.Hi, Lo: u.Lo | o.Lo}
}

// Xor returns the bitwise XOR of two Uint128s.
func (u Uint128) Xor(o Uint128) Uint128 {
	return Uint128{Hi: u.Hi ^ o.Hi, Lo: u.Lo ^ o.Lo}
}

// Not returns the bitwise complement.
func (u Uint128) Not() Uint128 {
	return Uint128{Hi: ^u.Hi, Lo: ^u.Lo}
}

// Lsh shifts u left by n bits. Shifting by 128 or more bits yields
// zero.
func (u Uint128) Lsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: u.Lo << (n - 64)}
	case n == 0:
		return u
	default:
		return Uint128{Hi: u.Hi<<n | u.Lo>>(64-n), Lo: u.Lo << n}
	}
}

// Rsh shifts u right by n bits. Shifting by 128 or more bits yields
// zero.
func (u Uint128) Rsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: u.Hi >> (n - 64)}
	case n == 0:
		return u
	default:
		return Uint128{Hi: u.Hi >> n, Lo: u.Lo>>n | u.Hi<<(64-n)}
	}
}

// Add returns a new Uint128 incremented by n.
func (u Uint128) Add(n uint64) Uint128 {
	lo := u.Lo + n
	hi := u.Hi
	if u.Lo > lo {
		hi++
	}
	return Uint128{Hi: hi, Lo: lo}
}

// Sub returns a new Uint128 decremented by n.
func (u Uint128) Sub(n uint64) Uint128 {
	lo := u.Lo - n
	hi := u.Hi
	if u.Lo < lo {
		hi--
	}
	return Uint128{Hi: hi, Lo: lo}
}

// FromBytes parses the big-endian byte representation back into a
// Uint128.
func FromBytes(b []byte) Uint128 {
	hi := binary.BigEndian.Uint64(b[:8])
	lo := binary.BigEndian.Uint64(b[8:])
	return Uint128{Hi: hi, Lo: lo}
}

// FromInts takes two unsigned 64-bit integers and constructs a
// Uint128.
func FromInts(hi uint64, lo uint64) Uint128 {
	return Uint128{Hi: hi, Lo: lo}
}

// FromString parses a hexadecimal string into a Uint128.
func FromString(s string) (Uint128, error) {
	if len(s) > 32 {
		return Uint128{}, errors.Errorf("input string %s too large for uint128", s)
	}
	var hi, lo uint64
	if len(s) > 16 {
		if _, err := fmt.Sscanf(s[:len(s)-16], "%x", &hi); err != nil {
			return Uint128{}, errors.Wrapf(err, "could not decode %s as uint128", s)
		}
		s = s[len(s)-16:]
	}
	if _, err := fmt.Sscanf(s, "%x", &lo); err != nil {
		return Uint128{}, errors.Wrapf(err, "could not decode %s as uint128", s)
	}
	return Uint128{Hi: hi, Lo: lo}, nil
}
