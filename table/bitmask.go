package table

import (
	"fmt"
	"math/bits"
)

// MaxComponentTypes is the number of component types a Table can hold,
// one bit in a Bitmask per type.
const MaxComponentTypes = 128

// Bitmask is a set of component bits. Bit k is set if the component
// registered at position k is present.
type Bitmask [2]uint64

// BitmaskOfBit returns a Bitmask with only the given bit set.
func BitmaskOfBit(bit int) Bitmask {
	var m Bitmask
	m.Set(bit)
	return m
}

func (m *Bitmask) Set(bit int) {
	m[bit>>6] |= 1 << (bit & 63)
}

func (m *Bitmask) Clear(bit int) {
	m[bit>>6] &^= 1 << (bit & 63)
}

func (m Bitmask) Has(bit int) bool {
	return m[bit>>6]&(1<<(bit&63)) != 0
}

func (m Bitmask) Or(other Bitmask) Bitmask {
	return Bitmask{m[0] | other[0], m[1] | other[1]}
}

func (m Bitmask) And(other Bitmask) Bitmask {
	return Bitmask{m[0] & other[0], m[1] & other[1]}
}

func (m Bitmask) IsZero() bool {
	return m[0] == 0 && m[1] == 0
}

func (m Bitmask) Count() int {
	return bits.OnesCount64(m[0]) + bits.OnesCount64(m[1])
}

// Matches returns true if every bit of include and none of the bits
// of exclude are set in m.
func (m Bitmask) Matches(include, exclude Bitmask) bool {
	return m.And(include.Or(exclude)) == include
}

func (m Bitmask) String() string {
	return fmt.Sprintf("%064b%064b", m[1], m[0])
}
