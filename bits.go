package qlight

import (
	"math/bits"
	"regexp"
	"strconv"
)

var binaryRegexp = regexp.MustCompile(`^[01]+$`)

// IndexPair couples a basis-state index that has the switch bit cleared
// with its sibling index that has the switch bit set. All other bits of
// the two indices are equal.
type IndexPair struct {
	Zero int
	One  int
}

// bitmask builds the mask with the given big-endian bit positions set.
func bitmask(nBits int, positions []int) (int, error) {
	mask := 0
	for _, p := range positions {
		if p < 0 || p >= nBits {
			return 0, &OutOfRangeError{Value: p, Limit: nBits}
		}
		mask |= 1 << (nBits - p - 1)
	}
	return mask, nil
}

// EnumerateFixed produces, in ascending order, every index in
// [0, 2^nBits) whose bits at the fixed big-endian positions are all 1.
// The remaining bits range over every combination, so the result holds
// 2^(nBits-len(fixed)) indices.
//
// Rather than scanning all 2^nBits values and testing each against the
// mask, the walk jumps from one valid index straight to the next: the OR
// with the mask after the increment re-pins the fixed bits and carries
// over the free bits in between.
func EnumerateFixed(nBits int, fixed []int) ([]int, error) {
	if nBits <= 0 {
		return nil, &PositiveValueError{Value: nBits}
	}
	mask, err := bitmask(nBits, fixed)
	if err != nil {
		return nil, err
	}
	size := 1 << nBits
	out := make([]int, 0, size>>len(fixed))
	for i := mask; i < size; i = (i + 1) | mask {
		out = append(out, i)
	}
	return out, nil
}

// EnumerateFixedPairs produces, in ascending order of the switch-bit-set
// index, every pair of indices that have all fixed bits set and differ
// only in the switch bit. These are exactly the amplitude slots a
// controlled-NOT family operator must exchange.
//
// The switch bit must not be one of the fixed bits; an overlapping switch
// bit would pair indices with themselves.
func EnumerateFixedPairs(nBits int, fixed []int, switchBit int) ([]IndexPair, error) {
	if nBits <= 0 {
		return nil, &PositiveValueError{Value: nBits}
	}
	if switchBit < 0 || switchBit >= nBits {
		return nil, &OutOfRangeError{Value: switchBit, Limit: nBits}
	}
	for _, f := range fixed {
		if f == switchBit {
			return nil, &OverlappingBitError{Bit: switchBit}
		}
	}
	fixedMask, err := bitmask(nBits, fixed)
	if err != nil {
		return nil, err
	}
	switchMask := 1 << (nBits - switchBit - 1)
	mask := fixedMask | switchMask
	size := 1 << nBits
	pairs := make([]IndexPair, 0, size>>(len(fixed)+1))
	for i := mask; i < size; i = (i + 1) | mask {
		pairs = append(pairs, IndexPair{Zero: i &^ switchMask, One: i})
	}
	return pairs, nil
}

// ExtractBits builds a new integer by concatenating the bits of number at
// the given positions, most significant first. Positions are big-endian
// relative to number's own bit length, so position 0 is number's leading
// 1 bit. Positions past the end of the number read as 0.
func ExtractBits(number int, positions ...int) int {
	n := bits.Len(uint(number))
	out := 0
	for _, p := range positions {
		bit := 0
		if shift := n - p - 1; shift >= 0 {
			bit = (number >> shift) & 1
		}
		out = out<<1 | bit
	}
	return out
}

// extractBitsWidth is ExtractBits against an explicit register width, so
// that indices with leading zeros keep their positional meaning. The
// positions must already be validated against the width.
func extractBitsWidth(number, width int, positions []int) int {
	out := 0
	for _, p := range positions {
		out = out<<1 | (number>>(width-p-1))&1
	}
	return out
}

// BitstringToInt parses the binary digits of bitstring in [start, end)
// into an integer. A negative end means the end of the string.
func BitstringToInt(bitstring string, start, end int) (int, error) {
	if !binaryRegexp.MatchString(bitstring) {
		return 0, &BinaryStringError{Input: bitstring}
	}
	if end < 0 {
		end = len(bitstring)
	}
	if start < 0 || start >= end || end > len(bitstring) {
		return 0, &OutOfRangeError{Value: start, Limit: len(bitstring)}
	}
	v, err := strconv.ParseUint(bitstring[start:end], 2, 63)
	if err != nil {
		return 0, &BinaryStringError{Input: bitstring}
	}
	return int(v), nil
}

// bitLen1 is the bit length of v, treating 0 as one bit wide.
func bitLen1(v int) int {
	if v == 0 {
		return 1
	}
	return bits.Len(uint(v))
}
