package qlight

import "fmt"

// BinaryStringError reports a string that is not a binary number.
type BinaryStringError struct {
	Input string
}

func (e *BinaryStringError) Error() string {
	return fmt.Sprintf("expected a binary string, received %q", e.Input)
}

// PatternStringError reports a preparation pattern with characters outside
// the [01h] alphabet.
type PatternStringError struct {
	Input string
}

func (e *PatternStringError) Error() string {
	return fmt.Sprintf("expected a pattern over the 01h alphabet, received %q", e.Input)
}

// PatternLengthError reports a preparation pattern whose length does not
// match the register width.
type PatternLengthError struct {
	Length int
	Want   int
}

func (e *PatternLengthError) Error() string {
	return fmt.Sprintf("expected a pattern of length %d, received length %d", e.Want, e.Length)
}

// PowerOfTwoLengthError reports an amplitude vector whose length is not a
// power of two.
type PowerOfTwoLengthError struct {
	Length int
}

func (e *PowerOfTwoLengthError) Error() string {
	return fmt.Sprintf("expected a vector with a power-of-two length, received %d", e.Length)
}

// ZeroVectorError reports an amplitude vector with no normalization.
type ZeroVectorError struct{}

func (e *ZeroVectorError) Error() string {
	return "cannot normalize a zero vector"
}

// PositiveValueError reports a value that was expected to be positive.
type PositiveValueError struct {
	Value int
}

func (e *PositiveValueError) Error() string {
	return fmt.Sprintf("expected a positive value, received %d", e.Value)
}

// OutOfRangeError reports a bit or qubit position outside [0, Limit).
type OutOfRangeError struct {
	Value int
	Limit int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("position %d out of range [0, %d)", e.Value, e.Limit)
}

// OverlappingBitError reports a switch bit that is also a fixed bit.
type OverlappingBitError struct {
	Bit int
}

func (e *OverlappingBitError) Error() string {
	return fmt.Sprintf("switch bit %d overlaps a fixed bit", e.Bit)
}

// BitValueError reports a value outside the one-bit domain {0, 1}.
type BitValueError struct {
	Value int
}

func (e *BitValueError) Error() string {
	return fmt.Sprintf("expected a bit value of 0 or 1, received %d", e.Value)
}
