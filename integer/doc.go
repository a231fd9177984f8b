// Package integer provides an arbitrary precision signed integer stored as
// decimal digits.
//
// An Int keeps one decimal digit per byte, least significant digit first,
// together with a sign flag:
//
//  12345 => neg=false abs=[5 4 3 2 1]
//  -7    => neg=true  abs=[7]
//  0     => neg=false abs=[0]
//
// The length of the digit slice is the number of significant digits and its
// capacity is the allocated storage. Results are always normalized: there are
// no leading zero digits (other than the single digit of zero) and zero is
// never negative. The zero value of Int is 0.
//
// Values
//
// Operations never modify their operands. Every arithmetic method returns a
// freshly allocated Int that owns its digits:
//
//  a := integer.MustParse("12345678901234567890")
//  b := a.Add(integer.New(12345))   // 12345678901234580235
//  c := integer.New(1000).Mul(a)    // 12345678901234567890000
//
// Native integers of any width take part in arithmetic through New, which
// sizes the digit store from the width of the type:
//
//  | width | digits |
//  |-------|--------|
//  | 1     | 3      |
//  | 2     | 5      |
//  | 3     | 8      |
//  | 4     | 10     |
//  | 5     | 13     |
//  | 6     | 15     |
//  | 7     | 17     |
//  | 8     | 20     |
//
// Division
//
// Quo, Rem and QuoRem implement schoolbook long division between two Ints.
// QuoNative, RemNative and QuoRemNative divide by a native integer in a
// single pass over the digits and should be preferred whenever the divisor
// fits a machine word. Quotients truncate toward zero and remainders take the
// sign of the dividend, so that
//
//  q*d + r == x
//
// holds for every non-zero divisor d. Division by zero returns
// ErrDivisionByZero.
//
// Powers of ten
//
// Shift multiplies (n > 0) or truncating-divides (n < 0) by 10^n by moving
// digits in bulk. Division by a power of ten and Pow with base 10 use it.
//
// Encoding
//
// The binary form matches the BSV integer layout: the big-endian magnitude
// shifted left by one bit with the sign in the lowest bit. Encoder and
// Decoder stream integers through control blocks.
package integer
