// Package control provides the BSV blocking structure used to stream
// integers.
//
// BSV control blocks use a prefix coding scheme to indicate the type of the
// current byte (which then further indicates how many bytes the field
// contains). The intention is to minimize signaling overhead and pack as much
// data directly into the control block as possible.
//
// Control Block
//
// This diagram indicates the bits that are fixed (filled in) vs bits that are
// available for encoding data (blanks). Only the first byte is shown.
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type                |                                       |
//  |---------------|---------------||---------------------|---------------------------------------|
//  | 1 |                           || Data                | 2^7 = 128 values                      |
//  | 0 . 1 |                       || Data Size           | 1 to 64 bytes of data                 |
//  | 0 . 0 . 1 |                   || Data + 1            | 2^(5+8) = 8192 values                 |
//  | 0 . 0 . 0 . 1 |               || Data + 2            | 2^(4+8+8) = 1048576 values            |
//  | 0 . 0 . 0 . 0 . 1 |           || Data Size Size      | 1 to 8 size bytes, then the data      |
//  | 0 . 0 . 0 . 0 . 0 . 1 . 1 . 0 || Container Unbounded | fields until the matching end         |
//  | 0 . 0 . 0 . 0 . 0 . 1 . 0 . 0 || Container End       | closes the innermost container        |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 || Empty               | Empty value                           |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 || Null                | Null value (for nullable fields)      |
//  |---------------|---------------||---------------------|---------------------------------------|
//
// All sizes are indexed starting at 1 to maximize their effective range.
//
// Data blocks allow for 7 bits of data to be encoded directly into the block.
// A zigzag encoded integer between -63 and +63 fits a single byte.
//
// Data + 1 and Data + 2 blocks are two and three byte sequences whose leading
// bits share the control byte. They hold integers between -4095 and +4095 and
// between -524287 and +524287 respectively.
//
// Data Size blocks carry up to 64 bytes (integers of roughly 150 decimal
// digits). Larger values use Data Size Size blocks whose size field is itself
// sized by the low three bits of the control byte.
//
// Unbounded containers group a run of fields, for example a list of
// integers, and nest.
package control
