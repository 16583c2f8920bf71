// Package encoding provides the low level primitives of the NBT wire format:
// big-endian fixed width numbers, length-prefixed modified UTF-8 strings
// and the varints stored inside some byte arrays.
//
// Encoding functions follow the append convention: they take a destination
// buffer and return it extended, which lets the encoder build a whole
// document in a single reusable buffer.
package encoding
