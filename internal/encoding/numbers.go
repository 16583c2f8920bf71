package encoding

import "math"

// NBT numbers are fixed width and big-endian. The Append functions
// add the encoded bytes to dst and return the extended slice, the
// Decode functions expect b to hold at least the width of the type.

func AppendUint8(dst []byte, n uint8) []byte {
	return append(dst, n)
}

func AppendUint16(dst []byte, n uint16) []byte {
	return append(dst, byte(n>>8), byte(n))
}

func AppendUint32(dst []byte, n uint32) []byte {
	return append(
		dst,
		byte(n>>24),
		byte(n>>16),
		byte(n>>8),
		byte(n),
	)
}

func AppendUint64(dst []byte, n uint64) []byte {
	return append(
		dst,
		byte(n>>56),
		byte(n>>48),
		byte(n>>40),
		byte(n>>32),
		byte(n>>24),
		byte(n>>16),
		byte(n>>8),
		byte(n),
	)
}

func AppendInt8(dst []byte, n int8) []byte {
	return AppendUint8(dst, uint8(n))
}

func AppendInt16(dst []byte, n int16) []byte {
	return AppendUint16(dst, uint16(n))
}

func AppendInt32(dst []byte, n int32) []byte {
	return AppendUint32(dst, uint32(n))
}

func AppendInt64(dst []byte, n int64) []byte {
	return AppendUint64(dst, uint64(n))
}

// AppendFloat32 appends the IEEE-754 single precision bits of x.
func AppendFloat32(dst []byte, x float32) []byte {
	return AppendUint32(dst, math.Float32bits(x))
}

// AppendFloat64 appends the IEEE-754 double precision bits of x.
func AppendFloat64(dst []byte, x float64) []byte {
	return AppendUint64(dst, math.Float64bits(x))
}

func DecodeUint16(b []byte) uint16 {
	return (uint16(b[0]) << 8) | uint16(b[1])
}

func DecodeUint32(b []byte) uint32 {
	return (uint32(b[0]) << 24) |
		(uint32(b[1]) << 16) |
		(uint32(b[2]) << 8) |
		uint32(b[3])
}

func DecodeUint64(b []byte) uint64 {
	return (uint64(b[0]) << 56) |
		(uint64(b[1]) << 48) |
		(uint64(b[2]) << 40) |
		(uint64(b[3]) << 32) |
		(uint64(b[4]) << 24) |
		(uint64(b[5]) << 16) |
		(uint64(b[6]) << 8) |
		uint64(b[7])
}

func DecodeInt8(b []byte) int8 {
	return int8(b[0])
}

func DecodeInt16(b []byte) int16 {
	return int16(DecodeUint16(b))
}

func DecodeInt32(b []byte) int32 {
	return int32(DecodeUint32(b))
}

func DecodeInt64(b []byte) int64 {
	return int64(DecodeUint64(b))
}

func DecodeFloat32(b []byte) float32 {
	return math.Float32frombits(DecodeUint32(b))
}

func DecodeFloat64(b []byte) float64 {
	return math.Float64frombits(DecodeUint64(b))
}
