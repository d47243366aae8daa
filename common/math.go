package common

import (
	"encoding/binary"
	"math"
)

// Float32Size is the size in bytes of a single float32 as laid out in GPU buffers.
const Float32Size = 4

// Float32sToBytes encodes a float32 slice into a freshly allocated little-endian byte slice
// suitable for GPU buffer uploads. Unlike a reinterpreting view, the result never aliases the input.
//
// Parameters:
//   - data: source values
//
// Returns:
//   - []byte: encoded bytes (len(data)*4), or nil if data is empty
func Float32sToBytes(data []float32) []byte {
	if len(data) == 0 {
		return nil
	}
	buf := make([]byte, len(data)*Float32Size)
	PutFloat32s(buf, data)
	return buf
}

// PutFloat32s encodes data into dst in little-endian order. dst must hold at least len(data)*4 bytes.
//
// Parameters:
//   - dst: destination byte slice
//   - data: source values
func PutFloat32s(dst []byte, data []float32) {
	for i, v := range data {
		binary.LittleEndian.PutUint32(dst[i*Float32Size:], math.Float32bits(v))
	}
}

// BytesToFloat32s decodes little-endian float32 values from b. Trailing bytes that do not
// form a whole float are ignored.
//
// Parameters:
//   - b: encoded bytes
//
// Returns:
//   - []float32: decoded values
func BytesToFloat32s(b []byte) []float32 {
	out := make([]float32, len(b)/Float32Size)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*Float32Size:]))
	}
	return out
}

// DegToRad converts an angle in degrees to radians.
//
// Parameters:
//   - deg: angle in degrees
//
// Returns:
//   - float32: angle in radians
func DegToRad(deg float32) float32 {
	return float32(float64(deg) * math.Pi / 180.0)
}

// RadToDeg converts an angle in radians to degrees.
//
// Parameters:
//   - rad: angle in radians
//
// Returns:
//   - float32: angle in degrees
func RadToDeg(rad float32) float32 {
	return float32(float64(rad) * 180.0 / math.Pi)
}
