package chunks

import (
	"encoding/binary"
	"math"
)

// floorDiv rounds toward negative infinity so negative coordinates land in
// the right chunk. b must be positive.
func floorDiv(a, b int) int {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

func floatsToBytes(samples []float32) []byte {
	buf := make([]byte, 4*len(samples))
	for i, v := range samples {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return buf
}

func bytesToFloats(buf []byte) []float32 {
	samples := make([]float32, len(buf)/4)
	for i := range samples {
		samples[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[4*i:]))
	}
	return samples
}
