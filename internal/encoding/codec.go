// Package encoding packs mesh attribute arrays into compact strings for
// the JSON viewer protocol.
package encoding

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"math"
)

// EncodeVec3s encodes vertex attributes as base64(little-endian f32 triples).
func EncodeVec3s(vs [][3]float32) string {
	buf := make([]byte, 12*len(vs))
	for i, v := range vs {
		binary.LittleEndian.PutUint32(buf[12*i:], math.Float32bits(v[0]))
		binary.LittleEndian.PutUint32(buf[12*i+4:], math.Float32bits(v[1]))
		binary.LittleEndian.PutUint32(buf[12*i+8:], math.Float32bits(v[2]))
	}
	return base64.StdEncoding.EncodeToString(buf)
}

func DecodeVec3s(b64 string) ([][3]float32, error) {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, err
	}
	if len(raw)%12 != 0 {
		return nil, fmt.Errorf("vec3 payload length %d not a multiple of 12", len(raw))
	}
	out := make([][3]float32, len(raw)/12)
	for i := range out {
		out[i][0] = math.Float32frombits(binary.LittleEndian.Uint32(raw[12*i:]))
		out[i][1] = math.Float32frombits(binary.LittleEndian.Uint32(raw[12*i+4:]))
		out[i][2] = math.Float32frombits(binary.LittleEndian.Uint32(raw[12*i+8:]))
	}
	return out, nil
}

// EncodeIndices encodes triangle indices as base64(uvarints). Indices are
// small and repetitive, so varints beat fixed-width words.
func EncodeIndices(ids []uint32) string {
	var buf bytes.Buffer
	var tmp [binary.MaxVarintLen64]byte
	for _, v := range ids {
		n := binary.PutUvarint(tmp[:], uint64(v))
		buf.Write(tmp[:n])
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func DecodeIndices(b64 string) ([]uint32, error) {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, err
	}
	var out []uint32
	for i := 0; i < len(raw); {
		v, n := binary.Uvarint(raw[i:])
		if n <= 0 {
			return nil, fmt.Errorf("bad varint at %d", i)
		}
		if v > 0xFFFFFFFF {
			return nil, fmt.Errorf("index too large: %d", v)
		}
		i += n
		out = append(out, uint32(v))
	}
	return out, nil
}
