// Package protocol defines the JSON messages between the generation server
// and viewer clients. Mesh attribute payloads are packed by
// isoforge.dev/internal/encoding; everything else is plain JSON.
package protocol

import "encoding/json"

const Version = "1.0"

// Message types.
const (
	TypeHello   = "HELLO"
	TypeWelcome = "WELCOME"
	TypeShape   = "SHAPE"
	TypeMeshes  = "MESHES"
	TypeError   = "ERROR"
)

// Shape actions a viewer may request.
const (
	ShapeActionNext = "next"
	ShapeActionPrev = "prev"
)

// BaseMessage lets us route unknown JSON messages by type.
type BaseMessage struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version,omitempty"`
}

func DecodeBase(b []byte) (BaseMessage, error) {
	var m BaseMessage
	err := json.Unmarshal(b, &m)
	return m, err
}
