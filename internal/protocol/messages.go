package protocol

import (
	"isoforge.dev/internal/encoding"
	"isoforge.dev/internal/mesh"
)

// HELLO (client -> server)
type HelloMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	ClientName      string `json:"client_name,omitempty"`
}

// WELCOME (server -> client)
type WelcomeMsg struct {
	Type            string   `json:"type"`
	ProtocolVersion string   `json:"protocol_version"`
	ShapeNames      []string `json:"shape_names"`
	ChunkEdge       int      `json:"chunk_edge"`
}

// SHAPE (client -> server): cycle the generated shape.
type ShapeMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	Action          string `json:"action"` // "next" or "prev"
}

// MESHES (server -> client): the full set of live chunk meshes after a
// regeneration. Replaces whatever the client holds.
type MeshesMsg struct {
	Type            string     `json:"type"`
	ProtocolVersion string     `json:"protocol_version"`
	Shape           string     `json:"shape"`
	ShapeIndex      int        `json:"shape_index"`
	Meshes          []MeshWire `json:"meshes"`
}

// MeshWire is one chunk mesh with packed attribute arrays.
type MeshWire struct {
	Positions string `json:"positions"` // base64 LE f32 triples
	Normals   string `json:"normals"`   // base64 LE f32 triples
	Indices   string `json:"indices"`   // base64 uvarints
	Vertices  int    `json:"vertices"`
	Triangles int    `json:"triangles"`
}

// ERROR (server -> client)
type ErrorMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	Message         string `json:"message"`
}

// WireMesh packs a mesh for transport.
func WireMesh(m *mesh.PosNormMesh) MeshWire {
	return MeshWire{
		Positions: encoding.EncodeVec3s(m.Positions),
		Normals:   encoding.EncodeVec3s(m.Normals),
		Indices:   encoding.EncodeIndices(m.Indices),
		Vertices:  m.VertexCount(),
		Triangles: m.TriangleCount(),
	}
}

// UnwireMesh unpacks a wire mesh; used by viewer-side tooling and tests.
func UnwireMesh(w MeshWire) (*mesh.PosNormMesh, error) {
	pos, err := encoding.DecodeVec3s(w.Positions)
	if err != nil {
		return nil, err
	}
	norm, err := encoding.DecodeVec3s(w.Normals)
	if err != nil {
		return nil, err
	}
	ids, err := encoding.DecodeIndices(w.Indices)
	if err != nil {
		return nil, err
	}
	return &mesh.PosNormMesh{Positions: pos, Normals: norm, Indices: ids}, nil
}
