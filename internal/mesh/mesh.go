// Package mesh converts dense scalar sample arrays into triangle meshes.
// Volumetric arrays go through naive surface nets; heightfield arrays are
// triangulated directly between adjacent samples. Both write into caller
// owned buffers that are cleared, not reallocated, between extractions.
package mesh

// PosNormMesh is a triangle mesh with per-vertex normals. Positions and
// Normals are parallel; every index is a valid position index and the
// index count is a multiple of three.
type PosNormMesh struct {
	Positions [][3]float32
	Normals   [][3]float32
	Indices   []uint32
}

// Clear empties the mesh while keeping allocated capacity.
func (m *PosNormMesh) Clear() {
	m.Positions = m.Positions[:0]
	m.Normals = m.Normals[:0]
	m.Indices = m.Indices[:0]
}

func (m *PosNormMesh) IsEmpty() bool {
	return len(m.Indices) == 0
}

func (m *PosNormMesh) VertexCount() int {
	return len(m.Positions)
}

func (m *PosNormMesh) TriangleCount() int {
	return len(m.Indices) / 3
}
