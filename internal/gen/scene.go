package gen

import "isoforge.dev/internal/mesh"

// Handle identifies a mesh owned by a Scene.
type Handle uint64

// Scene is the rendering collaborator. CreateMesh is handed the
// generator's shared buffer mesh, which is reused for the next chunk as
// soon as the call returns; implementations must copy what they keep.
type Scene interface {
	CreateMesh(m *mesh.PosNormMesh) Handle
	DestroyMesh(h Handle)
}

// Collector is an in-memory Scene holding deep copies of created meshes.
// It backs the viewer transport and the offline exporter, and doubles as
// the test scene.
type Collector struct {
	next   Handle
	order  []Handle
	meshes map[Handle]*mesh.PosNormMesh
}

func NewCollector() *Collector {
	return &Collector{meshes: map[Handle]*mesh.PosNormMesh{}}
}

func (c *Collector) CreateMesh(m *mesh.PosNormMesh) Handle {
	c.next++
	h := c.next
	cp := &mesh.PosNormMesh{
		Positions: append([][3]float32(nil), m.Positions...),
		Normals:   append([][3]float32(nil), m.Normals...),
		Indices:   append([]uint32(nil), m.Indices...),
	}
	c.meshes[h] = cp
	c.order = append(c.order, h)
	return h
}

func (c *Collector) DestroyMesh(h Handle) {
	delete(c.meshes, h)
	for i, o := range c.order {
		if o == h {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Meshes returns the live meshes in creation order.
func (c *Collector) Meshes() []*mesh.PosNormMesh {
	out := make([]*mesh.PosNormMesh, 0, len(c.order))
	for _, h := range c.order {
		out = append(out, c.meshes[h])
	}
	return out
}

func (c *Collector) Len() int { return len(c.meshes) }
