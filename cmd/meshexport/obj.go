package main

import (
	"bufio"
	"fmt"
	"io"

	"isoforge.dev/internal/mesh"
)

// writeOBJ writes the meshes as one OBJ object per chunk. OBJ indices are
// 1-based and global across the file, so each mesh's faces are offset by
// the vertices written before it.
func writeOBJ(w io.Writer, meshes []*mesh.PosNormMesh) error {
	bw := bufio.NewWriter(w)
	offset := 1
	for n, m := range meshes {
		if _, err := fmt.Fprintf(bw, "o chunk_%d\n", n); err != nil {
			return err
		}
		for _, p := range m.Positions {
			if _, err := fmt.Fprintf(bw, "v %g %g %g\n", p[0], p[1], p[2]); err != nil {
				return err
			}
		}
		for _, nm := range m.Normals {
			if _, err := fmt.Fprintf(bw, "vn %g %g %g\n", nm[0], nm[1], nm[2]); err != nil {
				return err
			}
		}
		for i := 0; i+2 < len(m.Indices); i += 3 {
			a := int(m.Indices[i]) + offset
			b := int(m.Indices[i+1]) + offset
			c := int(m.Indices[i+2]) + offset
			if _, err := fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c); err != nil {
				return err
			}
		}
		offset += len(m.Positions)
	}
	return bw.Flush()
}
