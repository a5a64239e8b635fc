package chunks

import "isoforge.dev/internal/grid"

// PaddedForSurfaceNets grows a chunk's native extent by one cell on every
// face. Surface nets inspects each cell's corner neighbors; without the
// border, surface crossings on chunk boundaries are missed and seams open
// between adjacent chunk meshes.
func PaddedForSurfaceNets(chunk grid.Extent3i) grid.Extent3i {
	return chunk.Padded(1)
}

// PaddedForHeightMap pads by one, grows the max corner by one more, then
// clips to the sampling domain. The triangulator stitches between adjacent
// height samples, so it needs one extra row and column past the surface
// nets case; the clip keeps ambient cells outside the domain from being
// triangulated. Asymmetric shrink at the domain boundary is intended --
// do not re-pad after clipping.
func PaddedForHeightMap(chunk, domain grid.Extent2i) grid.Extent2i {
	return chunk.Padded(1).AddToShape(grid.Uniform2i(1)).Intersection(domain)
}
