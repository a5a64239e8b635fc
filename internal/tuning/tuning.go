// Package tuning loads the generation parameters from tuning.yaml.
package tuning

import (
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"isoforge.dev/internal/gen"
	"isoforge.dev/internal/grid"
)

type Tuning struct {
	ShapeStartIndex int `yaml:"shape_start_index"`
	ChunkEdge       int `yaml:"chunk_edge"`
	ZstdLevel       int `yaml:"zstd_level"`

	Domain3 Domain `yaml:"domain3"`
	Domain2 Domain `yaml:"domain2"`
}

// Domain is an axis-aligned sampling region: min corner plus shape.
// Min and Shape carry 3 entries for domain3 and 2 for domain2.
type Domain struct {
	Min   []int `yaml:"min"`
	Shape []int `yaml:"shape"`
}

func Default() Tuning {
	return Tuning{
		ChunkEdge: 16,
		ZstdLevel: 3,
		Domain3:   Domain{Min: []int{-50, -50, -50}, Shape: []int{100, 100, 100}},
		Domain2:   Domain{Min: []int{-50, -50}, Shape: []int{100, 100}},
	}
}

func Load(path string) (Tuning, error) {
	t := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	if err := t.validate(); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	return t, nil
}

func (t Tuning) validate() error {
	if t.ChunkEdge <= 0 {
		return fmt.Errorf("chunk_edge must be positive, got %d", t.ChunkEdge)
	}
	if len(t.Domain3.Min) != 3 || len(t.Domain3.Shape) != 3 {
		return fmt.Errorf("domain3 needs 3 min and 3 shape entries")
	}
	if len(t.Domain2.Min) != 2 || len(t.Domain2.Shape) != 2 {
		return fmt.Errorf("domain2 needs 2 min and 2 shape entries")
	}
	for _, s := range append(append([]int{}, t.Domain3.Shape...), t.Domain2.Shape...) {
		if s <= 0 {
			return fmt.Errorf("domain shape entries must be positive, got %d", s)
		}
	}
	return nil
}

// GenConfig translates the tuning into the generator's configuration.
func (t Tuning) GenConfig() gen.Config {
	return gen.Config{
		Domain3: grid.NewExtent3i(
			grid.Point3i{X: t.Domain3.Min[0], Y: t.Domain3.Min[1], Z: t.Domain3.Min[2]},
			grid.Point3i{X: t.Domain3.Shape[0], Y: t.Domain3.Shape[1], Z: t.Domain3.Shape[2]},
		),
		Domain2: grid.NewExtent2i(
			grid.Point2i{X: t.Domain2.Min[0], Y: t.Domain2.Min[1]},
			grid.Point2i{X: t.Domain2.Shape[0], Y: t.Domain2.Shape[1]},
		),
		ChunkEdge: t.ChunkEdge,
		ZstdLevel: zstd.EncoderLevelFromZstd(t.ZstdLevel),
	}
}
