package field

import "fmt"

// Category splits shapes by the extraction scheme they need.
type Category int

const (
	CategorySdf Category = iota
	CategoryHeightMap
)

// Shape is a tagged variant over the known shapes. Exactly one of Sdf or
// HeightMap is meaningful, selected by Category.
type Shape struct {
	Category  Category
	Name      string
	Sdf       Sdf
	HeightMap HeightMap
}

// NumShapes is the size of the cycling shape list.
const NumShapes = 5

// ChooseShape maps an index in [0, NumShapes) to its shape. An out-of-range
// index is a programming error and panics.
func ChooseShape(index int) Shape {
	switch index {
	case 0:
		return Shape{Category: CategorySdf, Name: "cube", Sdf: Cube{HalfExtent: 35}}
	case 1:
		return Shape{Category: CategorySdf, Name: "plane", Sdf: Plane{Normal: [3]float32{0.5, 0.5, 0.5}, Thickness: 1}}
	case 2:
		return Shape{Category: CategorySdf, Name: "sphere", Sdf: Sphere{Radius: 35}}
	case 3:
		return Shape{Category: CategorySdf, Name: "torus", Sdf: Torus{MajorRadius: 35, MinorRadius: 10}}
	case 4:
		return Shape{Category: CategoryHeightMap, Name: "wave", HeightMap: HeightWave{}}
	default:
		panic(fmt.Sprintf("bad shape index: %d", index))
	}
}

// ShapeByName resolves a shape by its name, for CLI use.
func ShapeByName(name string) (Shape, bool) {
	for i := 0; i < NumShapes; i++ {
		s := ChooseShape(i)
		if s.Name == name {
			return s, true
		}
	}
	return Shape{}, false
}

// ShapeNames lists the cycling order, for CLI help text.
func ShapeNames() []string {
	names := make([]string, NumShapes)
	for i := 0; i < NumShapes; i++ {
		names[i] = ChooseShape(i).Name
	}
	return names
}
