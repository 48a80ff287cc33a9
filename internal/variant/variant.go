package variant

import (
	"sort"

	"gl-steps/internal/animation"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// ErrUnknownVariant is returned by Lookup for names that are not registered
var ErrUnknownVariant = errors.New("unknown variant")

// Geometry is a static vertex list with an optional index list
type Geometry struct {
	Vertices []float32
	Indices  []uint32
}

// Empty reports whether there is nothing to upload
func (g Geometry) Empty() bool {
	return len(g.Vertices) == 0
}

// Descriptor bundles everything that distinguishes one program variant from another
type Descriptor struct {
	Name string

	Geometry Geometry
	// Shader names the embedded shader pair; empty when nothing is drawn.
	Shader string

	Rules animation.Rules
	Model func(animation.State) mgl32.Mat4

	// Perspective variants write a projection uniform and need depth testing.
	Perspective bool
	DepthTest   bool

	ClearColor mgl32.Vec4
}

// Draws reports whether the variant renders geometry at all
func (d *Descriptor) Draws() bool {
	return d.Shader != "" && !d.Geometry.Empty()
}

var (
	triangleVertices = []float32{
		-1, -1, 0,
		1, -1, 0,
		0, 1, 0,
	}

	pyramidVertices = []float32{
		-1, -1, 0,
		0, -1, 1,
		1, -1, 0,
		0, 1, 0,
	}

	pyramidIndices = []uint32{
		0, 3, 1,
		1, 3, 2,
		2, 3, 0,
		0, 1, 2,
	}
)

var registry = map[string]*Descriptor{
	"clear": {
		Name:       "clear",
		Model:      StaticModel,
		ClearColor: mgl32.Vec4{1, 0, 0, 1},
	},
	"triangle": {
		Name:       "triangle",
		Geometry:   Geometry{Vertices: triangleVertices},
		Shader:     "flat",
		Model:      StaticModel,
		ClearColor: mgl32.Vec4{0, 0, 0, 1},
	},
	"moving": {
		Name:       "moving",
		Geometry:   Geometry{Vertices: triangleVertices},
		Shader:     "flat",
		Rules:      animation.Rules{Offset: true},
		Model:      MovingModel,
		ClearColor: mgl32.Vec4{0, 0, 0, 1},
	},
	"pyramid": {
		Name:        "pyramid",
		Geometry:    Geometry{Vertices: pyramidVertices, Indices: pyramidIndices},
		Shader:      "colour",
		Rules:       animation.Rules{Offset: true, Angle: true, Size: true},
		Model:       PyramidModel,
		Perspective: true,
		DepthTest:   true,
		ClearColor:  mgl32.Vec4{0, 0, 0, 1},
	},
}

// Lookup returns the descriptor registered under name
func Lookup(name string) (*Descriptor, error) {
	d, ok := registry[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownVariant, "%q", name)
	}
	return d, nil
}

// Names lists the registered variants in alphabetical order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StaticModel is the identity transform
func StaticModel(animation.State) mgl32.Mat4 {
	return mgl32.Ident4()
}

// MovingModel slides the triangle diagonally by the current offset
func MovingModel(s animation.State) mgl32.Mat4 {
	return mgl32.Translate3D(s.Offset, s.Offset, 0)
}

// PyramidModel pushes the pyramid into view, spins it around Y and scales
// it in X and Y. The product is applied right to left, so vertices are
// scaled first and translated last.
func PyramidModel(s animation.State) mgl32.Mat4 {
	return mgl32.Translate3D(0, 0, -2.5).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(s.Angle))).
		Mul4(mgl32.Scale3D(s.Size, s.Size, 1))
}
