package mesh

import "github.com/go-gl/mathgl/mgl32"

// Builder accumulates cube sub-parts into one triangle mesh. It owns its
// growing vertex and index slices; callers chain AddCube calls and get the
// running vertex offset back, so compound shapes never share hidden state.
type Builder struct {
	vertices []Vertex
	indices  []uint16
}

func NewBuilder() *Builder {
	return &Builder{}
}

// UnitCube returns a builder holding the canonical cube.
func UnitCube() *Builder {
	b := NewBuilder()
	b.AddCube(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1})
	return b
}

// AddCube appends a copy of the canonical cube, scaled per-axis about its
// center and translated to center. Normals and UVs are copied as-is. Every
// appended index is shifted by the current vertex offset so sub-parts never
// alias each other. Returns the new vertex offset (old offset + 24).
func (b *Builder) AddCube(center, scale mgl32.Vec3) int {
	offset := uint16(len(b.vertices))
	for _, v := range unitCube {
		v.Position = mgl32.Vec3{
			v.Position[0]*scale[0] + center[0],
			v.Position[1]*scale[1] + center[1],
			v.Position[2]*scale[2] + center[2],
		}
		b.vertices = append(b.vertices, v)
	}
	for _, idx := range cubeIndices {
		b.indices = append(b.indices, idx+offset)
	}
	return len(b.vertices)
}

// ScaleUniform multiplies every accumulated position by s as a final pass.
// Normals are left untouched, which only holds up under uniform scaling;
// a non-uniform scale here would need an inverse-transpose on the normals.
func (b *Builder) ScaleUniform(s float32) {
	for i := range b.vertices {
		b.vertices[i].Position = b.vertices[i].Position.Mul(s)
	}
}

func (b *Builder) Vertices() []Vertex {
	return b.vertices
}

func (b *Builder) Indices() []uint16 {
	return b.indices
}

// Bounds returns the axis-aligned min/max over all vertex positions.
// An empty builder yields zero bounds.
func (b *Builder) Bounds() (min, max mgl32.Vec3) {
	if len(b.vertices) == 0 {
		return
	}
	min = b.vertices[0].Position
	max = min
	for _, v := range b.vertices[1:] {
		for axis := 0; axis < 3; axis++ {
			if v.Position[axis] < min[axis] {
				min[axis] = v.Position[axis]
			}
			if v.Position[axis] > max[axis] {
				max[axis] = v.Position[axis]
			}
		}
	}
	return
}
