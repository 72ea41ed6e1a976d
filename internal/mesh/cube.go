package mesh

import "github.com/go-gl/mathgl/mgl32"

// Vertex is the interleaved layout the engine loader consumes: position,
// normal, texcoord — 8 floats, 32 bytes.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
}

const (
	VertexFloats = 8
	VertexStride = 32

	CubeVertexCount = 24
	CubeIndexCount  = 36
)

// unitCube spans [-1, 1] on every axis, 4 vertices per face so each face
// keeps its own flat normal and UV quad.
var unitCube = [CubeVertexCount]Vertex{
	// Front face
	{Position: mgl32.Vec3{-1, -1, 1}, Normal: mgl32.Vec3{0, 0, 1}, TexCoord: mgl32.Vec2{0, 0}},
	{Position: mgl32.Vec3{1, -1, 1}, Normal: mgl32.Vec3{0, 0, 1}, TexCoord: mgl32.Vec2{1, 0}},
	{Position: mgl32.Vec3{1, 1, 1}, Normal: mgl32.Vec3{0, 0, 1}, TexCoord: mgl32.Vec2{1, 1}},
	{Position: mgl32.Vec3{-1, 1, 1}, Normal: mgl32.Vec3{0, 0, 1}, TexCoord: mgl32.Vec2{0, 1}},
	// Back face
	{Position: mgl32.Vec3{-1, -1, -1}, Normal: mgl32.Vec3{0, 0, -1}, TexCoord: mgl32.Vec2{1, 0}},
	{Position: mgl32.Vec3{-1, 1, -1}, Normal: mgl32.Vec3{0, 0, -1}, TexCoord: mgl32.Vec2{1, 1}},
	{Position: mgl32.Vec3{1, 1, -1}, Normal: mgl32.Vec3{0, 0, -1}, TexCoord: mgl32.Vec2{0, 1}},
	{Position: mgl32.Vec3{1, -1, -1}, Normal: mgl32.Vec3{0, 0, -1}, TexCoord: mgl32.Vec2{0, 0}},
	// Top face
	{Position: mgl32.Vec3{-1, 1, -1}, Normal: mgl32.Vec3{0, 1, 0}, TexCoord: mgl32.Vec2{0, 1}},
	{Position: mgl32.Vec3{-1, 1, 1}, Normal: mgl32.Vec3{0, 1, 0}, TexCoord: mgl32.Vec2{0, 0}},
	{Position: mgl32.Vec3{1, 1, 1}, Normal: mgl32.Vec3{0, 1, 0}, TexCoord: mgl32.Vec2{1, 0}},
	{Position: mgl32.Vec3{1, 1, -1}, Normal: mgl32.Vec3{0, 1, 0}, TexCoord: mgl32.Vec2{1, 1}},
	// Bottom face
	{Position: mgl32.Vec3{-1, -1, -1}, Normal: mgl32.Vec3{0, -1, 0}, TexCoord: mgl32.Vec2{1, 1}},
	{Position: mgl32.Vec3{1, -1, -1}, Normal: mgl32.Vec3{0, -1, 0}, TexCoord: mgl32.Vec2{0, 1}},
	{Position: mgl32.Vec3{1, -1, 1}, Normal: mgl32.Vec3{0, -1, 0}, TexCoord: mgl32.Vec2{0, 0}},
	{Position: mgl32.Vec3{-1, -1, 1}, Normal: mgl32.Vec3{0, -1, 0}, TexCoord: mgl32.Vec2{1, 0}},
	// Right face
	{Position: mgl32.Vec3{1, -1, -1}, Normal: mgl32.Vec3{1, 0, 0}, TexCoord: mgl32.Vec2{1, 0}},
	{Position: mgl32.Vec3{1, 1, -1}, Normal: mgl32.Vec3{1, 0, 0}, TexCoord: mgl32.Vec2{1, 1}},
	{Position: mgl32.Vec3{1, 1, 1}, Normal: mgl32.Vec3{1, 0, 0}, TexCoord: mgl32.Vec2{0, 1}},
	{Position: mgl32.Vec3{1, -1, 1}, Normal: mgl32.Vec3{1, 0, 0}, TexCoord: mgl32.Vec2{0, 0}},
	// Left face
	{Position: mgl32.Vec3{-1, -1, -1}, Normal: mgl32.Vec3{-1, 0, 0}, TexCoord: mgl32.Vec2{0, 0}},
	{Position: mgl32.Vec3{-1, -1, 1}, Normal: mgl32.Vec3{-1, 0, 0}, TexCoord: mgl32.Vec2{1, 0}},
	{Position: mgl32.Vec3{-1, 1, 1}, Normal: mgl32.Vec3{-1, 0, 0}, TexCoord: mgl32.Vec2{1, 1}},
	{Position: mgl32.Vec3{-1, 1, -1}, Normal: mgl32.Vec3{-1, 0, 0}, TexCoord: mgl32.Vec2{0, 1}},
}

// cubeIndices lists 12 triangles, two per face, wound to face outward.
var cubeIndices = [CubeIndexCount]uint16{
	0, 1, 2, 2, 3, 0, // front
	4, 5, 6, 6, 7, 4, // back
	8, 9, 10, 10, 11, 8, // top
	12, 13, 14, 14, 15, 12, // bottom
	16, 17, 18, 18, 19, 16, // right
	20, 21, 22, 22, 23, 20, // left
}
