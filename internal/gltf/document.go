package gltf

import (
	"corepulse-assetgen/internal/mesh"
)

// Model bundles everything needed to emit one .gltf/.bin pair.
type Model struct {
	Name      string // used for mesh and buffer names
	SceneName string // defaults to Name + " Scene"
	NodeName  string // defaults to Name
	NodeScale [3]float32
	Generator string
	BinURI    string
	Material  Material
	Geometry  *mesh.Builder

	Extensions *Extensions
}

// BuildDocument assembles the scene description and packed binary buffer
// for m: one scene, one node, one mesh with a single primitive, one
// material, two buffer views and four accessors over the packed buffer.
func BuildDocument(m Model) (Document, []byte) {
	verts := m.Geometry.Vertices()
	inds := m.Geometry.Indices()
	data, lay := PackBuffer(verts, inds)
	bmin, bmax := m.Geometry.Bounds()

	sceneName := m.SceneName
	if sceneName == "" {
		sceneName = m.Name + " Scene"
	}
	nodeName := m.NodeName
	if nodeName == "" {
		nodeName = m.Name
	}
	nodeScale := m.NodeScale
	if nodeScale == ([3]float32{}) {
		nodeScale = [3]float32{1, 1, 1}
	}

	meshIndex := 0
	indicesAccessor := 3
	materialIndex := 0

	doc := Document{
		Asset: Asset{Version: "2.0", Generator: m.Generator},
		Scene: 0,
		Scenes: []Scene{
			{Name: sceneName, Nodes: []int{0}},
		},
		Nodes: []Node{
			{
				Name:        nodeName,
				Mesh:        &meshIndex,
				Translation: &[3]float32{0, 0, 0},
				Rotation:    &[4]float32{0, 0, 0, 1},
				Scale:       &nodeScale,
			},
		},
		Meshes: []Mesh{
			{
				Name: m.Name + " Mesh",
				Primitives: []Primitive{
					{
						Attributes: map[string]int{
							"POSITION":   0,
							"NORMAL":     1,
							"TEXCOORD_0": 2,
						},
						Indices:  &indicesAccessor,
						Material: &materialIndex,
					},
				},
			},
		},
		Materials: []Material{m.Material},
		Accessors: []Accessor{
			{
				Name:          "Position Accessor",
				BufferView:    0,
				ByteOffset:    0,
				ComponentType: ComponentFloat,
				Count:         len(verts),
				Type:          "VEC3",
				Min:           []float32{bmin[0], bmin[1], bmin[2]},
				Max:           []float32{bmax[0], bmax[1], bmax[2]},
			},
			{
				Name:          "Normal Accessor",
				BufferView:    0,
				ByteOffset:    12, // 3 * sizeof(float)
				ComponentType: ComponentFloat,
				Count:         len(verts),
				Type:          "VEC3",
			},
			{
				Name:          "TexCoord Accessor",
				BufferView:    0,
				ByteOffset:    24, // 6 * sizeof(float)
				ComponentType: ComponentFloat,
				Count:         len(verts),
				Type:          "VEC2",
			},
			{
				Name:          "Index Accessor",
				BufferView:    1,
				ByteOffset:    0,
				ComponentType: ComponentUnsignedShort,
				Count:         len(inds),
				Type:          "SCALAR",
			},
		},
		BufferViews: []BufferView{
			{
				Name:       "Vertex Buffer View",
				Buffer:     0,
				ByteOffset: lay.VertexOffset,
				ByteLength: lay.VertexLength,
				ByteStride: mesh.VertexStride,
				Target:     TargetArrayBuffer,
			},
			{
				Name:       "Index Buffer View",
				Buffer:     0,
				ByteOffset: lay.IndexOffset,
				ByteLength: lay.IndexLength,
				Target:     TargetElementArrayBuffer,
			},
		},
		Buffers: []Buffer{
			{
				Name:       m.Name + " Buffer",
				URI:        m.BinURI,
				ByteLength: lay.TotalLength,
			},
		},
	}

	if m.Extensions != nil {
		doc.Extensions = m.Extensions
		doc.ExtensionsUsed = m.Extensions.Names()
	}

	return doc, data
}
