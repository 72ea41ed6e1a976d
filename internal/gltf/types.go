// Package gltf builds glTF 2.0 documents and their binary buffers for the
// generated test models. Only the subset of the schema the engine loader
// reads is modeled here.
package gltf

// Component types and buffer-view targets from the glTF 2.0 specification.
const (
	ComponentFloat         = 5126
	ComponentUnsignedShort = 5123

	TargetArrayBuffer        = 34962
	TargetElementArrayBuffer = 34963
)

// Document is the glTF top-level object. Field order follows the layout the
// engine's fixtures have always used.
type Document struct {
	Asset          Asset        `json:"asset"`
	Scene          int          `json:"scene"`
	Scenes         []Scene      `json:"scenes"`
	Nodes          []Node       `json:"nodes"`
	Meshes         []Mesh       `json:"meshes"`
	Materials      []Material   `json:"materials"`
	Accessors      []Accessor   `json:"accessors"`
	BufferViews    []BufferView `json:"bufferViews"`
	Buffers        []Buffer     `json:"buffers"`
	Extensions     *Extensions  `json:"extensions,omitempty"`
	ExtensionsUsed []string     `json:"extensionsUsed,omitempty"`
}

type Asset struct {
	Version   string `json:"version"`
	Generator string `json:"generator,omitempty"`
}

type Scene struct {
	Name  string `json:"name,omitempty"`
	Nodes []int  `json:"nodes"`
}

type Node struct {
	Name        string      `json:"name,omitempty"`
	Mesh        *int        `json:"mesh,omitempty"`
	Translation *[3]float32 `json:"translation,omitempty"`
	Rotation    *[4]float32 `json:"rotation,omitempty"`
	Scale       *[3]float32 `json:"scale,omitempty"`
}

type Mesh struct {
	Name       string      `json:"name,omitempty"`
	Primitives []Primitive `json:"primitives"`
}

type Primitive struct {
	Attributes map[string]int `json:"attributes"`
	Indices    *int           `json:"indices,omitempty"`
	Material   *int           `json:"material,omitempty"`
}

type Material struct {
	Name                 string                `json:"name,omitempty"`
	PBRMetallicRoughness *PBRMetallicRoughness `json:"pbrMetallicRoughness,omitempty"`
}

type PBRMetallicRoughness struct {
	BaseColorFactor [4]float32 `json:"baseColorFactor"`
	MetallicFactor  float32    `json:"metallicFactor"`
	RoughnessFactor float32    `json:"roughnessFactor"`
}

type Accessor struct {
	Name          string    `json:"name,omitempty"`
	BufferView    int       `json:"bufferView"`
	ByteOffset    int       `json:"byteOffset"`
	ComponentType int       `json:"componentType"`
	Count         int       `json:"count"`
	Type          string    `json:"type"`
	Min           []float32 `json:"min,omitempty"`
	Max           []float32 `json:"max,omitempty"`
}

type BufferView struct {
	Name       string `json:"name,omitempty"`
	Buffer     int    `json:"buffer"`
	ByteOffset int    `json:"byteOffset"`
	ByteLength int    `json:"byteLength"`
	ByteStride int    `json:"byteStride,omitempty"`
	Target     int    `json:"target,omitempty"`
}

type Buffer struct {
	Name       string `json:"name,omitempty"`
	URI        string `json:"uri,omitempty"`
	ByteLength int    `json:"byteLength"`
}
