package gltf

import (
	"encoding/binary"
	"math"

	"corepulse-assetgen/internal/mesh"
)

// Layout records where each packed region landed inside the binary buffer.
// Lengths are pre-padding; offsets are 4-byte aligned.
type Layout struct {
	VertexOffset int
	VertexLength int // vertex count * 32
	IndexOffset  int
	IndexLength  int // index count * 2
	TotalLength  int // padded buffer size
}

// PackBuffer serializes the interleaved vertex region followed by the index
// region, both little-endian, zero-padding each region to the next 4-byte
// boundary. The returned layout feeds the bufferView/accessor records.
func PackBuffer(verts []mesh.Vertex, inds []uint16) ([]byte, Layout) {
	var lay Layout
	buf := make([]byte, 0, len(verts)*mesh.VertexStride+len(inds)*2+4)

	lay.VertexOffset = len(buf)
	for _, v := range verts {
		for _, f := range [mesh.VertexFloats]float32{
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.TexCoord[0], v.TexCoord[1],
		} {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
		}
	}
	lay.VertexLength = len(buf) - lay.VertexOffset
	buf = pad4(buf)

	lay.IndexOffset = len(buf)
	for _, idx := range inds {
		buf = binary.LittleEndian.AppendUint16(buf, idx)
	}
	lay.IndexLength = len(buf) - lay.IndexOffset
	buf = pad4(buf)

	lay.TotalLength = len(buf)
	return buf, lay
}

func pad4(buf []byte) []byte {
	for len(buf)%4 != 0 {
		buf = append(buf, 0)
	}
	return buf
}
