package assets

import (
	"path/filepath"

	"corepulse-assetgen/internal/gltf"
	"corepulse-assetgen/internal/mesh"
	"corepulse-assetgen/internal/walker"
)

// WriteCube emits the basic cube test model (cube.gltf + cube.bin) into dir.
func WriteCube(dir string) error {
	doc, data := gltf.BuildDocument(gltf.Model{
		Name:      "Cube",
		SceneName: "Test Scene",
		Generator: "CorePulse Test Generator",
		BinURI:    "cube.bin",
		Material: gltf.Material{
			Name: "Default Material",
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: [4]float32{0.8, 0.2, 0.2, 1.0},
				MetallicFactor:  0.1,
				RoughnessFactor: 0.8,
			},
		},
		Geometry: mesh.UnitCube(),
	})
	return gltf.Write(filepath.Join(dir, "cube.gltf"), doc, filepath.Join(dir, "cube.bin"), data)
}

// WriteWalker emits one mech variant into dir, with hardpoint and
// damage-zone extension blocks attached at the document top level.
func WriteWalker(dir string, c walker.Class) error {
	slug := walker.Slug(c.Name)
	doc, data := gltf.BuildDocument(gltf.Model{
		Name:      c.Name,
		Generator: "CorePulse Mech Generator",
		BinURI:    slug + ".bin",
		Material: gltf.Material{
			Name: c.Name + " Material",
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: c.Color,
				MetallicFactor:  0.3,
				RoughnessFactor: 0.7,
			},
		},
		Geometry: walker.BuildMesh(c),
		Extensions: &gltf.Extensions{
			WalkerHardpoints: walker.Hardpoints(c),
			DamageZones:      walker.DamageZones(c),
		},
	})
	return gltf.Write(filepath.Join(dir, slug+".gltf"), doc, filepath.Join(dir, slug+".bin"), data)
}

// WriteWeapon emits the weapon test model into dir: the cube geometry
// re-dressed with a metallic material and an elongated node scale.
func WriteWeapon(dir string) error {
	doc, data := gltf.BuildDocument(gltf.Model{
		Name:      "Cube",
		SceneName: "Test Scene",
		NodeName:  "Laser Cannon",
		NodeScale: [3]float32{3.0, 0.3, 0.3}, // long and thin
		Generator: "CorePulse Test Generator",
		BinURI:    "laser_cannon.bin",
		Material: gltf.Material{
			Name: "Weapon Material",
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: [4]float32{0.6, 0.6, 0.6, 1.0},
				MetallicFactor:  0.8,
				RoughnessFactor: 0.8,
			},
		},
		Geometry: mesh.UnitCube(),
	})
	return gltf.Write(filepath.Join(dir, "laser_cannon.gltf"), doc, filepath.Join(dir, "laser_cannon.bin"), data)
}
