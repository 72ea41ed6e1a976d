// Package walker composes the test mech models: a blocky silhouette built
// from positioned cubes, plus the hardpoint and damage-zone metadata the
// engine reads from the vendor extensions.
package walker

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"corepulse-assetgen/internal/gltf"
	"corepulse-assetgen/internal/mesh"
)

// Class describes one generated walker variant.
type Class struct {
	Name  string
	Color [4]float32 // material base color, RGBA
	Scale float32    // uniform silhouette scale
}

// Classes are the stock test variants.
var Classes = []Class{
	{Name: "Light Mech", Color: [4]float32{0.2, 0.8, 0.2, 1.0}, Scale: 0.8},
	{Name: "Medium Mech", Color: [4]float32{0.2, 0.2, 0.8, 1.0}, Scale: 1.0},
	{Name: "Heavy Mech", Color: [4]float32{0.8, 0.2, 0.2, 1.0}, Scale: 1.3},
}

// Slug converts a display name into the file/id-safe identifier used for
// output filenames and extension record IDs.
func Slug(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}

// BuildMesh composes the walker silhouette from four cube sub-parts, then
// applies the class scale as a final uniform pass over positions.
func BuildMesh(c Class) *mesh.Builder {
	b := mesh.NewBuilder()
	b.AddCube(mgl32.Vec3{0, 2, 0}, mgl32.Vec3{1.5, 2, 1})         // torso
	b.AddCube(mgl32.Vec3{-0.8, -1, 0}, mgl32.Vec3{0.6, 2, 0.6})   // left leg
	b.AddCube(mgl32.Vec3{0.8, -1, 0}, mgl32.Vec3{0.6, 2, 0.6})    // right leg
	b.AddCube(mgl32.Vec3{0, 4.5, 0.3}, mgl32.Vec3{0.8, 0.8, 0.8}) // head
	if c.Scale != 1 {
		b.ScaleUniform(c.Scale)
	}
	return b
}

// Hardpoints returns the weapon mounts for c. Positions and capacities
// scale with the silhouette; heavier classes take bigger, heavier weapons.
func Hardpoints(c Class) *gltf.HardpointExtension {
	s := c.Scale
	slug := Slug(c.Name)

	energyTonnage, ballisticTonnage := 3.0, 5.0
	if s > 1.0 {
		energyTonnage, ballisticTonnage = 5.0, 8.0
	}
	ballisticSize := gltf.SizeMedium
	if s > 1.2 {
		ballisticSize = gltf.SizeLarge
	}

	return &gltf.HardpointExtension{
		Hardpoints: []gltf.Hardpoint{
			{
				ID:             slug + "_arm_energy_1",
				Name:           "Left Arm Energy Hardpoint",
				Type:           gltf.HardpointEnergy,
				Size:           gltf.SizeMedium,
				Position:       [3]float32{-1.5 * s, 2.5 * s, 0.5 * s},
				MaxTonnage:     energyTonnage,
				CriticalSlots:  2,
				AttachmentNode: "left_arm_mount",
			},
			{
				ID:             slug + "_arm_ballistic_1",
				Name:           "Right Arm Ballistic Hardpoint",
				Type:           gltf.HardpointBallistic,
				Size:           ballisticSize,
				Position:       [3]float32{1.5 * s, 2.5 * s, 0.5 * s},
				MaxTonnage:     ballisticTonnage,
				CriticalSlots:  3,
				AttachmentNode: "right_arm_mount",
			},
		},
	}
}

// DamageZones returns the hit regions for c. Armor and internal capacity
// scale with the silhouette except for the head, which stays fixed so
// headshots matter equally across classes.
func DamageZones(c Class) *gltf.DamageZoneExtension {
	s := c.Scale
	a := float64(s)
	slug := Slug(c.Name)

	return &gltf.DamageZoneExtension{
		Zones: []gltf.DamageZone{
			{
				ID:                 slug + "_head",
				Name:               "Head",
				Type:               gltf.ZoneHead,
				MaxArmor:           9.0,
				MaxInternal:        3.0,
				BoundsMin:          [3]float32{-0.8 * s, 4.0 * s, -0.8 * s},
				BoundsMax:          [3]float32{0.8 * s, 5.2 * s, 0.8 * s},
				TotalSlots:         6,
				DestructionEffects: []string{"cockpit_breach", "sensor_damage"},
			},
			{
				ID:                 slug + "_center_torso",
				Name:               "Center Torso",
				Type:               gltf.ZoneCenterTorso,
				MaxArmor:           20.0 * a,
				MaxInternal:        15.0 * a,
				BoundsMin:          [3]float32{-1.5 * s, 1.0 * s, -1.0 * s},
				BoundsMax:          [3]float32{1.5 * s, 3.0 * s, 1.0 * s},
				TotalSlots:         12,
				DestructionEffects: []string{"engine_shutdown", "mech_destruction"},
			},
			{
				ID:                 slug + "_left_arm",
				Name:               "Left Arm",
				Type:               gltf.ZoneLeftArm,
				MaxArmor:           12.0 * a,
				MaxInternal:        8.0 * a,
				BoundsMin:          [3]float32{-2.2 * s, 1.5 * s, -0.6 * s},
				BoundsMax:          [3]float32{-0.8 * s, 3.5 * s, 0.6 * s},
				TotalSlots:         8,
				DestructionEffects: []string{"weapon_loss", "actuator_damage"},
			},
			{
				ID:                 slug + "_right_arm",
				Name:               "Right Arm",
				Type:               gltf.ZoneRightArm,
				MaxArmor:           12.0 * a,
				MaxInternal:        8.0 * a,
				BoundsMin:          [3]float32{0.8 * s, 1.5 * s, -0.6 * s},
				BoundsMax:          [3]float32{2.2 * s, 3.5 * s, 0.6 * s},
				TotalSlots:         8,
				DestructionEffects: []string{"weapon_loss", "actuator_damage"},
			},
		},
	}
}
