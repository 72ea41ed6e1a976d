package walker

import (
	"math"
	"testing"

	"corepulse-assetgen/internal/gltf"
	"corepulse-assetgen/internal/mesh"
)

func classByName(t *testing.T, name string) Class {
	t.Helper()
	for _, c := range Classes {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no class %q", name)
	return Class{}
}

func TestSlug(t *testing.T) {
	if got := Slug("Light Mech"); got != "light_mech" {
		t.Errorf("got %q, want light_mech", got)
	}
}

func TestBuildMeshCounts(t *testing.T) {
	for _, c := range Classes {
		b := BuildMesh(c)
		if got := len(b.Vertices()); got != 4*mesh.CubeVertexCount {
			t.Errorf("%s: vertices: got %d, want 96", c.Name, got)
		}
		if got := len(b.Indices()); got != 4*mesh.CubeIndexCount {
			t.Errorf("%s: indices: got %d, want 144", c.Name, got)
		}

		minIdx, maxIdx := b.Indices()[0], b.Indices()[0]
		for _, idx := range b.Indices() {
			if idx < minIdx {
				minIdx = idx
			}
			if idx > maxIdx {
				maxIdx = idx
			}
		}
		if minIdx != 0 || maxIdx != 95 {
			t.Errorf("%s: index span [%d, %d], want [0, 95]", c.Name, minIdx, maxIdx)
		}
	}
}

func TestBuildMeshBoundsScale(t *testing.T) {
	for _, c := range Classes {
		min, max := BuildMesh(c).Bounds()
		s := c.Scale
		wantMinY := -3 * s  // leg bottoms
		wantMaxX := 1.5 * s // torso side
		if !approx(min.Y(), wantMinY) {
			t.Errorf("%s: min Y: got %v, want %v", c.Name, min.Y(), wantMinY)
		}
		if !approx(max.X(), wantMaxX) {
			t.Errorf("%s: max X: got %v, want %v", c.Name, max.X(), wantMaxX)
		}
		if !approx(max.Y(), (4.5+0.8)*s) {
			t.Errorf("%s: max Y: got %v, want head top %v", c.Name, max.Y(), (4.5+0.8)*s)
		}
	}
}

func TestHardpointCapacityTiers(t *testing.T) {
	light := Hardpoints(classByName(t, "Light Mech")).Hardpoints
	medium := Hardpoints(classByName(t, "Medium Mech")).Hardpoints
	heavy := Hardpoints(classByName(t, "Heavy Mech")).Hardpoints

	if light[0].MaxTonnage != 3.0 || light[1].MaxTonnage != 5.0 {
		t.Errorf("light tonnage: got %v/%v, want 3/5", light[0].MaxTonnage, light[1].MaxTonnage)
	}
	if medium[1].Size != gltf.SizeMedium {
		t.Errorf("medium ballistic size: got %s, want MEDIUM", medium[1].Size)
	}
	if heavy[0].MaxTonnage != 5.0 || heavy[1].MaxTonnage != 8.0 {
		t.Errorf("heavy tonnage: got %v/%v, want 5/8", heavy[0].MaxTonnage, heavy[1].MaxTonnage)
	}
	if heavy[1].Size != gltf.SizeLarge {
		t.Errorf("heavy ballistic size: got %s, want LARGE", heavy[1].Size)
	}
}

func TestHardpointPositionsScale(t *testing.T) {
	c := classByName(t, "Heavy Mech")
	hps := Hardpoints(c).Hardpoints
	if len(hps) != 2 {
		t.Fatalf("got %d hardpoints, want 2", len(hps))
	}
	if hps[0].Type != gltf.HardpointEnergy || hps[1].Type != gltf.HardpointBallistic {
		t.Errorf("types: got %s/%s", hps[0].Type, hps[1].Type)
	}
	if !approx(hps[0].Position[0], -1.5*c.Scale) || !approx(hps[1].Position[0], 1.5*c.Scale) {
		t.Errorf("arm positions not mirrored at +/-1.5*scale: %v %v", hps[0].Position, hps[1].Position)
	}
	if hps[0].ID != "heavy_mech_arm_energy_1" {
		t.Errorf("id: got %q", hps[0].ID)
	}
}

func TestDamageZones(t *testing.T) {
	c := classByName(t, "Heavy Mech")
	zones := DamageZones(c).Zones
	if len(zones) != 4 {
		t.Fatalf("got %d zones, want 4", len(zones))
	}

	head := zones[0]
	if head.Type != gltf.ZoneHead {
		t.Fatalf("zone 0: got %s, want HEAD", head.Type)
	}
	// Head capacity stays fixed across classes
	if head.MaxArmor != 9.0 || head.MaxInternal != 3.0 {
		t.Errorf("head capacity: got %v/%v, want 9/3", head.MaxArmor, head.MaxInternal)
	}
	if !approx(head.BoundsMax[1], 5.2*c.Scale) {
		t.Errorf("head bounds: got %v, want %v", head.BoundsMax[1], 5.2*c.Scale)
	}

	torso := zones[1]
	if torso.Type != gltf.ZoneCenterTorso {
		t.Fatalf("zone 1: got %s, want CENTER_TORSO", torso.Type)
	}
	if !approxF64(torso.MaxArmor, 20.0*float64(c.Scale)) {
		t.Errorf("torso armor: got %v", torso.MaxArmor)
	}
	if len(torso.DestructionEffects) != 2 || torso.DestructionEffects[1] != "mech_destruction" {
		t.Errorf("torso destruction effects: got %v", torso.DestructionEffects)
	}

	for _, z := range zones {
		for axis := 0; axis < 3; axis++ {
			if z.BoundsMin[axis] >= z.BoundsMax[axis] {
				t.Errorf("%s: degenerate bounds on axis %d: %v %v", z.ID, axis, z.BoundsMin, z.BoundsMax)
			}
		}
	}
}

func approx(got, want float32) bool {
	return math.Abs(float64(got-want)) < 1e-5
}

func approxF64(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}
