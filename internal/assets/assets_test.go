package assets

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"corepulse-assetgen/internal/gltf"
	"corepulse-assetgen/internal/walker"
)

func TestWriteSoundFileSize(t *testing.T) {
	dir := t.TempDir()
	def := Sounds[0] // collision_metal.wav, 0.4s

	if err := WriteSound(dir, def, 44100, 1); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(filepath.Join(dir, def.File))
	if err != nil {
		t.Fatal(err)
	}
	frames := int64(44100 * 0.4)
	want := 44 + frames*4 // header + stereo 16-bit frames
	if info.Size() != want {
		t.Errorf("file size: got %d, want %d", info.Size(), want)
	}
}

func TestWriteSoundDeterministic(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()
	def := Sounds[3] // ambient_hum.wav, noise-bearing

	if err := WriteSound(dirA, def, 44100, 7); err != nil {
		t.Fatal(err)
	}
	if err := WriteSound(dirB, def, 44100, 7); err != nil {
		t.Fatal(err)
	}

	a, _ := os.ReadFile(filepath.Join(dirA, def.File))
	b, _ := os.ReadFile(filepath.Join(dirB, def.File))
	if !bytes.Equal(a, b) {
		t.Error("same seed produced different WAV bytes")
	}
}

func TestWriteCube(t *testing.T) {
	dir := t.TempDir()
	if err := WriteCube(dir); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(filepath.Join(dir, "cube.bin"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 840 { // 768 vertex bytes + 72 index bytes
		t.Errorf("cube.bin: got %d bytes, want 840", info.Size())
	}

	data, err := os.ReadFile(filepath.Join(dir, "cube.gltf"))
	if err != nil {
		t.Fatal(err)
	}
	var doc gltf.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Buffers[0].URI != "cube.bin" || doc.Buffers[0].ByteLength != 840 {
		t.Errorf("buffer record: %+v", doc.Buffers[0])
	}
	if doc.Accessors[0].Count != 24 || doc.Accessors[3].Count != 36 {
		t.Errorf("accessor counts: %d/%d", doc.Accessors[0].Count, doc.Accessors[3].Count)
	}
}

func TestWriteWalker(t *testing.T) {
	dir := t.TempDir()
	c := walker.Classes[2] // Heavy Mech

	if err := WriteWalker(dir, c); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(filepath.Join(dir, "heavy_mech.bin"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 3360 { // 96*32 vertex bytes + 144*2 index bytes
		t.Errorf("heavy_mech.bin: got %d bytes, want 3360", info.Size())
	}

	data, err := os.ReadFile(filepath.Join(dir, "heavy_mech.gltf"))
	if err != nil {
		t.Fatal(err)
	}
	var doc gltf.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Accessors[0].Count != 96 || doc.Accessors[3].Count != 144 {
		t.Errorf("accessor counts: %d/%d", doc.Accessors[0].Count, doc.Accessors[3].Count)
	}
	if doc.Extensions == nil || doc.Extensions.WalkerHardpoints == nil || doc.Extensions.DamageZones == nil {
		t.Fatal("extensions missing from walker document")
	}
	if len(doc.Extensions.WalkerHardpoints.Hardpoints) != 2 {
		t.Errorf("hardpoints: got %d, want 2", len(doc.Extensions.WalkerHardpoints.Hardpoints))
	}
	if len(doc.Extensions.DamageZones.Zones) != 4 {
		t.Errorf("zones: got %d, want 4", len(doc.Extensions.DamageZones.Zones))
	}
	if len(doc.ExtensionsUsed) != 2 {
		t.Errorf("extensionsUsed: got %v", doc.ExtensionsUsed)
	}
}

func TestWriteWeapon(t *testing.T) {
	dir := t.TempDir()
	if err := WriteWeapon(dir); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "laser_cannon.gltf"))
	if err != nil {
		t.Fatal(err)
	}
	var doc gltf.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Nodes[0].Name != "Laser Cannon" {
		t.Errorf("node name: got %q", doc.Nodes[0].Name)
	}
	if *doc.Nodes[0].Scale != [3]float32{3.0, 0.3, 0.3} {
		t.Errorf("node scale: got %v", *doc.Nodes[0].Scale)
	}
	if doc.Materials[0].PBRMetallicRoughness.MetallicFactor != 0.8 {
		t.Errorf("weapon metallic: got %v", doc.Materials[0].PBRMetallicRoughness.MetallicFactor)
	}
	if doc.Buffers[0].URI != "laser_cannon.bin" {
		t.Errorf("buffer uri: got %q", doc.Buffers[0].URI)
	}
	if _, err := os.Stat(filepath.Join(dir, "laser_cannon.bin")); err != nil {
		t.Errorf("missing bin: %v", err)
	}
}

func TestWriteTexture(t *testing.T) {
	dir := t.TempDir()
	def := Textures[1] // hull_light_mech

	if err := WriteTexture(dir, def, 64, 5); err != nil {
		t.Fatal(err)
	}

	for _, f := range TextureFiles(def) {
		info, err := os.Stat(filepath.Join(dir, f))
		if err != nil {
			t.Fatalf("missing %s: %v", f, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", f)
		}
	}
}

func TestTextureCatalog(t *testing.T) {
	if len(Textures) != 1+len(walker.Classes) {
		t.Fatalf("got %d textures, want %d", len(Textures), 1+len(walker.Classes))
	}
	if Textures[0].Name != "uv_checker" || Textures[0].Kind != TextureChecker {
		t.Errorf("first texture: %+v", Textures[0])
	}
	if Textures[1].Name != "hull_light_mech" || Textures[1].Kind != TextureHull {
		t.Errorf("second texture: %+v", Textures[1])
	}
}
