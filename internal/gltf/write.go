package gltf

import (
	"encoding/json"
	"fmt"
	"os"
)

// Write serializes doc as 2-space-indented JSON to gltfPath and the packed
// buffer to binPath. binPath should match the document's buffer URI.
func Write(gltfPath string, doc Document, binPath string, data []byte) error {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("gltf: marshal %s: %w", gltfPath, err)
	}
	if err := os.WriteFile(gltfPath, out, 0644); err != nil {
		return fmt.Errorf("gltf: write %s: %w", gltfPath, err)
	}
	if err := os.WriteFile(binPath, data, 0644); err != nil {
		return fmt.Errorf("gltf: write %s: %w", binPath, err)
	}
	return nil
}
