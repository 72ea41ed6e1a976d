package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry describes one generated asset file.
type ManifestEntry struct {
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	File  string `json:"file"`
	Bytes int64  `json:"bytes"`
}

// WriteManifest writes manifest.json listing every file the successful
// jobs produced. Paths in the manifest are relative to root.
func WriteManifest(path, root string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		for _, f := range r.Outputs {
			var size int64
			if info, err := os.Stat(filepath.Join(root, f)); err == nil {
				size = info.Size()
			}
			entries = append(entries, ManifestEntry{
				Name:  r.Name,
				Kind:  r.Kind,
				File:  f,
				Bytes: size,
			})
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
