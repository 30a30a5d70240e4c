package store

import (
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// diskRecords keeps each record as one JSON file under the base path.
type diskRecords struct {
	d *diskv.Diskv
}

func newDiskRecords(basePath string) *diskRecords {
	return &diskRecords{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}
}

// Read returns (nil, nil) for a record that was never written, so a fresh
// store looks empty rather than broken.
func (r *diskRecords) Read(key string) ([]byte, error) {
	if !r.d.Has(key) {
		return nil, nil
	}
	return r.d.Read(key)
}

func (r *diskRecords) Write(key string, data []byte) error {
	return r.d.Write(key, data)
}

func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{FileName: s + ".json"}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return strings.TrimSuffix(pathKey.FileName, ".json")
}
