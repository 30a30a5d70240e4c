package store

// memoryRecords is a Records backend held entirely in process memory. It
// exists so services can be exercised without touching disk.
type memoryRecords struct {
	data map[string][]byte
}

// NewMemory returns stores over an in-memory backend.
func NewMemory() *Stores {
	return New(&memoryRecords{data: make(map[string][]byte)})
}

func (r *memoryRecords) Read(key string) ([]byte, error) {
	data, ok := r.data[key]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

func (r *memoryRecords) Write(key string, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	r.data[key] = cp
	return nil
}
