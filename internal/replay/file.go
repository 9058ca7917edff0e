package replay

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// Encode serializes a recording with msgpack.
func Encode(rec Recording) ([]byte, error) {
	data, err := msgpack.Marshal(&rec)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot encode: %w", err)
	}
	return data, nil
}

// Decode parses a msgpack recording.
func Decode(data []byte) (Recording, error) {
	var rec Recording
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return rec, nil
}

// Save writes a recording to path, creating parent directories.
func Save(path string, rec Recording) error {
	data, err := Encode(rec)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("replay: cannot create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("replay: cannot write %s: %w", path, err)
	}
	return nil
}

// Load reads a recording from path.
func Load(path string) (Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Recording{}, fmt.Errorf("replay: cannot read %s: %w", path, err)
	}
	return Decode(data)
}
