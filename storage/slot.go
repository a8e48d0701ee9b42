package storage

import (
	"os"
	"path/filepath"
)

// Slot is a single durable key-value location. Read reports absence through ok
// rather than an error, and Write always replaces the full contents.
type Slot interface {
	Read() (data []byte, ok bool, err error)
	Write(data []byte) error
}

// FileSlot stores the slot contents in one JSON file on disk.
type FileSlot struct {
	path string
}

func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

func (s *FileSlot) Read() ([]byte, bool, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (s *FileSlot) Write(data []byte) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o644)
}

// MemorySlot keeps the slot contents in memory. Used in tests and when running
// without a data directory.
type MemorySlot struct {
	data    []byte
	present bool
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

func (s *MemorySlot) Read() ([]byte, bool, error) {
	if !s.present {
		return nil, false, nil
	}
	return s.data, true, nil
}

func (s *MemorySlot) Write(data []byte) error {
	s.data = append([]byte(nil), data...)
	s.present = true
	return nil
}
