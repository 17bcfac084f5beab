// Package persist stores the tank vitals between runs.
package persist

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Status is the persisted part of the tank.
type Status struct {
	Oxygen float32
	Food   float32
}

// FullStatus is used when nothing was saved before.
var FullStatus = Status{Oxygen: 1, Food: 1}

// Store loads and saves Status.
type Store interface {
	Load() (Status, error)
	Save(Status) error
}

// ErrNoStatus reports that no prior state exists.
var ErrNoStatus = errors.New("no saved status")

// FileStore keeps Status as "oxygen food\n" in a text file.
type FileStore struct {
	Path string
}

// NewFileStore creates a store backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the status file. Values are clamped to [0,1].
// A missing file returns ErrNoStatus.
func (s *FileStore) Load() (Status, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return FullStatus, ErrNoStatus
	}
	if err != nil {
		return FullStatus, fmt.Errorf("reading status file: %w", err)
	}
	st, err := Parse(data)
	if err != nil {
		return FullStatus, fmt.Errorf("parsing status file %s: %w", s.Path, err)
	}
	return st, nil
}

// Save overwrites the status file.
func (s *FileStore) Save(st Status) error {
	if err := os.WriteFile(s.Path, Format(st), 0644); err != nil {
		return fmt.Errorf("writing status file: %w", err)
	}
	return nil
}

// ErrReadOnly is returned by Save on a store opened with ReadOnly.
var ErrReadOnly = errors.New("status store is read-only")

// ReadOnly wraps s so that Load reads through and Save never writes.
func ReadOnly(s Store) Store {
	return readOnlyStore{s}
}

type readOnlyStore struct {
	Store
}

func (readOnlyStore) Save(Status) error {
	return ErrReadOnly
}

// Parse reads two whitespace-separated floats, oxygen then food.
func Parse(data []byte) (Status, error) {
	fields := bytes.Fields(data)
	if len(fields) < 2 {
		return FullStatus, fmt.Errorf("expected 2 values, got %d", len(fields))
	}
	oxygen, err := strconv.ParseFloat(string(fields[0]), 32)
	if err != nil {
		return FullStatus, fmt.Errorf("oxygen: %w", err)
	}
	food, err := strconv.ParseFloat(string(fields[1]), 32)
	if err != nil {
		return FullStatus, fmt.Errorf("food: %w", err)
	}
	return Status{Oxygen: clamp01(float32(oxygen)), Food: clamp01(float32(food))}, nil
}

// Format renders st as a newline-terminated record.
func Format(st Status) []byte {
	b := make([]byte, 0, 32)
	b = strconv.AppendFloat(b, float64(st.Oxygen), 'g', -1, 32)
	b = append(b, ' ')
	b = strconv.AppendFloat(b, float64(st.Food), 'g', -1, 32)
	return append(b, '\n')
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
