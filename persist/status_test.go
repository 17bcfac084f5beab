package persist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestRoundtrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "aquarium_status.txt"))

	if err := store.Save(Status{Oxygen: 0.73, Food: 0.41}); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got.Oxygen != 0.73 || got.Food != 0.41 {
		t.Errorf("Load() = %+v, want {0.73 0.41}", got)
	}
}

func TestSaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.txt")
	if err := NewFileStore(path).Save(Status{Oxygen: 0.5, Food: 1}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "0.5 1\n" {
		t.Errorf("file contents = %q, want %q", data, "0.5 1\n")
	}
}

func TestLoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.txt"))

	got, err := store.Load()
	if !errors.Is(err, ErrNoStatus) {
		t.Errorf("expected ErrNoStatus, got %v", err)
	}
	if got != FullStatus {
		t.Errorf("missing file should default to full, got %+v", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Status
		wantErr bool
	}{
		{"plain", "0.25 0.75\n", Status{0.25, 0.75}, false},
		{"extra whitespace", "  0.25\t\n0.75  ", Status{0.25, 0.75}, false},
		{"clamps high", "3 1.5\n", Status{1, 1}, false},
		{"clamps low", "-1 -0.2\n", Status{0, 0}, false},
		{"empty", "", FullStatus, true},
		{"one value", "0.5\n", FullStatus, true},
		{"garbage", "abc def\n", FullStatus, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.txt")
	if err := os.WriteFile(path, []byte("not numbers"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := NewFileStore(path).Load()
	if err == nil {
		t.Error("expected parse error for corrupt file")
	}
	if got != FullStatus {
		t.Errorf("corrupt file should default to full, got %+v", got)
	}
}

func TestReadOnlyLeavesFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aquarium_status.txt")
	if err := NewFileStore(path).Save(Status{Oxygen: 0.3, Food: 0.6}); err != nil {
		t.Fatal(err)
	}
	store := ReadOnly(NewFileStore(path))

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got.Oxygen != 0.3 || got.Food != 0.6 {
		t.Errorf("Load() = %+v, want {0.3 0.6}", got)
	}

	if err := store.Save(Status{Oxygen: 1, Food: 1}); !errors.Is(err, ErrReadOnly) {
		t.Errorf("expected ErrReadOnly, got %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "0.3 0.6\n" {
		t.Errorf("file contents = %q, want %q", data, "0.3 0.6\n")
	}
}

func TestReadOnlyMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.txt")
	store := ReadOnly(NewFileStore(path))

	if _, err := store.Load(); !errors.Is(err, ErrNoStatus) {
		t.Errorf("expected ErrNoStatus, got %v", err)
	}
	_ = store.Save(FullStatus)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("read-only Save created %s", path)
	}
}
