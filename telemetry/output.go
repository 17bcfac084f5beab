package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/aquarium/config"
)

// OutputManager writes vitals samples and window stats as CSV.
// A nil *OutputManager is valid and discards everything.
type OutputManager struct {
	dir         string
	vitalsFile  *os.File
	windowsFile *os.File

	// Track if headers have been written
	vitalsHeaderWritten  bool
	windowsHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "vitals.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating vitals.csv: %w", err)
	}
	om.vitalsFile = f

	f, err = os.Create(filepath.Join(dir, "windows.csv"))
	if err != nil {
		om.vitalsFile.Close()
		return nil, fmt.Errorf("creating windows.csv: %w", err)
	}
	om.windowsFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteSample appends a row to vitals.csv.
func (om *OutputManager) WriteSample(s Sample) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.vitalsFile, []Sample{s}, &om.vitalsHeaderWritten); err != nil {
		return fmt.Errorf("writing sample: %w", err)
	}
	return nil
}

// WriteWindow appends a row to windows.csv.
func (om *OutputManager) WriteWindow(ws WindowStats) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.windowsFile, []WindowStats{ws}, &om.windowsHeaderWritten); err != nil {
		return fmt.Errorf("writing window: %w", err)
	}
	return nil
}

// writeRecords marshals records, emitting the header only on first use.
func writeRecords(f *os.File, records interface{}, headerWritten *bool) error {
	if !*headerWritten {
		if err := gocsv.Marshal(records, f); err != nil {
			return err
		}
		*headerWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(records, f)
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, f := range []*os.File{om.vitalsFile, om.windowsFile} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
