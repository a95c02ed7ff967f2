package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/swarm/config"
)

// CollectionRecord is one row of collections.csv.
type CollectionRecord struct {
	Tick      int32  `csv:"tick"`
	Frame     int64  `csv:"frame"`
	RobotID   int    `csv:"robot_id"`
	RobotName string `csv:"robot"`
	Kind      string `csv:"kind"`
	X         int    `csv:"x"`
	Y         int    `csv:"y"`
}

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir            string
	telemetryFile  *os.File
	collectionFile *os.File

	// Track if headers have been written
	telemetryHeaderWritten  bool
	collectionHeaderWritten bool
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

	f, err := os.Create(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating telemetry.csv: %w", err)
	}
	om.telemetryFile = f

	f, err = os.Create(filepath.Join(dir, "collections.csv"))
	if err != nil {
		om.telemetryFile.Close()
		return nil, fmt.Errorf("creating collections.csv: %w", err)
	}
	om.collectionFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteMapSummary writes map.csv with a single summary row.
func (om *OutputManager) WriteMapSummary(m MapSummary) error {
	if om == nil {
		return nil
	}

	f, err := os.Create(filepath.Join(om.dir, "map.csv"))
	if err != nil {
		return fmt.Errorf("creating map.csv: %w", err)
	}
	defer f.Close()

	if err := gocsv.Marshal([]MapSummary{m}, f); err != nil {
		return fmt.Errorf("writing map summary: %w", err)
	}
	return nil
}

// WriteTelemetry writes a window stats record to telemetry.csv.
func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}

	records := []WindowStats{stats}

	if !om.telemetryHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.telemetryFile); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		om.telemetryHeaderWritten = true
	} else {
		// Subsequent writes skip headers
		if err := gocsv.MarshalWithoutHeaders(records, om.telemetryFile); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
	}

	return nil
}

// WriteCollections appends collection records to collections.csv.
func (om *OutputManager) WriteCollections(records []CollectionRecord) error {
	if om == nil || len(records) == 0 {
		return nil
	}

	if !om.collectionHeaderWritten {
		if err := gocsv.Marshal(records, om.collectionFile); err != nil {
			return fmt.Errorf("writing collections: %w", err)
		}
		om.collectionHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.collectionFile); err != nil {
			return fmt.Errorf("writing collections: %w", err)
		}
	}

	return nil
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

	if om.telemetryFile != nil {
		if err := om.telemetryFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if om.collectionFile != nil {
		if err := om.collectionFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
