// Package snapshot defines the persisted output document: one full
// firmware-matrix snapshot per vendor per run, replacing the previous file
// wholesale.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Record is the canonical model/firmware pair shared by all vendors. Both
// fields are non-empty after trimming; rows that cannot satisfy that are
// never emitted.
type Record struct {
	Model              string `json:"Model"`
	MinFirmwareVersion string `json:"MinFirmwareVersion"`
}

// Snapshot is one vendor's full output document. RecordCount is always
// derived from Data; it is never set independently.
type Snapshot struct {
	Vendor      string   `json:"Vendor"`
	LastUpdated string   `json:"LastUpdated"`
	SourceUrl   string   `json:"SourceUrl"`
	RecordCount int      `json:"RecordCount"`
	Data        []Record `json:"Data"`
}

// Build assembles a snapshot for a vendor run. The timestamp is rendered
// in UTC at second precision with a trailing Z.
func Build(vendor, sourceURL string, records []Record, now time.Time) Snapshot {
	return Snapshot{
		Vendor:      vendor,
		LastUpdated: now.UTC().Truncate(time.Second).Format(time.RFC3339),
		SourceUrl:   sourceURL,
		RecordCount: len(records),
		Data:        records,
	}
}

// Filename returns the per-vendor output file name.
func Filename(vendor string) string {
	return strings.ToLower(vendor) + "_firmware_matrix.json"
}

// Write persists a snapshot under dir and returns the written path.
// Callers only invoke it for snapshots with at least one record, so a
// vendor run that extracted nothing leaves any prior file untouched. The
// document is staged to a temp file in dir and renamed into place, so an
// interrupted write never leaves a half-overwritten prior snapshot.
func Write(dir string, s Snapshot) (string, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(dir, Filename(s.Vendor)+".*")
	if err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}

	path := filepath.Join(dir, Filename(s.Vendor))
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	return path, nil
}
