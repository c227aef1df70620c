package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	records := []Record{
		{Model: "Latitude 5540", MinFirmwareVersion: "1.25.0"},
		{Model: "XPS 13", MinFirmwareVersion: "2.0.0"},
	}
	now := time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.FixedZone("CET", 3600))

	s := Build("Dell", "https://example.com/matrix", records, now)
	require.Equal(t, "Dell", s.Vendor)
	require.Equal(t, "https://example.com/matrix", s.SourceUrl)
	// UTC, second precision, trailing Z.
	require.Equal(t, "2026-03-14T08:26:53Z", s.LastUpdated)
	require.Equal(t, len(s.Data), s.RecordCount)
	require.Equal(t, records, s.Data)
}

func TestRoundTrip(t *testing.T) {
	s := Build("Lenovo", "https://example.com/lenovo", []Record{
		{Model: "ThinkPad T14", MinFirmwareVersion: "1.44"},
		{Model: "ThinkPad T14", MinFirmwareVersion: "1.44"},
		{Model: "Yoga 7", MinFirmwareVersion: "3.0"},
	}, time.Now())

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var back Snapshot
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, s, back)
}

func TestJSONFieldNames(t *testing.T) {
	s := Build("Dell", "https://example.com", []Record{
		{Model: "A", MinFirmwareVersion: "1.0"},
	}, time.Now())

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	for _, key := range []string{"Vendor", "LastUpdated", "SourceUrl", "RecordCount", "Data"} {
		require.Contains(t, doc, key)
	}
	first := doc["Data"].([]any)[0].(map[string]any)
	require.Contains(t, first, "Model")
	require.Contains(t, first, "MinFirmwareVersion")
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	s := Build("Dell", "https://example.com", []Record{
		{Model: "A", MinFirmwareVersion: "1.0"},
	}, time.Now())

	path, err := Write(dir, s)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "dell_firmware_matrix.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var back Snapshot
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, s, back)
}

func TestWriteReplacesExisting(t *testing.T) {
	dir := t.TempDir()

	first := Build("Dell", "https://example.com", []Record{
		{Model: "A", MinFirmwareVersion: "1.0"},
		{Model: "B", MinFirmwareVersion: "2.0"},
	}, time.Now())
	_, err := Write(dir, first)
	require.NoError(t, err)

	second := Build("Dell", "https://example.com", []Record{
		{Model: "C", MinFirmwareVersion: "3.0"},
	}, time.Now())
	path, err := Write(dir, second)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var back Snapshot
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, second, back)

	// The staged temp file is renamed into place, nothing else remains.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, Filename("Dell"), entries[0].Name())
}
