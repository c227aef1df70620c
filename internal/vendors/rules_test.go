package vendors

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fwmatrix/internal/htmltable"
	"fwmatrix/internal/snapshot"
)

func mustGet(t *testing.T, name string) Rules {
	t.Helper()
	v, ok := Get(name)
	require.True(t, ok, "vendor %s not registered", name)
	return v
}

func TestRegistry(t *testing.T) {
	require.Len(t, All(), 2)

	dell := mustGet(t, "dell")
	require.Equal(t, "Dell", dell.Name)
	require.False(t, dell.UseBrowser)

	lenovo := mustGet(t, "LENOVO")
	require.Equal(t, "Lenovo", lenovo.Name)
	require.True(t, lenovo.UseBrowser)
	require.NotEmpty(t, lenovo.ContentMarker)

	_, ok := Get("asus")
	require.False(t, ok)
}

func TestClassifyDensityGate(t *testing.T) {
	dell := mustGet(t, "dell")

	// A single-row layout table mentioning the right keywords must still
	// be rejected.
	layout := htmltable.Fragments(`<table><tr><td>Platform BIOS navigation</td></tr></table>`)[0]
	require.False(t, dell.Classify(layout))
}

func TestClassifyKeywordAND(t *testing.T) {
	dell := mustGet(t, "dell")

	both := htmltable.Fragments(`<table>
<tr><th>Platform</th><th>Minimum BIOS Version</th></tr>
<tr><td>A</td><td>1.0</td></tr>
<tr><td>B</td><td>2.0</td></tr>
</table>`)[0]
	require.True(t, dell.Classify(both))

	onlyOne := htmltable.Fragments(`<table>
<tr><th>Platform</th><th>Release Date</th></tr>
<tr><td>A</td><td>2023</td></tr>
<tr><td>B</td><td>2024</td></tr>
</table>`)[0]
	require.False(t, dell.Classify(onlyOne))
}

func TestClassifyKeywordOR(t *testing.T) {
	lenovo := mustGet(t, "lenovo")

	productLine := htmltable.Fragments(`<table>
<tr><td>ThinkPad T14</td><td>1.0</td></tr>
<tr><td>ThinkPad T16</td><td>1.2</td></tr>
<tr><td>ThinkPad P1</td><td>1.9</td></tr>
</table>`)[0]
	require.True(t, lenovo.Classify(productLine))

	generic := htmltable.Fragments(`<table>
<tr><th>Product Name</th><th>BIOS Version</th></tr>
<tr><td>unbranded</td><td>1.0</td></tr>
<tr><td>unbranded</td><td>1.1</td></tr>
</table>`)[0]
	require.True(t, lenovo.Classify(generic))

	unrelated := htmltable.Fragments(`<table>
<tr><th>Country</th><th>Phone</th></tr>
<tr><td>US</td><td>1-800</td></tr>
<tr><td>DE</td><td>0-800</td></tr>
</table>`)[0]
	require.False(t, lenovo.Classify(unrelated))
}

func TestNormalizeDellExample(t *testing.T) {
	dell := mustGet(t, "dell")

	records := dell.Extract(`<table><tr><th>Platform</th><th>Minimum BIOS Version with 2023 Certificate</th></tr><tr><td>Latitude 5540</td><td>1.25.0</td></tr><tr><td></td><td>1.30.0</td></tr></table>`)
	require.Equal(t, []snapshot.Record{
		{Model: "Latitude 5540", MinFirmwareVersion: "1.25.0"},
	}, records)
}

func TestNormalizeAliasPrecedence(t *testing.T) {
	dell := mustGet(t, "dell")

	// The certificate-qualified column outranks the generic one when both
	// are present.
	rows := []htmltable.Row{{
		"Platform":             "XPS 13",
		"Minimum BIOS Version": "1.0.0",
		"Minimum BIOS Version with 2023 Certificate": "2.0.0",
	}}
	records := dell.Normalize(rows)
	require.Equal(t, []snapshot.Record{
		{Model: "XPS 13", MinFirmwareVersion: "2.0.0"},
	}, records)
}

func TestNormalizePositionalFallback(t *testing.T) {
	lenovo := mustGet(t, "lenovo")

	rows := []htmltable.Row{
		{"Column1": "Legion 5", "Column2": "2.1"},
		{"Column1": "", "Column2": "2.2"},
	}
	records := lenovo.Normalize(rows)
	require.Equal(t, []snapshot.Record{
		{Model: "Legion 5", MinFirmwareVersion: "2.1"},
	}, records)
}

func TestNormalizeSentinelExcluded(t *testing.T) {
	lenovo := mustGet(t, "lenovo")

	rows := []htmltable.Row{
		{"Product Name": "ThinkPad X1", "BIOS Version": "TBD"},
		{"Product Name": "ThinkPad T14", "BIOS Version": "1.44"},
	}
	records := lenovo.Normalize(rows)
	require.Equal(t, []snapshot.Record{
		{Model: "ThinkPad T14", MinFirmwareVersion: "1.44"},
	}, records)
}

func TestNormalizeKeepsDuplicates(t *testing.T) {
	dell := mustGet(t, "dell")

	rows := []htmltable.Row{
		{"Platform": "XPS 13", "Minimum BIOS Version": "1.0"},
		{"Platform": "XPS 13", "Minimum BIOS Version": "1.0"},
	}
	require.Len(t, dell.Normalize(rows), 2)
}

func TestExtractSkipsUnrelatedTables(t *testing.T) {
	dell := mustGet(t, "dell")

	doc := `<html><body>
<table><tr><td>Home</td><td>Support</td></tr></table>
<table>
<tr><th>Platform</th><th>Minimum BIOS Version</th></tr>
<tr><td>OptiPlex 7010</td><td>1.5.0</td></tr>
<tr><td>Precision 3580</td><td>1.12.1</td></tr>
</table>
<table>
<tr><th>Region</th><th>Phone</th></tr>
<tr><td>US</td><td>1-800</td></tr>
<tr><td>DE</td><td>0-800</td></tr>
</table>
</body></html>`

	records := dell.Extract(doc)
	require.Equal(t, []snapshot.Record{
		{Model: "OptiPlex 7010", MinFirmwareVersion: "1.5.0"},
		{Model: "Precision 3580", MinFirmwareVersion: "1.12.1"},
	}, records)
}
