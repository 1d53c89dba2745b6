package report

import(
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/skypies/geo"

	isspass "github.com/hasiegler/Space-Station-API"
)

func testRows() []isspass.CapitalPasses {
	base := time.Unix(1700000000,0).UTC()
	return []isspass.CapitalPasses{
		{
			Capital: isspass.Capital{State:"CA", Name:"Sacramento", Pos:geo.Latlong{38.58,-121.49}},
			First: base, Second: base.Add(time.Hour), Third: base.Add(2*time.Hour),
		},
		{
			Capital: isspass.Capital{State:"OK", Name:"Oklahoma City", Pos:geo.Latlong{35.48,-97.53}},
			First: base.Add(30*time.Minute),
		},
	}
}

func TestFromPassTable(t *testing.T) {
	r := FromPassTable(testRows(), nil)

	if len(r.RowsText) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(r.RowsText))
	}
	if len(r.HeadersText) != 7 {
		t.Fatalf("expected 7 columns, got %d", len(r.HeadersText))
	}

	row := r.RowsText[0]
	if row[0] != "CA" || row[1] != "Sacramento" {
		t.Errorf("bad identity cells: %v", row[:2])
	}
	if row[2] != "38.580000" || row[3] != "-121.490000" {
		t.Errorf("bad position cells: %v", row[2:4])
	}
	if row[4] != "2023-11-14T22:13:20Z" {
		t.Errorf("bad first_pass cell: %q", row[4])
	}

	// A capital with a single pass leaves the later cells empty
	row = r.RowsText[1]
	if row[4] == "" || row[5] != "" || row[6] != "" {
		t.Errorf("short row cells wrong: %v", row[4:])
	}
}

func TestFailuresLandInLog(t *testing.T) {
	failures := map[string]error{
		"WY": fmt.Errorf("service failure: something"),
		"MT": fmt.Errorf("Bad status: 503 Service Unavailable"),
	}
	r := FromPassTable(testRows(), failures)

	if len(r.RowsText) != 2 {
		t.Errorf("failures must not add table rows; got %d", len(r.RowsText))
	}
	// Log lines come out sorted by state
	if !strings.Contains(r.Log, "MT: Bad status") {
		t.Errorf("log missing MT entry:\n%s", r.Log)
	}
	lines := strings.Split(strings.TrimSpace(r.Log), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "MT:") || !strings.HasPrefix(lines[1], "WY:") {
		t.Errorf("log lines out of order:\n%s", r.Log)
	}
}

func TestStringAligns(t *testing.T) {
	str := FromPassTable(testRows(), nil).String()
	lines := strings.Split(strings.TrimSpace(str), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}

	// Every row starts its capital column at the same offset
	i1 := strings.Index(lines[1], "Sacramento")
	i2 := strings.Index(lines[2], "Oklahoma City")
	if i1 < 0 || i1 != i2 {
		t.Errorf("capital columns misaligned (%d vs %d):\n%s", i1, i2, str)
	}
}

func TestWriteCSV(t *testing.T) {
	buf := bytes.Buffer{}
	if err := FromPassTable(testRows(), nil).WriteCSV(&buf); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 csv lines, got %d", len(lines))
	}
	if lines[0] != "state,capital,lat,long,first_pass,second_pass,third_pass" {
		t.Errorf("bad header line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "CA,Sacramento,38.580000,-121.490000,2023-11-14T22:13:20Z,") {
		t.Errorf("bad CA line: %q", lines[1])
	}
	// The one-pass row ends with two empty cells
	if !strings.HasSuffix(lines[2], ",,") {
		t.Errorf("short row should end with empty cells: %q", lines[2])
	}
}
