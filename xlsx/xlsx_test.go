package xlsx

import(
	"bytes"
	"testing"
	"time"

	"github.com/skypies/geo"
	"github.com/xuri/excelize/v2"

	isspass "github.com/hasiegler/Space-Station-API"
)

func TestWritePassTable(t *testing.T) {
	base := time.Unix(1700000000,0).UTC()
	rows := []isspass.CapitalPasses{
		{
			Capital: isspass.Capital{State:"CA", Name:"Sacramento", Pos:geo.Latlong{38.58,-121.49}},
			First: base, Second: base.Add(time.Hour), Third: base.Add(2*time.Hour),
		},
		{
			Capital: isspass.Capital{State:"TX", Name:"Austin", Pos:geo.Latlong{30.27,-97.74}},
			First: base.Add(30*time.Minute),
		},
	}

	buf := bytes.Buffer{}
	if err := WritePassTable(&buf, rows); err != nil {
		t.Fatal(err)
	}

	f,err := excelize.OpenReader(&buf)
	if err != nil { t.Fatal(err) }
	defer f.Close()

	got,err := f.GetRows(kSheetName)
	if err != nil { t.Fatal(err) }

	if len(got) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(got))
	}
	if got[0][0] != "State" || got[0][4] != "First pass (UTC)" {
		t.Errorf("bad header row: %v", got[0])
	}
	if got[1][0] != "CA" || got[1][1] != "Sacramento" {
		t.Errorf("bad CA row: %v", got[1])
	}
	if got[1][4] != "2023-11-14 22:13:20" {
		t.Errorf("bad first pass cell: %q", got[1][4])
	}

	// Austin only had one pass; GetRows trims trailing empty cells
	austin := got[2]
	if austin[4] == "" {
		t.Errorf("austin should have a first pass: %v", austin)
	}
	for i := 5; i < len(austin); i++ {
		if austin[i] != "" {
			t.Errorf("austin cell %d should be empty, got %q", i, austin[i])
		}
	}
}
