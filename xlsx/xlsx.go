// Provides routines to render the pass table as a spreadsheet
package xlsx

import(
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	isspass "github.com/hasiegler/Space-Station-API"
)

const kSheetName = "ISS Passes"

var headers = []interface{}{
	"State", "Capital", "Latitude", "Longitude",
	"First pass (UTC)", "Second pass (UTC)", "Third pass (UTC)",
}

// {{{ WritePassTable

// WritePassTable streams one row per capital into a fresh workbook. Absent
// ranks come out as empty cells.
func WritePassTable(output io.Writer, rows []isspass.CapitalPasses) error {
	f := excelize.NewFile()
	index,err := f.NewSheet(kSheetName)
	if err != nil { return err }

	sw,err := f.NewStreamWriter(kSheetName)
	if err != nil { return err }

	if err := sw.SetRow("A1", headers); err != nil { return err }

	for i,row := range rows {
		cell,_ := excelize.CoordinatesToCellName(1, i+2)
		cells := []interface{}{
			row.State,
			row.Name,
			row.Pos.Lat,
			row.Pos.Long,
			cellTime(row.First),
			cellTime(row.Second),
			cellTime(row.Third),
		}
		if err := sw.SetRow(cell, cells); err != nil { return err }
	}

	if err := sw.Flush(); err != nil { return err }

	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil { return err }

	return f.Write(output)
}

func cellTime(t time.Time) string {
	if t.IsZero() { return "" }
	return t.UTC().Format("2006-01-02 15:04:05")
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
