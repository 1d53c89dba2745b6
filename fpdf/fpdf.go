// Provides routines to render the pass table as a PDF
package fpdf

import(
	"fmt"
	"io"
	"time"
	"github.com/jung-kurt/gofpdf"
	"github.com/skypies/util/date"
	isspass "github.com/hasiegler/Space-Station-API"
)

// https://godoc.org/github.com/jung-kurt/gofpdf

// {{{ var()

// Letter landscape is 279x216mm; the table sits inside a small margin.
var(
	TableOffsetX = 10.0
	TableOffsetY = 22.0
	RowHeight = 6.0
	PageBottom = 200.0  // start a new page once a row would land below this

	ColWidths  = []float64{14.0, 44.0, 24.0, 26.0, 50.0, 50.0, 50.0}
	ColHeaders = []string{"State", "Capital", "Latitude", "Longitude",
		"First pass (UTC)", "Second pass (UTC)", "Third pass (UTC)"}
	ColAligns  = []string{"C", "L", "R", "R", "L", "L", "L"}
)

// }}}

// {{{ NewPassTablePdf

func NewPassTablePdf() *gofpdf.Fpdf {
	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 10)
	return pdf
}

// }}}
// {{{ DrawTitle

func DrawTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 14)
	pdf.MoveTo(TableOffsetX, 8)
	pdf.Cell(200, 8, title)
	pdf.SetFont("Arial", "", 10)
}

// }}}
// {{{ DrawHeaderRow

func DrawHeaderRow(pdf *gofpdf.Fpdf, y float64) {
	pdf.MoveTo(TableOffsetX, y)
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(0xE0, 0xE8, 0xF0)
	for i,h := range ColHeaders {
		pdf.CellFormat(ColWidths[i], RowHeight, h, "1", 0, "C", true, 0, "")
	}
	pdf.SetFont("Arial", "", 10)
}

// }}}
// {{{ DrawPassRow

func DrawPassRow(pdf *gofpdf.Fpdf, y float64, row isspass.CapitalPasses) {
	cells := []string{
		row.State,
		row.Name,
		fmt.Sprintf("%.4f", row.Pos.Lat),
		fmt.Sprintf("%.4f", row.Pos.Long),
		cellTime(row.First),
		cellTime(row.Second),
		cellTime(row.Third),
	}

	pdf.MoveTo(TableOffsetX, y)
	for i,cell := range cells {
		pdf.CellFormat(ColWidths[i], RowHeight, cell, "1", 0, ColAligns[i], false, 0, "")
	}
}

func cellTime(t time.Time) string {
	if t.IsZero() { return "" }
	return t.UTC().Format("Mon 2006/01/02 15:04:05")
}

// }}}

// {{{ WritePassTable

func WritePassTable(output io.Writer, rows []isspass.CapitalPasses) error {
	pdf := NewPassTablePdf()
	DrawTitle(pdf, fmt.Sprintf("Upcoming ISS passes over the state capitals, as of %s",
		date.NowInPdt().Format("2006/01/02 15:04 (MST)")))

	y := TableOffsetY
	DrawHeaderRow(pdf, y)
	y += RowHeight

	for _,row := range rows {
		if y+RowHeight > PageBottom {
			pdf.AddPage()
			y = TableOffsetY
			DrawHeaderRow(pdf, y)
			y += RowHeight
		}
		DrawPassRow(pdf, y, row)
		y += RowHeight
	}

	return pdf.Output(output)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
