package ui

import(
	"net/http"

	"github.com/hasiegler/Space-Station-API/fpdf"
	"github.com/hasiegler/Space-Station-API/report"
	"github.com/hasiegler/Space-Station-API/xlsx"
)

// The download endpoints. Each runs the same pipeline as the map, then hands
// the rows to a renderer.

// {{{ CsvHandler

func CsvHandler(app App, w http.ResponseWriter, r *http.Request) {
	rows,failures,err := passTableForRequest(app, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	report.FromPassTable(rows, failures).OutputAsCSV(w)
}

// }}}
// {{{ XlsxHandler

func XlsxHandler(app App, w http.ResponseWriter, r *http.Request) {
	rows,_,err := passTableForRequest(app, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"isspasses.xlsx\"")
	if err := xlsx.WritePassTable(w, rows); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// }}}
// {{{ PdfHandler

func PdfHandler(app App, w http.ResponseWriter, r *http.Request) {
	rows,_,err := passTableForRequest(app, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	if err := fpdf.WritePassTable(w, rows); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
