package report

import(
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
)

func (r Report)OutputAsCSV(w http.ResponseWriter) {
	filename := fmt.Sprintf("%s-%s.csv", r.Name, r.GeneratedAt.Format("20060102"))
	w.Header().Set("Content-Type", "application/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))

	if err := r.WriteCSV(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (r Report)WriteCSV(w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(r.HeadersText); err != nil { return err }
	for _,row := range r.RowsText {
		if err := csvWriter.Write(row); err != nil { return err }
	}
	csvWriter.Flush()
	return csvWriter.Error()
}
