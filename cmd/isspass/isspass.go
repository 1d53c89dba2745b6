package main

import(
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/skypies/util/date"

	isspass "github.com/hasiegler/Space-Station-API"
	"github.com/hasiegler/Space-Station-API/fpdf"
	"github.com/hasiegler/Space-Station-API/opennotify"
	"github.com/hasiegler/Space-Station-API/ref"
	"github.com/hasiegler/Space-Station-API/report"
	"github.com/hasiegler/Space-Station-API/xlsx"
)

var(
	ctx = context.Background()
	fVerbosity int
	fLlUrl string
	fNamesUrl string
	fHost string
	fNumPasses int
	fTimeout time.Duration
	fRetries int
	fStates string
	fCsv string
	fXlsx string
	fPdf string
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "verbosity level")
	flag.StringVar(&fLlUrl, "ll", ref.DefaultLatlongsURL, "URL of the capital lat/long table")
	flag.StringVar(&fNamesUrl, "names", ref.DefaultNamesURL, "URL of the capital name table")
	flag.StringVar(&fHost, "host", opennotify.DefaultHost, "base URL of the pass prediction service")
	flag.IntVar(&fNumPasses, "n", isspass.NumPassesKept, "how many passes to keep per capital")
	flag.DurationVar(&fTimeout, "timeout", isspass.DefaultFetchTimeout, "HTTP timeout per request")
	flag.IntVar(&fRetries, "retries", 0, "extra attempts per capital when a lookup fails")
	flag.StringVar(&fStates, "states", "", "comma-sep state codes to keep (e.g. CA,TX)")
	flag.StringVar(&fCsv, "csv", "", "also write the table as CSV to this file")
	flag.StringVar(&fXlsx, "xlsx", "", "also write the table as a spreadsheet to this file")
	flag.StringVar(&fPdf, "pdf", "", "also write the table as a PDF to this file")
	flag.Parse()
}

func buildTable() ([]isspass.CapitalPasses, map[string]error) {
	client := &http.Client{Timeout: fTimeout}

	loader := ref.NewLoader(client)
	loader.LatlongsURL, loader.NamesURL = fLlUrl, fNamesUrl

	capitals,err := loader.Capitals()
	if err != nil { log.Fatal(err) }
	if fVerbosity > 0 {
		fmt.Printf("loaded %d capitals\n", len(capitals))
	}

	predictor := opennotify.NewClient(client)
	predictor.Host = fHost

	f := isspass.Fetcher{Predictor:predictor, NumPasses:fNumPasses, Retries:fRetries}
	preds,failures := f.FetchAll(ctx, capitals)

	if fVerbosity > 1 {
		for _,p := range preds {
			fmt.Printf("  %s\n", p)
		}
	}

	rows := isspass.BuildPassTable(preds)
	if fStates != "" {
		rows = isspass.FilterStates(rows, strings.Split(fStates, ","))
	}
	return rows, failures
}

func writeFile(filename string, writer func(io.Writer) error) {
	fh,err := os.Create(filename)
	if err != nil { log.Fatal(err) }
	defer fh.Close()

	if err := writer(fh); err != nil { log.Fatal(err) }
	fmt.Printf("wrote %s\n", filename)
}

func main() {
	rows,failures := buildTable()
	rep := report.FromPassTable(rows, failures)

	fmt.Printf("ISS pass predictions, as of %s\n\n", date.NowInPdt().Format("2006/01/02 15:04:05 MST"))
	fmt.Print(rep)
	if rep.Log != "" {
		fmt.Printf("\nLookups that failed:-\n%s", rep.Log)
	}

	if fCsv != ""  { writeFile(fCsv,  func(w io.Writer) error { return rep.WriteCSV(w) }) }
	if fXlsx != "" { writeFile(fXlsx, func(w io.Writer) error { return xlsx.WritePassTable(w, rows) }) }
	if fPdf != ""  { writeFile(fPdf,  func(w io.Writer) error { return fpdf.WritePassTable(w, rows) }) }
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
