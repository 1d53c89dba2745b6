// Package report renders a pass table as rows of text, for CSV export and
// for the command line.
package report

import(
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/skypies/util/date"

	isspass "github.com/hasiegler/Space-Station-API"
)

const kTimeFormat = time.RFC3339

type Report struct {
	Name        string
	GeneratedAt time.Time

	// Output state
	HeadersText []string
	RowsText    [][]string

	Log string  // anything noteworthy that happened while assembling
}

func BlankReport() Report {
	return Report{
		Name: "isspasses",
		GeneratedAt: date.NowInPdt(),
		HeadersText: []string{},
		RowsText: [][]string{},
	}
}

// {{{ FromPassTable

// FromPassTable rolls the reshaped rows into text form, one line per
// capital. Absent ranks come out as empty cells. Failed capitals land in
// the log, never in the table.
func FromPassTable(rows []isspass.CapitalPasses, failures map[string]error) Report {
	r := BlankReport()
	r.HeadersText = []string{
		"state", "capital", "lat", "long", "first_pass", "second_pass", "third_pass",
	}

	for _,row := range rows {
		r.RowsText = append(r.RowsText, []string{
			row.State,
			row.Name,
			fmt.Sprintf("%.6f", row.Pos.Lat),
			fmt.Sprintf("%.6f", row.Pos.Long),
			formatCell(row.First),
			formatCell(row.Second),
			formatCell(row.Third),
		})
	}

	states := []string{}
	for state,_ := range failures { states = append(states, state) }
	sort.Strings(states)
	for _,state := range states {
		r.Log += fmt.Sprintf("%s: %v\n", state, failures[state])
	}

	return r
}

func formatCell(t time.Time) string {
	if t.IsZero() { return "" }
	return t.Format(kTimeFormat)
}

// }}}
// {{{ r.String

// String lays the table out with aligned columns, for terminal output.
func (r Report)String() string {
	widths := make([]int, len(r.HeadersText))
	for i,h := range r.HeadersText { widths[i] = len(h) }
	for _,row := range r.RowsText {
		for i,cell := range row {
			if len(cell) > widths[i] { widths[i] = len(cell) }
		}
	}

	line := func(cells []string) string {
		out := ""
		for i,cell := range cells {
			out += fmt.Sprintf("%-*s  ", widths[i], cell)
		}
		return strings.TrimRight(out, " ") + "\n"
	}

	str := line(r.HeadersText)
	for _,row := range r.RowsText {
		str += line(row)
	}
	return str
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
