package ui

import(
	"encoding/json"
	"net/http"
	"time"

	isspass "github.com/hasiegler/Space-Station-API"
)

// {{{ JsonPassRow{}, JsonPassTable{}

// The shape we emit over the wire. Absent ranks are omitted entirely, never
// rendered as zero-value timestamps.
type JsonPassRow struct {
	State    string     `json:"state"`
	Capital  string     `json:"capital"`
	Lat      float64    `json:"lat"`
	Long     float64    `json:"long"`
	First    *time.Time `json:"first_pass,omitempty"`
	Second   *time.Time `json:"second_pass,omitempty"`
	Third    *time.Time `json:"third_pass,omitempty"`
}

type JsonPassTable struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Rows        []JsonPassRow     `json:"capitals"`
	Failures    map[string]string `json:"failures,omitempty"`
}

func maybeTime(t time.Time) *time.Time {
	if t.IsZero() { return nil }
	return &t
}

// }}}
// {{{ PassTableToJsonTable

func PassTableToJsonTable(rows []isspass.CapitalPasses, failures map[string]error) JsonPassTable {
	jt := JsonPassTable{
		GeneratedAt: time.Now().UTC(),
		Rows: []JsonPassRow{},
	}

	for _,row := range rows {
		jt.Rows = append(jt.Rows, JsonPassRow{
			State: row.State,
			Capital: row.Name,
			Lat: row.Pos.Lat,
			Long: row.Pos.Long,
			First: maybeTime(row.First),
			Second: maybeTime(row.Second),
			Third: maybeTime(row.Third),
		})
	}

	if len(failures) > 0 {
		jt.Failures = map[string]string{}
		for state,err := range failures {
			jt.Failures[state] = err.Error()
		}
	}

	return jt
}

// }}}

// {{{ JsonHandler

func JsonHandler(app App, w http.ResponseWriter, r *http.Request) {
	rows,failures,err := passTableForRequest(app, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonBytes,err := json.MarshalIndent(PassTableToJsonTable(rows, failures), "", " ")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(jsonBytes)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
