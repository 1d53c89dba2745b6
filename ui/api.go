package ui

import(
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/skypies/geo"
	"github.com/skypies/util/widget"

	"github.com/hasiegler/Space-Station-API/opennotify"
)

// {{{ PassLookupHandler

// ?pos_lat=38.58&pos_long=-121.49   - somewhere to predict passes for
// &n=5                              - how many passes to ask the service for
// &debug=1                          - text/plain dump instead of json

// PassLookupHandler probes the prediction service for one position, and
// relays the raw response envelope. Handy for poking at the upstream API
// without running the whole pipeline.
func PassLookupHandler(app App, w http.ResponseWriter, r *http.Request) {
	pos := geo.FormValueLatlong(r, "pos")
	if pos.IsNil() {
		http.Error(w, "needs ?pos_lat=&pos_long=", http.StatusBadRequest)
		return
	}
	n := int(widget.FormValueInt64(r, "n"))

	client,ok := app.Predictor.(*opennotify.Client)
	if !ok {
		http.Error(w, "no remote prediction service configured", http.StatusInternalServerError)
		return
	}

	resp,err := client.LookupResponse(pos, n)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.FormValue("debug") != "" {
		w.Header().Set("Content-Type", "text/plain")
		str := fmt.Sprintf("OK\n--\n%s\n--\n%#v\n", client.GetPassTimesUrl(pos,n), resp)
		w.Write([]byte(str))
		return
	}

	jsonBytes,err := json.MarshalIndent(resp, "", " ")
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
