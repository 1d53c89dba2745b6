package ui

import(
	"net/http"

	"github.com/skypies/util/date"
)

// {{{ ListHandler

// ?states=CA,TX  - restrict the table to these states

func ListHandler(app App, w http.ResponseWriter, r *http.Request) {
	rows,failures,err := passTableForRequest(app, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var params = map[string]interface{}{
		"Rows": rows,
		"Failures": failures,
		"GeneratedAt": date.NowInPdt(),
	}
	if err := templates.ExecuteTemplate(w, "iss-list", params); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
