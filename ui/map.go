package ui

import(
	"fmt"
	"net/http"

	"github.com/skypies/geo"
	"github.com/skypies/util/widget"

	isspass "github.com/hasiegler/Space-Station-API"
	"github.com/hasiegler/Space-Station-API/config"
)

// Sits roughly over Lebanon, Kansas; keeps the lower 48 in frame at zoom 4.
var kDefaultCenter = geo.Latlong{39.8283, -98.5795}

// {{{ getGoogleMapsParams

//  &whiteveil=1         (bleach out the map, to make the markers more prominent)
//  &zoom=5
//  &center_lat=37&center_long=-122 (alternate center point)
//  &maptype=terrain  (roadmap, satellite, hybrid)

func getGoogleMapsParams(r *http.Request, params map[string]interface{}) {
	whiteVeil := widget.FormValueCheckbox(r, "whiteveil")

	zoom := widget.FormValueInt64(r, "zoom")
	if zoom == 0 { zoom = 4 }

	center := geo.FormValueLatlong(r, "center")
	if center.IsNil() { center = kDefaultCenter }

	mapType := r.FormValue("maptype")
	if mapType == "" { mapType = "Silver" }

	params["WhiteOverlay"] = whiteVeil
	params["Center"] = center
	params["Zoom"] = zoom
	params["MapType"] = mapType
	params["MapsAPIKey"] = config.Get("googlemaps.apikey")
}

// }}}

// {{{ MapHandler

// ?states=CA,TX,OR  - only plot these capitals
// &showbox=1        - draw the bounding box around the plotted capitals
// &retries=2        - see handlerware

func MapHandler(app App, w http.ResponseWriter, r *http.Request) {
	rows,failures,err := passTableForRequest(app, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	ms := NewMapShapes()
	for _,mp := range PassTableToMapPoints(rows, "") {
		ms.AddPoint(mp)
	}

	if widget.FormValueCheckbox(r, "showbox") {
		capitals := []isspass.Capital{}
		for _,row := range rows {
			capitals = append(capitals, row.Capital)
		}
		for _,line := range LatlongBoxToMapLines(isspass.CapitalsBox(capitals), "#ff0000") {
			ms.AddLine(line)
		}
	}

	legend := fmt.Sprintf("ISS passes over %d capitals", len(rows))
	if len(failures) > 0 {
		legend += fmt.Sprintf(" (%d lookups failed)", len(failures))
	}

	var params = map[string]interface{}{
		"Legend": legend,
		"Points": ms.PointsToJSMap(),
		"Lines": ms.LinesToJSMap(),
		"Shapes": ms,
	}
	getGoogleMapsParams(r, params)

	if err := templates.ExecuteTemplate(w, "iss-map", params); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
