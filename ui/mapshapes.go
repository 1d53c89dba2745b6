package ui

import(
	"fmt"
	"html/template"
	"time"

	"github.com/skypies/geo"
	"github.com/skypies/util/date"

	isspass "github.com/hasiegler/Space-Station-API"
)

// MapShapes is a single thing that contains all the things we want to render on a map
type MapShapes struct {
	Lines []MapLine
	Points []MapPoint
}

// {{{ NewMapShapes

func NewMapShapes() *MapShapes {
	ms := MapShapes{
		Lines: []MapLine{},
		Points: []MapPoint{},
	}
	return &ms
}

// }}}
// {{{ ms.Add [Line,Point]

func (ms1 *MapShapes)Add(ms2 *MapShapes) {
	ms1.Lines  = append(ms1.Lines,  ms2.Lines...)
	ms1.Points = append(ms1.Points, ms2.Points...)
}

func (ms1 *MapShapes)AddLine(ml MapLine) { ms1.Lines = append(ms1.Lines, ml) }
func (ms1 *MapShapes)AddPoint(mp MapPoint) { ms1.Points = append(ms1.Points, mp) }

// }}}

// {{{ MapPoint{}

type MapPoint struct {
	Pos   geo.Latlong

	Icon   string  // A color key the map page understands ("blue", "pink", ...)
	Text   string  // Hover text
	Info   string  // Info window contents (shown on click)
}

// }}}
// {{{ MapLine{}

type MapLine struct {
	Start geo.Latlong `json:"s"`
	End   geo.Latlong `json:"e"`

	Color        string  `json:"color"`    // A hex color value (e.g. "#ff8822")
	Opacity      float64 `json:"opacity"`
}

// }}}

// {{{ mp.ToJSStr

func (mp MapPoint)ToJSStr() string {
	if mp.Icon == "" { mp.Icon = "pink" }
	str := fmt.Sprintf("pos:{lat:%.6f, lng:%.6f}", mp.Pos.Lat, mp.Pos.Long)
	str += fmt.Sprintf(", icon:%q, text:%q, info:%q", mp.Icon, mp.Text, mp.Info)
	return str
}

// }}}
// {{{ ml.ToJSStr

func (ml MapLine)ToJSStr() string {
	color,op := ml.Color, ml.Opacity
	if color == "" { color = "#000000" }
	if op == 0.0 { op = 1.0 }
	return fmt.Sprintf("s:{lat:%f, lng:%f}, e:{lat:%f, lng:%f}, color:\"%s\", opacity:%.2f",
		ml.Start.Lat, ml.Start.Long, ml.End.Lat, ml.End.Long, color, op)
}

// }}}

// The FooToJSMap output lands in the map template as a pre-rendered JS literal
// {{{ ms.PointsToJSMap

func (ms MapShapes)PointsToJSMap() template.JS {
	str := "{\n"
	for i,mp := range ms.Points {
		str += fmt.Sprintf("    %d: {%s},\n", i, mp.ToJSStr())
	}
	return template.JS(str + "  }\n")
}

// }}}
// {{{ ms.LinesToJSMap

func (ms MapShapes)LinesToJSMap() template.JS {
	str := "{\n"
	for i,ml := range ms.Lines {
		str += fmt.Sprintf("    %d: {%s},\n", i, ml.ToJSStr())
	}
	return template.JS(str + "  }\n")
}

// }}}

// {{{ LatlongBoxToMapLines

func LatlongBoxToMapLines(box geo.LatlongBox, color string) []MapLine {
	maplines := []MapLine{}
	for _,line := range box.ToLines() {
		mapline := MapLine{Start:line.From, End:line.To}
		mapline.Color = color
		maplines = append(maplines, mapline)
	}
	return maplines
}

// }}}
// {{{ PassTableToMapPoints

var rankNames = []string{"First", "Second", "Third"}

// PassTableToMapPoints renders one marker per capital: hover text names the
// capital and its soonest pass, the info window lists each ranked pass in
// both UTC and Pacific time. Capitals with no upcoming pass get a pink dot.
func PassTableToMapPoints(rows []isspass.CapitalPasses, banner string) []MapPoint {
	points := []MapPoint{}

	for _,row := range rows {
		icon := "blue"
		text := row.String()
		info := fmt.Sprintf("** %s\n", row.String())

		if row.First.IsZero() {
			icon = "pink"
			text += " (no upcoming pass)"
			info += " * no upcoming passes found\n"
		} else {
			text += fmt.Sprintf(" @ %s", row.First.Format("15:04 MST"))
			for i,t := range row.RiseTimes() {
				info += fmt.Sprintf(" * %s: %s (%s)\n", rankNames[i],
					t.Format(time.RFC3339), date.InPdt(t).Format("Mon 15:04 MST"))
			}
		}
		if banner != "" { info += banner + "\n" }

		points = append(points, MapPoint{
			Pos: row.Pos,
			Icon: icon,
			Text: text,
			Info: info,
		})
	}

	return points
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
