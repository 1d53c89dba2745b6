package isspass

import(
	"fmt"

	"github.com/skypies/geo"
)

// Capital is one row of the reference table: a state capital, keyed by its
// two-letter state code.
type Capital struct {
	State string      // two-letter code, unique across the table
	Name  string      // city name, e.g. "Sacramento"
	Pos   geo.Latlong
}

func (c Capital)String() string { return fmt.Sprintf("%s, %s", c.Name, c.State) }

// CapitalsBox is the smallest box enclosing every capital; the map page uses
// it to pick its viewport.
func CapitalsBox(capitals []Capital) geo.LatlongBox {
	if len(capitals) == 0 { return geo.LatlongBox{} }

	sw,ne := capitals[0].Pos, capitals[0].Pos
	for _,c := range capitals[1:] {
		if c.Pos.Lat  < sw.Lat  { sw.Lat  = c.Pos.Lat }
		if c.Pos.Long < sw.Long { sw.Long = c.Pos.Long }
		if c.Pos.Lat  > ne.Lat  { ne.Lat  = c.Pos.Lat }
		if c.Pos.Long > ne.Long { ne.Long = c.Pos.Long }
	}

	return sw.BoxTo(ne)
}
