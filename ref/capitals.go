// Package ref loads the static reference tables used by the fetch pipeline:
// the US state capitals, with coordinates and display names.
package ref

import(
	"bufio"
	"fmt"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"

	"github.com/skypies/geo"

	isspass "github.com/hasiegler/Space-Station-API"
)

// The upstream files are whitespace-delimited text: one maps state code to
// (lat,long), the other maps state code to capital name. Both carry a trailing
// aggregate row for the country as a whole, which is not a capital.
var(
	DefaultLatlongsURL = "https://people.sc.fsu.edu/~jburkardt/datasets/states/state_capitals_ll.txt"
	DefaultNamesURL    = "https://people.sc.fsu.edu/~jburkardt/datasets/states/state_capitals_name.txt"
)

const kAggregateRow = "US"

// {{{ Loader{}

// Loader fetches and joins the two reference files. Implements
// isspass.CapitalSource. Any fetch or parse problem is fatal; there is no
// pipeline without the reference table.
type Loader struct {
	Client      *http.Client
	LatlongsURL string
	NamesURL    string
}

func NewLoader(c *http.Client) *Loader {
	if c == nil {
		client := http.Client{Timeout: isspass.DefaultFetchTimeout}
		c = &client
	}
	return &Loader{
		Client:      c,
		LatlongsURL: DefaultLatlongsURL,
		NamesURL:    DefaultNamesURL,
	}
}

// }}}
// {{{ l.Capitals

// Capitals returns the joined reference table, ordered as the coordinates
// file lists it. The error message names whichever resource broke.
func (l *Loader)Capitals() ([]isspass.Capital, error) {
	llText,err := fetchText(l.Client, l.LatlongsURL)
	if err != nil { return nil, fmt.Errorf("ref: %s: %v", l.LatlongsURL, err) }

	nameText,err := fetchText(l.Client, l.NamesURL)
	if err != nil { return nil, fmt.Errorf("ref: %s: %v", l.NamesURL, err) }

	order,positions,err := ParseCapitalLatlongs(llText)
	if err != nil { return nil, fmt.Errorf("ref: %s: %v", l.LatlongsURL, err) }

	names,err := ParseCapitalNames(nameText)
	if err != nil { return nil, fmt.Errorf("ref: %s: %v", l.NamesURL, err) }

	capitals,err := JoinCapitals(order, positions, names)
	if err != nil { return nil, fmt.Errorf("ref: %s: %v", l.NamesURL, err) }

	return capitals, nil
}

// }}}
// {{{ FetchCapitals

// FetchCapitals is the one-shot form, for callers who don't want to hold a
// Loader. Empty URLs fall back to the FSU defaults.
func FetchCapitals(client *http.Client, llURL, namesURL string) ([]isspass.Capital, error) {
	loader := NewLoader(client)
	if llURL != "" { loader.LatlongsURL = llURL }
	if namesURL != "" { loader.NamesURL = namesURL }
	return loader.Capitals()
}

// }}}
// {{{ fetchText

func fetchText(c *http.Client, url string) (string, error) {
	if c == nil {
		client := http.Client{Timeout: isspass.DefaultFetchTimeout}
		c = &client
	}

	resp,err := c.Get(url)
	if err != nil { return "", err }
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("bad status: %v", resp.Status)
	}

	body,err := ioutil.ReadAll(resp.Body)
	if err != nil { return "", err }

	return string(body), nil
}

// }}}
// {{{ ParseCapitalLatlongs

// ParseCapitalLatlongs reads `code lat long` lines, skipping blanks and the
// aggregate row. Returns the codes in file order plus a position per code.
func ParseCapitalLatlongs(s string) ([]string, map[string]geo.Latlong, error) {
	order := []string{}
	positions := map[string]geo.Latlong{}

	scanner := bufio.NewScanner(strings.NewReader(s))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" { continue }

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, nil, fmt.Errorf("bad latlong line: %q", line)
		}

		id := fields[0]
		if id == kAggregateRow { continue }
		if _,exists := positions[id]; exists {
			return nil, nil, fmt.Errorf("duplicate id %q in latlong data", id)
		}

		lat,err := strconv.ParseFloat(fields[1], 64)
		if err != nil { return nil, nil, fmt.Errorf("bad latitude in %q: %v", line, err) }
		long,err := strconv.ParseFloat(fields[2], 64)
		if err != nil { return nil, nil, fmt.Errorf("bad longitude in %q: %v", line, err) }

		order = append(order, id)
		positions[id] = geo.Latlong{lat, long}
	}

	return order, positions, nil
}

// }}}
// {{{ ParseCapitalNames

// ParseCapitalNames reads `code name` lines; names may themselves contain
// spaces (OK "Oklahoma City").
func ParseCapitalNames(s string) (map[string]string, error) {
	names := map[string]string{}

	scanner := bufio.NewScanner(strings.NewReader(s))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" { continue }

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("bad name line: %q", line)
		}

		id := fields[0]
		if id == kAggregateRow { continue }
		if _,exists := names[id]; exists {
			return nil, fmt.Errorf("duplicate id %q in name data", id)
		}

		names[id] = strings.Join(fields[1:], " ")
	}

	return names, nil
}

// }}}
// {{{ JoinCapitals

// JoinCapitals lines the two tables up on state code, preserving the
// coordinate file's ordering. Every coordinate row must have a name; the
// reference data is supposed to be consistent, so a hole is a hard error
// rather than a skipped row.
func JoinCapitals(order []string, positions map[string]geo.Latlong, names map[string]string) ([]isspass.Capital, error) {
	capitals := []isspass.Capital{}

	for _,id := range order {
		name,exists := names[id]
		if !exists {
			return nil, fmt.Errorf("no name for id %q", id)
		}
		capitals = append(capitals, isspass.Capital{State:id, Name:name, Pos:positions[id]})
	}

	return capitals, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
