// Package opennotify is a client for the Open Notify ISS pass-time service.
package opennotify

import(
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	"github.com/skypies/geo"

	isspass "github.com/hasiegler/Space-Station-API"
)

const DefaultHost = "http://api.open-notify.org"

var ErrMalformedResponse = fmt.Errorf("Response missing expected fields")

// {{{ Client{}

// Client does one network round trip per lookup. No retries, no caching;
// callers own both policies.
type Client struct {
	Client *http.Client
	Host   string  // scheme included; tests point this at their own server
}

func NewClient(c *http.Client) *Client {
	if c == nil {
		c = &http.Client{Timeout: isspass.DefaultFetchTimeout}
	}
	return &Client{Client:c, Host:DefaultHost}
}

// }}}
// {{{ on.GetPassTimesUrl

// ?lat=38.580000&lon=-121.490000&n=5 - signed decimal degrees
func (on *Client)GetPassTimesUrl(pos geo.Latlong, n int) string {
	args := url.Values{}
	args.Set("lat", fmt.Sprintf("%.6f", pos.Lat))
	args.Set("lon", fmt.Sprintf("%.6f", pos.Long))
	args.Set("n", fmt.Sprintf("%d", n))

	return fmt.Sprintf("%s/iss-pass.json?%s", on.Host, args.Encode())
}

// }}}
// {{{ on.url2{resp,body}

func (on *Client)url2resp(url string) (resp *http.Response, err error) {
	if resp,err = on.Client.Get(url); err != nil {
		return
	}
	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("Bad status: %v", resp.Status)
	}
	return
}

func (on *Client)Url2Body(url string) (body []byte, err error) {
	if resp,err := on.url2resp(url); err != nil {
		return nil, err
	} else {
		defer resp.Body.Close()
		return ioutil.ReadAll(resp.Body)
	}
}

// }}}

// {{{ ParsePassTimes

// ParsePassTimes pulls the ranked rise times out of a response body,
// converting each epoch second into a UTC instant. Extra fields travel
// ignored; a body without a success message and a response list is
// malformed. An empty response list is legitimate (no upcoming passes).
func ParsePassTimes(body []byte) ([]time.Time, error) {
	r := PassTimesResponse{}
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, err
	}

	if r.Message == "failure" {
		return nil, fmt.Errorf("service failure: %s", r.Reason)
	}
	if r.Message != "success" || r.Response == nil {
		return nil, ErrMalformedResponse
	}

	times := []time.Time{}
	for _,p := range r.Response {
		times = append(times, time.Unix(p.Risetime, 0).UTC())
	}

	return times, nil
}

// }}}
// {{{ on.LookupPassTimes

// LookupPassTimes asks for the next n passes over pos, ordered as the
// service returns them (chronologically, though we don't re-verify that).
func (on *Client)LookupPassTimes(pos geo.Latlong, n int) ([]time.Time, error) {
	if n <= 0 { n = isspass.NumPassesRequested }

	body,err := on.Url2Body(on.GetPassTimesUrl(pos, n))
	if err != nil { return nil, err }

	return ParsePassTimes(body)
}

// }}}
// {{{ on.LookupResponse

// LookupResponse returns the whole parsed envelope, for debug handlers that
// want to show durations and the echoed request.
func (on *Client)LookupResponse(pos geo.Latlong, n int) (*PassTimesResponse, error) {
	if n <= 0 { n = isspass.NumPassesRequested }

	body,err := on.Url2Body(on.GetPassTimesUrl(pos, n))
	if err != nil { return nil, err }

	r := PassTimesResponse{}
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, err
	}
	if r.Message == "failure" {
		return nil, fmt.Errorf("service failure: %s", r.Reason)
	}
	if r.Message != "success" {
		return nil, ErrMalformedResponse
	}

	return &r, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
