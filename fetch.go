package isspass

import(
	"log"
	"time"

	"golang.org/x/net/context"

	"github.com/skypies/geo"
)

// Predictor is the remote pass-prediction service: one network round trip
// per call, asking for up to n upcoming passes over pos.
type Predictor interface {
	LookupPassTimes(pos geo.Latlong, n int) ([]time.Time, error)
}

// CapitalSource yields the reference table.
type CapitalSource interface {
	Capitals() ([]Capital, error)
}

// Fetcher walks the reference table in order, asking the Predictor about each
// capital in turn - strictly one call at a time, never concurrently. The zero
// value (plus a Predictor) works: NumPassesKept passes per capital, a single
// attempt each.
type Fetcher struct {
	Predictor  Predictor
	NumPasses  int            // ranks to retain per capital (default NumPassesKept)
	Retries    int            // extra attempts per capital on failure (default none)
	RetryDelay time.Duration  // sleep before the first retry; doubles per attempt
}

// FetchAll returns every retained prediction, in capital order then rank
// order within each capital, plus a map of the capitals whose lookups failed.
// A failed capital is logged, recorded, and skipped; it never aborts the run.
// Cancelling the context stops the remote calls; capitals not yet asked about
// land in the failure map with the context's error.
func (f Fetcher)FetchAll(ctx context.Context, capitals []Capital) ([]Prediction, map[string]error) {
	keep := f.NumPasses
	if keep <= 0 { keep = NumPassesKept }
	ask := keep
	if ask < NumPassesRequested { ask = NumPassesRequested }

	preds := []Prediction{}
	failures := map[string]error{}

	for _,c := range capitals {
		if ctx.Err() != nil {
			failures[c.State] = ctx.Err()
			continue
		}

		times,err := f.lookup(c.Pos, ask)
		if err != nil {
			log.Printf("%s: prediction lookup failed: %v", c, err)
			failures[c.State] = err
			continue
		}

		for i,t := range times {
			if i >= keep { break }
			preds = append(preds, Prediction{Capital:c, Rank:i+1, RiseTime:t})
		}
	}

	return preds, failures
}

func (f Fetcher)lookup(pos geo.Latlong, n int) ([]time.Time, error) {
	times,err := f.Predictor.LookupPassTimes(pos, n)

	delay := f.RetryDelay
	if delay <= 0 { delay = time.Second }
	for i:=0; err != nil && i<f.Retries; i++ {
		time.Sleep(delay)
		delay *= 2
		times,err = f.Predictor.LookupPassTimes(pos, n)
	}

	return times,err
}
