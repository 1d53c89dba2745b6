package isspass

import(
	"fmt"
	"testing"
	"time"

	"golang.org/x/net/context"

	"github.com/skypies/geo"
)

// cannedPredictor answers from fixed epoch lists keyed by position, recording
// the order it was called in. failN injects that many failures before the
// canned answer starts working, for retry tests.
type cannedPredictor struct {
	epochs map[geo.Latlong][]int64
	errs   map[geo.Latlong]error
	failN  map[geo.Latlong]int
	calls  []geo.Latlong
}

func (cp *cannedPredictor)LookupPassTimes(pos geo.Latlong, n int) ([]time.Time, error) {
	cp.calls = append(cp.calls, pos)

	if cp.failN[pos] > 0 {
		cp.failN[pos]--
		return nil, fmt.Errorf("transient failure for %v", pos)
	}
	if err := cp.errs[pos]; err != nil {
		return nil, err
	}

	ret := []time.Time{}
	for i,e := range cp.epochs[pos] {
		if i >= n { break }
		ret = append(ret, time.Unix(e,0).UTC())
	}
	return ret, nil
}

func newCannedPredictor() *cannedPredictor {
	return &cannedPredictor{
		epochs: map[geo.Latlong][]int64{},
		errs:   map[geo.Latlong]error{},
		failN:  map[geo.Latlong]int{},
	}
}

func TestFetchAllSequential(t *testing.T) {
	capitals := []Capital{sacramento, austin, salem}

	cp := newCannedPredictor()
	cp.epochs[sacramento.Pos] = []int64{1700000000, 1700003600, 1700007200}
	cp.epochs[austin.Pos] = []int64{1699990000, 1699993600, 1699997200}
	cp.epochs[salem.Pos] = []int64{1700000500, 1700004100, 1700007700}

	preds,failures := Fetcher{Predictor:cp}.FetchAll(context.Background(), capitals)

	if len(failures) != 0 {
		t.Errorf("expected no failures, got %v", failures)
	}
	if len(cp.calls) != 3 {
		t.Fatalf("expected 3 calls, got %d", len(cp.calls))
	}
	for i,c := range capitals {
		if cp.calls[i] != c.Pos {
			t.Errorf("call %d went to %v, expected %v (%s)", i, cp.calls[i], c.Pos, c)
		}
	}

	// Flat output: capital order, then rank order within each capital
	if len(preds) != 9 {
		t.Fatalf("expected 9 predictions, got %d", len(preds))
	}
	for i,p := range preds {
		wantState := capitals[i/3].State
		wantRank := i%3 + 1
		if p.State != wantState || p.Rank != wantRank {
			t.Errorf("pred %d: got %s rank %d, expected %s rank %d",
				i, p.State, p.Rank, wantState, wantRank)
		}
	}
}

func TestFetchAllSkipsFailedCapital(t *testing.T) {
	capitals := []Capital{sacramento, austin, salem}

	cp := newCannedPredictor()
	cp.epochs[sacramento.Pos] = []int64{1700000000}
	cp.errs[austin.Pos] = fmt.Errorf("connection refused")
	cp.epochs[salem.Pos] = []int64{1700000500}

	preds,failures := Fetcher{Predictor:cp}.FetchAll(context.Background(), capitals)

	if len(failures) != 1 || failures["TX"] == nil {
		t.Errorf("expected just TX in the failure map, got %v", failures)
	}
	for _,p := range preds {
		if p.State == "TX" {
			t.Errorf("failed capital leaked into the output: %s", p)
		}
	}

	// The survivors are untouched, and still in order
	rows := BuildPassTable(preds)
	if len(rows) != 2 || rows[0].State != "CA" || rows[1].State != "OR" {
		t.Errorf("expected CA,OR; got %v", rows)
	}
}

func TestFetchAllTrimsRanks(t *testing.T) {
	cp := newCannedPredictor()
	cp.epochs[sacramento.Pos] = []int64{1700000000, 1700003600, 1700007200, 1700010800, 1700014400}

	preds,_ := Fetcher{Predictor:cp}.FetchAll(context.Background(), []Capital{sacramento})

	if len(preds) != NumPassesKept {
		t.Fatalf("expected %d predictions, got %d", NumPassesKept, len(preds))
	}
	if preds[len(preds)-1].Rank != NumPassesKept {
		t.Errorf("last rank should be %d, got %d", NumPassesKept, preds[len(preds)-1].Rank)
	}
}

func TestFetchAllBoundedRetry(t *testing.T) {
	cp := newCannedPredictor()
	cp.epochs[salem.Pos] = []int64{1700000500}
	cp.failN[salem.Pos] = 2

	f := Fetcher{Predictor:cp, Retries:2, RetryDelay:time.Millisecond}
	preds,failures := f.FetchAll(context.Background(), []Capital{salem})

	if len(failures) != 0 {
		t.Errorf("retries should have recovered, got %v", failures)
	}
	if len(preds) != 1 {
		t.Errorf("expected 1 prediction, got %d", len(preds))
	}
	if len(cp.calls) != 3 {
		t.Errorf("expected 3 attempts, got %d", len(cp.calls))
	}

	// Default is a single attempt, no retries
	cp2 := newCannedPredictor()
	cp2.epochs[salem.Pos] = []int64{1700000500}
	cp2.failN[salem.Pos] = 1

	_,failures = Fetcher{Predictor:cp2}.FetchAll(context.Background(), []Capital{salem})
	if len(failures) != 1 || len(cp2.calls) != 1 {
		t.Errorf("expected a single failed attempt; calls=%d failures=%v", len(cp2.calls), failures)
	}
}

func TestFetchAllCancelledContext(t *testing.T) {
	cp := newCannedPredictor()
	cp.epochs[sacramento.Pos] = []int64{1700000000}

	ctx,cancel := context.WithCancel(context.Background())
	cancel()

	preds,failures := Fetcher{Predictor:cp}.FetchAll(ctx, []Capital{sacramento, austin})

	if len(cp.calls) != 0 {
		t.Errorf("no calls should happen after cancellation, got %d", len(cp.calls))
	}
	if len(preds) != 0 {
		t.Errorf("expected no predictions, got %d", len(preds))
	}
	if failures["CA"] == nil || failures["TX"] == nil {
		t.Errorf("unfetched capitals should be recorded, got %v", failures)
	}
}
