package isspass

import(
	"sort"
	"strings"
	"time"
)

// CapitalPasses is the reshaped row: one capital, with its soonest passes
// spread into named fields. A zero time means that rank was absent (the
// service predicted fewer than three upcoming passes); check IsZero() rather
// than rendering the zero value.
type CapitalPasses struct {
	Capital
	First  time.Time
	Second time.Time
	Third  time.Time
}

// RiseTimes returns the populated ranks, in order.
func (cp CapitalPasses)RiseTimes() []time.Time {
	ret := []time.Time{}
	for _,t := range []time.Time{cp.First, cp.Second, cp.Third} {
		if !t.IsZero() { ret = append(ret, t) }
	}
	return ret
}

// Ascending by First; a row with no First at all sorts after every dated row.
type PassTableByFirst []CapitalPasses
func (s PassTableByFirst) Len() int      { return len(s) }
func (s PassTableByFirst) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s PassTableByFirst) Less(i, j int) bool {
	if s[i].First.IsZero() { return false }
	if s[j].First.IsZero() { return true }
	return s[i].First.Before(s[j].First)
}

// BuildPassTable pivots the flat (capital, rank, risetime) rows into exactly
// one row per capital: rank 1 into First, 2 into Second, 3 into Third. Ranks
// beyond the third are dropped. Output is sorted soonest-first; capitals with
// identical First values keep the order their predictions arrived in. Pure
// function - same input, same output.
func BuildPassTable(preds []Prediction) []CapitalPasses {
	rows := []CapitalPasses{}
	index := map[string]int{}  // state code -> position in rows

	for _,p := range preds {
		i,exists := index[p.State]
		if !exists {
			rows = append(rows, CapitalPasses{Capital: p.Capital})
			i = len(rows)-1
			index[p.State] = i
		}

		switch p.Rank {
		case 1: rows[i].First  = p.RiseTime
		case 2: rows[i].Second = p.RiseTime
		case 3: rows[i].Third  = p.RiseTime
		}
	}

	sort.Stable(PassTableByFirst(rows))

	return rows
}

// FilterStates keeps only the rows whose state code appears in states
// (case-insensitive). An empty filter keeps everything.
func FilterStates(rows []CapitalPasses, states []string) []CapitalPasses {
	if len(states) == 0 { return rows }

	wanted := map[string]bool{}
	for _,s := range states { wanted[strings.ToUpper(s)] = true }

	ret := []CapitalPasses{}
	for _,row := range rows {
		if wanted[strings.ToUpper(row.State)] { ret = append(ret, row) }
	}
	return ret
}
