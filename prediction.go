package isspass

import(
	"fmt"
	"time"
)

// Prediction is one ranked rise time for one capital: the raw service output,
// tagged with the capital it was asked about.
type Prediction struct {
	Capital
	Rank     int        // 1-based; follows the order the service returned
	RiseTime time.Time  // always UTC
}

func (p Prediction)String() string {
	return fmt.Sprintf("%s #%d @ %s", p.Capital, p.Rank, p.RiseTime.Format(time.RFC3339))
}
