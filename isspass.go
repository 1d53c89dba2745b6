// This package contains the types and the fetch pipeline for ISS pass
// predictions over the US state capitals. No HTTP or rendering imports.
package isspass

import "time"

const(
	// How many ranked passes survive into the final table for each capital.
	NumPassesKept = 3

	// How many passes to ask the prediction service for. The service's own
	// default; a bit more than we keep, so a short response means the ISS
	// really has fewer upcoming passes, not that we undersized the request.
	NumPassesRequested = 5

	// Budget for any single remote call. Every HTTP client in this repo is
	// built with an explicit timeout; nothing relies on net/http's (absent)
	// default.
	DefaultFetchTimeout = 10 * time.Second
)
