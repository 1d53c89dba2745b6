package opennotify

// {{{ PassTimesResponse

// Envelope for iss-pass queries. Message and Response are the parts that
// matter; Request is the service echoing our arguments back, kept around for
// debug surfaces.
type PassTimesResponse struct {
	Message  string           `json:"message"`
	Reason   string           `json:"reason"`   // only present on failure
	Request  PassTimesRequest `json:"request"`
	Response []PassTimeStruct `json:"response"`
}

type PassTimesRequest struct {
	Altitude  float64 `json:"altitude"`
	Datetime  int64   `json:"datetime"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Passes    int     `json:"passes"`
}

type PassTimeStruct struct {
	Duration int64 `json:"duration"`  // seconds above the horizon
	Risetime int64 `json:"risetime"`  // epoch seconds
}

// }}}
