package api

// envelope wraps every successful response.
type envelope struct {
	Cached bool `json:"cached"`
	Data   any  `json:"data"`
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// Error codes exposed in errorResponse.Error.
const (
	errMissingQuery = "missing query 'q'"
	errInvalidType  = "invalid type"
	errSearchFailed = "api error"
	errDetailFailed = "failed"
	errNotFound     = "not found"
	errNotAllowed   = "method not allowed"
	errInternal     = "internal error"
)

// searchTypes are the TMDB search endpoints a client may select with ?type=.
var searchTypes = map[string]bool{
	"multi": true,
	"movie": true,
	"tv":    true,
}

const defaultSearchType = "multi"
