package catalogue

import "net/http"

// Payload is implemented by every type the client can decode a response
// body into. A Response.Parsed holds either a *SearchTitlesResponse, one
// of the per-status error payloads, or nil when the status was
// unrecognized and the client is configured not to raise.
type Payload interface {
	payload()
}

// Response is the full envelope for a single API call.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Parsed     Payload
}

// SearchTitlesResponse is the success payload of GET /SearchTitles.
type SearchTitlesResponse struct {
	TotalRecords      int     `json:"totalRecords"`
	Count             int     `json:"count"`
	HasMoreRecords    bool    `json:"hasMoreRecords"`
	NextRecordsOffset *int    `json:"nextRecordsOffset,omitempty"`
	Titles            []Title `json:"titles"`
	Facets            []Facet `json:"facets"`
}

func (*SearchTitlesResponse) payload() {}

// NextOffset returns the offset for the next page and whether one exists.
func (r *SearchTitlesResponse) NextOffset() (int, bool) {
	if !r.HasMoreRecords || r.NextRecordsOffset == nil {
		return 0, false
	}
	return *r.NextRecordsOffset, true
}

// Title is a single catalogue record.
type Title struct {
	Format      *Format  `json:"format,omitempty"`
	BRN         *int     `json:"brn,omitempty"`
	Title       string   `json:"title,omitempty"`
	Author      string   `json:"author,omitempty"`
	ISBNs       []string `json:"isbns,omitempty"`
	Publisher   []string `json:"publisher,omitempty"`
	PublishDate string   `json:"publish_date,omitempty"`
	Language    []string `json:"language,omitempty"`
	Subjects    []string `json:"subjects,omitempty"`
}

// Format is a material format code and its display name.
type Format struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Facet is a named aggregation of result counts by attribute value.
type Facet struct {
	Name   string       `json:"name"`
	Values []FacetValue `json:"values"`
}

// FacetValue is one bucket within a facet.
type FacetValue struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ErrorResponse is the body shape shared by every error status the API
// documents. Each known status gets its own defined type below so callers
// can discriminate failures with a type switch instead of re-inspecting
// the status code.
type ErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// BadRequest is the 400 payload.
type BadRequest ErrorResponse

// Unauthorized is the 401 payload.
type Unauthorized ErrorResponse

// NotFound is the 404 payload.
type NotFound ErrorResponse

// MethodNotAllowed is the 405 payload.
type MethodNotAllowed ErrorResponse

// TooManyRequests is the 429 payload, returned when the rate limit is
// still exceeded after retries.
type TooManyRequests ErrorResponse

// InternalServerError is the 500 payload.
type InternalServerError ErrorResponse

// NotImplemented is the 501 payload.
type NotImplemented ErrorResponse

// ServiceUnavailable is the 503 payload, returned when the service is
// still unavailable after retries.
type ServiceUnavailable ErrorResponse

func (*BadRequest) payload()          {}
func (*Unauthorized) payload()        {}
func (*NotFound) payload()            {}
func (*MethodNotAllowed) payload()    {}
func (*TooManyRequests) payload()     {}
func (*InternalServerError) payload() {}
func (*NotImplemented) payload()      {}
func (*ServiceUnavailable) payload()  {}
