package catalogue

import (
	"context"
	"net/url"
	"strconv"
)

const searchTitlesPath = "/SearchTitles"

// DefaultLimit is the page size used when SearchRequest.Limit is zero.
const DefaultLimit = 20

// SearchRequest holds the parameters of a /SearchTitles call. Keywords is
// required; every other field is optional and omitted from the query
// string when left at its zero value, except Limit and Offset which are
// always sent (Limit falls back to DefaultLimit, Offset defaults to 0).
//
// The builder performs no validation: keyword content and out-of-range
// Limit/Offset values are passed through verbatim for the server to
// reject.
type SearchRequest struct {
	// Keywords is the free-text search string.
	Keywords string
	// Source restricts results to a single content source, e.g. "overdrive".
	Source string
	// Limit is the page size. Zero means DefaultLimit.
	Limit int
	// SortFields names the server-side sort, e.g. "title".
	SortFields string
	// Offset is the zero-based record offset of the page.
	Offset int
	// MaterialTypes filters by material type codes, e.g. "BK", "DVD".
	MaterialTypes []string
	// IntendedAudiences filters by audience codes, e.g. "ADULT", "TEEN".
	IntendedAudiences []string
	// DateFrom and DateTo bound the publish date, numeric YYYYMMDD.
	DateFrom int
	DateTo   int
	// Locations filters by branch codes, e.g. "AMKPL".
	Locations []string
	// Languages filters by language codes, e.g. "ENG".
	Languages []string
	// Availability, when set, restricts to titles that are (or are not)
	// currently available.
	Availability *bool
	// Fiction, when set, restricts to fiction (or non-fiction) titles.
	Fiction *bool
}

// values maps the request onto its wire-format query parameters.
func (r SearchRequest) values() url.Values {
	params := url.Values{}

	params.Set("Keywords", r.Keywords)

	if r.Source != "" {
		params.Set("Source", r.Source)
	}

	limit := r.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	params.Set("Limit", strconv.Itoa(limit))

	if r.SortFields != "" {
		params.Set("SortFields", r.SortFields)
	}

	params.Set("Offset", strconv.Itoa(r.Offset))

	for _, v := range r.MaterialTypes {
		params.Add("MaterialTypes", v)
	}
	for _, v := range r.IntendedAudiences {
		params.Add("IntendedAudiences", v)
	}

	if r.DateFrom != 0 {
		params.Set("DateFrom", strconv.Itoa(r.DateFrom))
	}
	if r.DateTo != 0 {
		params.Set("DateTo", strconv.Itoa(r.DateTo))
	}

	for _, v := range r.Locations {
		params.Add("Locations", v)
	}
	for _, v := range r.Languages {
		params.Add("Languages", v)
	}

	if r.Availability != nil {
		params.Set("Availability", strconv.FormatBool(*r.Availability))
	}
	if r.Fiction != nil {
		params.Set("Fiction", strconv.FormatBool(*r.Fiction))
	}

	return params
}

// SearchTitlesDetailed searches the catalogue and returns the full
// response envelope: status code, headers, raw body and the typed parsed
// payload.
func (c *Client) SearchTitlesDetailed(ctx context.Context, req SearchRequest) (*Response, error) {
	resp, err := c.get(ctx, searchTitlesPath, req.values())
	if err != nil {
		return nil, err
	}

	parsed, err := c.parse(resp)
	if err != nil {
		return nil, err
	}
	resp.Parsed = parsed

	c.logger.Debug().
		Str("keywords", req.Keywords).
		Int("status", resp.StatusCode).
		Msg("Catalogue search completed")

	return resp, nil
}

// SearchTitles searches the catalogue and returns only the parsed
// payload. Failure statuses arrive as their typed payloads; use a type
// switch to discriminate.
func (c *Client) SearchTitles(ctx context.Context, req SearchRequest) (Payload, error) {
	resp, err := c.SearchTitlesDetailed(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}
