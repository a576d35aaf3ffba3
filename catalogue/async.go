package catalogue

import "context"

// AsyncPayload carries the result of an asynchronous plain search.
type AsyncPayload struct {
	Payload Payload
	Err     error
}

// AsyncResponse carries the result of an asynchronous detailed search.
type AsyncResponse struct {
	Response *Response
	Err      error
}

// SearchTitlesAsync runs SearchTitles on its own goroutine and delivers
// the single result on the returned channel. Cancel the context to
// abandon the call, including any pending retry delays.
func (c *Client) SearchTitlesAsync(ctx context.Context, req SearchRequest) <-chan AsyncPayload {
	out := make(chan AsyncPayload, 1)
	go func() {
		defer close(out)
		payload, err := c.SearchTitles(ctx, req)
		out <- AsyncPayload{Payload: payload, Err: err}
	}()
	return out
}

// SearchTitlesDetailedAsync runs SearchTitlesDetailed on its own
// goroutine and delivers the single result on the returned channel.
func (c *Client) SearchTitlesDetailedAsync(ctx context.Context, req SearchRequest) <-chan AsyncResponse {
	out := make(chan AsyncResponse, 1)
	go func() {
		defer close(out)
		resp, err := c.SearchTitlesDetailed(ctx, req)
		out <- AsyncResponse{Response: resp, Err: err}
	}()
	return out
}
