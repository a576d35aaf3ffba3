package catalogue

import (
	"encoding/json"
	"net/http"
)

// decoderFunc turns a response body into its typed payload.
type decoderFunc func(body []byte) (Payload, error)

// decodeInto unmarshals the body into a fresh T. Unknown JSON fields are
// ignored and absent optional fields keep their zero or nil value.
func decodeInto[T any, PT interface {
	*T
	Payload
}](body []byte) (Payload, error) {
	v := PT(new(T))
	if err := json.Unmarshal(body, v); err != nil {
		return nil, err
	}
	return v, nil
}

// payloadDecoders maps each recognized status code to its decoder.
// Supporting a newly documented status means one payload type and one
// entry here.
var payloadDecoders = map[int]decoderFunc{
	http.StatusOK:                  decodeInto[SearchTitlesResponse],
	http.StatusBadRequest:          decodeInto[BadRequest],
	http.StatusUnauthorized:        decodeInto[Unauthorized],
	http.StatusNotFound:            decodeInto[NotFound],
	http.StatusMethodNotAllowed:    decodeInto[MethodNotAllowed],
	http.StatusTooManyRequests:     decodeInto[TooManyRequests],
	http.StatusInternalServerError: decodeInto[InternalServerError],
	http.StatusNotImplemented:      decodeInto[NotImplemented],
	http.StatusServiceUnavailable:  decodeInto[ServiceUnavailable],
}

// parse selects the payload for the response status. Unrecognized
// statuses yield an UnexpectedStatusError when the client raises on them
// (the default), otherwise a nil payload.
func (c *Client) parse(resp *Response) (Payload, error) {
	decode, ok := payloadDecoders[resp.StatusCode]
	if !ok {
		if c.raiseOnUnexpectedStatus {
			return nil, &UnexpectedStatusError{StatusCode: resp.StatusCode, Body: resp.Body}
		}
		return nil, nil
	}

	parsed, err := decode(resp.Body)
	if err != nil {
		return nil, &DecodeError{StatusCode: resp.StatusCode, Body: resp.Body, Err: err}
	}
	return parsed, nil
}
