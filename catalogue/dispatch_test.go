package catalogue

import (
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	client, err := NewClient("https://api.example.com", StaticToken("tok"), zerolog.Nop())
	require.NoError(t, err)

	t.Run("covers every recognized status", func(t *testing.T) {
		tests := []struct {
			status int
			want   Payload
		}{
			{200, &SearchTitlesResponse{}},
			{400, &BadRequest{}},
			{401, &Unauthorized{}},
			{404, &NotFound{}},
			{405, &MethodNotAllowed{}},
			{429, &TooManyRequests{}},
			{500, &InternalServerError{}},
			{501, &NotImplemented{}},
			{503, &ServiceUnavailable{}},
		}

		require.Len(t, payloadDecoders, len(tests), "decoder table and test table out of sync")

		for _, tt := range tests {
			parsed, err := client.parse(&Response{StatusCode: tt.status, Body: []byte(`{}`)})
			require.NoError(t, err, "status %d", tt.status)
			assert.IsType(t, tt.want, parsed, "status %d", tt.status)
		}
	})

	t.Run("unknown status raises by default", func(t *testing.T) {
		_, err := client.parse(&Response{StatusCode: http.StatusTeapot, Body: []byte(`{}`)})

		var unexpected *UnexpectedStatusError
		require.ErrorAs(t, err, &unexpected)
		assert.Equal(t, http.StatusTeapot, unexpected.StatusCode)
	})

	t.Run("unknown status yields nil payload when not raising", func(t *testing.T) {
		quiet, err := NewClient("https://api.example.com", StaticToken("tok"), zerolog.Nop(), WithoutUnexpectedStatusErrors())
		require.NoError(t, err)

		parsed, err := quiet.parse(&Response{StatusCode: http.StatusTeapot, Body: []byte(`{}`)})
		require.NoError(t, err)
		assert.Nil(t, parsed)
	})

	t.Run("malformed body yields DecodeError", func(t *testing.T) {
		_, err := client.parse(&Response{StatusCode: http.StatusOK, Body: []byte(`{broken`)})

		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, http.StatusOK, decodeErr.StatusCode)
		assert.Error(t, decodeErr.Unwrap())
	})
}
