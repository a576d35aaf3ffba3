// Package catalogue provides a client for the NLB catalogue search API.
//
// The API exposes a single search endpoint (GET /SearchTitles) that takes
// keyword and filter parameters and returns matching titles together with
// facet counts for refinement. This package builds the query parameters
// from a typed SearchRequest, issues the authenticated request with
// bounded retry on transient statuses, and decodes the response body into
// a typed payload selected by status code.
//
// # Architecture
//
//   - Client: the API client holding base URL, token source and retry policy
//   - SearchRequest: typed search parameters with documented defaults
//   - Models: SearchTitlesResponse plus one payload type per error status
//   - RetryPolicy: attempt budget and backoff composed around each request
//   - Errors: UnexpectedStatusError and DecodeError for the fatal cases
//
// # Usage
//
//	logger := zerolog.New(os.Stdout)
//	client, err := catalogue.NewClient(
//		"https://openweb.nlb.gov.sg/api/v2/Catalogue",
//		catalogue.StaticToken("your-api-token"),
//		logger,
//		catalogue.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	payload, err := client.SearchTitles(ctx, catalogue.SearchRequest{
//		Keywords: "python programming",
//		Limit:    50,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	switch p := payload.(type) {
//	case *catalogue.SearchTitlesResponse:
//		// use p.Titles, p.Facets
//	case *catalogue.TooManyRequests:
//		// rate limited even after retries
//	}
//
// # Error Handling
//
// HTTP error statuses are data, not Go errors: every recognized status
// (400, 401, 404, 405, 429, 500, 501, 503) decodes into its own payload
// type so callers can discriminate with a type switch. Only two HTTP-level
// outcomes surface as errors:
//
//   - UnexpectedStatusError: the server returned a status outside the
//     recognized set (suppress with WithoutUnexpectedStatusErrors)
//   - DecodeError: a recognized status carried a body that does not match
//     the documented shape
//
// Network-level failures from the underlying transport propagate
// unmodified.
//
// # Retries
//
// 429 and 503 responses are retried with exponential backoff and jitter,
// four attempts by default. Retry exhaustion is not an error: the final
// attempt's response is decoded and returned like any other terminal
// response. Configure the budget with WithRetry.
package catalogue
