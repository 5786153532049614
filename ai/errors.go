package ai

import "errors"

var (
	// ErrMalformedRecommendation is returned when the recommendation model
	// produced output that could not be parsed as the expected JSON object.
	// It is recoverable at the boundary and distinct from an empty result.
	ErrMalformedRecommendation = errors.New("malformed recommendation response")

	// ErrNoResponse is returned when the model returned no choices at all.
	ErrNoResponse = errors.New("no response from recommendation model")
)
