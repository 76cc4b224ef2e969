package models

// RawValuation is the untrusted JSON payload returned by the generative
// model, before schema enforcement. NewValuation turns it into a Valuation
// or rejects it wholesale.
type RawValuation struct {
	EstimatedMinValue float64 `json:"estimatedMinValue"`
	EstimatedMaxValue float64 `json:"estimatedMaxValue"`
	Recommendation    string  `json:"recommendation"`
	SuggestedTitle    string  `json:"suggestedTitle"`
	SuggestedCategory string  `json:"suggestedCategory"`
}
