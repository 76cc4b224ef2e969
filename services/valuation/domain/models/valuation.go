package models

import (
	"fmt"

	listingmodels "github.com/ghuser/zwitch/services/listing/domain/models"
	valuationdomain "github.com/ghuser/zwitch/services/valuation/domain"
)

const (
	// maxPhotos caps the condition evidence sent to the model.
	maxPhotos = 3
)

// Photo is one piece of image evidence: raw bytes plus MIME type.
type Photo struct {
	MIMEType string
	Data     []byte
}

// ValuationRequest carries device identity plus condition evidence: either a
// free-text condition description or 1–3 photos.
type ValuationRequest struct {
	DeviceType string
	Model      string
	Condition  string
	Photos     []Photo
}

// Validate enforces the input contract before anything is sent upstream.
func (r *ValuationRequest) Validate() error {
	if r.DeviceType == "" {
		return fmt.Errorf("%w: device type is required", valuationdomain.ErrInvalidValuationInput)
	}
	if r.Model == "" {
		return fmt.Errorf("%w: model is required", valuationdomain.ErrInvalidValuationInput)
	}
	if r.Condition == "" && len(r.Photos) == 0 {
		return fmt.Errorf("%w: a condition description or photos are required", valuationdomain.ErrInvalidValuationInput)
	}
	if len(r.Photos) > maxPhotos {
		return fmt.Errorf("%w: at most %d photos", valuationdomain.ErrInvalidValuationInput, maxPhotos)
	}
	for i, p := range r.Photos {
		if p.MIMEType == "" || len(p.Data) == 0 {
			return fmt.Errorf("%w: photo %d is empty", valuationdomain.ErrInvalidValuationInput, i+1)
		}
	}
	return nil
}

// Valuation is the fixed output schema: a value range, a recommendation, and
// suggested listing metadata. SuggestedCategory is always a member of the
// fixed category enumeration.
type Valuation struct {
	EstimatedMinValue float64
	EstimatedMaxValue float64
	Recommendation    string
	SuggestedTitle    string
	SuggestedCategory listingmodels.Category
}

// NewValuation validates raw model output against the schema. Negative or
// inverted ranges are malformed output, not partial results: the whole
// valuation is rejected as retryable. An unknown category falls back to Other.
func NewValuation(min, max float64, recommendation, title, rawCategory string) (*Valuation, error) {
	if min < 0 || max < 0 {
		return nil, fmt.Errorf("%w: negative value estimate", valuationdomain.ErrValuationUnavailable)
	}
	if min > max {
		return nil, fmt.Errorf("%w: estimate range inverted", valuationdomain.ErrValuationUnavailable)
	}

	category, ok := listingmodels.MatchCategory(rawCategory)
	if !ok {
		category = listingmodels.CategoryOther
	}

	return &Valuation{
		EstimatedMinValue: min,
		EstimatedMaxValue: max,
		Recommendation:    recommendation,
		SuggestedTitle:    title,
		SuggestedCategory: category,
	}, nil
}
